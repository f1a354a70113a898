package catalog

// defaultTable mirrors the exercise table the mobile/web clients were built against.
var defaultTable = map[Level]map[BodyPart][]Exercise{
	Beginner: {
		Arms: {
			{
				Name:         "Wall Push-ups",
				Prescription: Reps{Count: 8, Sets: 2},
				Description:  "Stand facing a wall at arm's length. Place your hands on the wall at shoulder height and width. Keep your body straight, slowly bend your elbows to bring your chest toward the wall, then push back to the starting position.",
				Benefits:     "Builds upper body strength, improves shoulder stability, and helps develop proper push-up form. Great for beginners to build chest, shoulder, and tricep muscles safely.",
			},
			{
				Name:         "Standing Bicep Curls with Resistance Band",
				Prescription: Reps{Count: 12, Sets: 2},
				Description:  "Stand on the middle of a resistance band with feet shoulder-width apart. Hold the ends of the band with palms facing forward. Keeping upper arms still, curl your hands up toward your shoulders, then slowly lower back down.",
				Benefits:     "Strengthens bicep muscles, improves arm strength for daily activities, and helps maintain bone density in the arms. The resistance band provides constant tension for better muscle engagement.",
			},
			{
				Name:         "Tricep Dips on Chair",
				Prescription: Reps{Count: 8, Sets: 2},
				Description:  "Sit on the edge of a sturdy chair. Place your hands on the edge beside your hips. Slide your buttocks off the chair, supporting yourself with your arms. Lower your body by bending your elbows, then push back up.",
				Benefits:     "Targets tricep muscles effectively, improves arm definition, and builds pushing strength. Also engages core muscles for stability and shoulder muscles for support.",
			},
		},
		Legs: {
			{
				Name:         "Bodyweight Squats",
				Prescription: Reps{Count: 10, Sets: 2},
				Description:  "Stand with feet shoulder-width apart. Keep your chest up and back straight, bend your knees and hips to lower your body as if sitting back into a chair. Keep your weight in your heels, then push back up to standing position.",
				Benefits:     "Strengthens legs, glutes, and core muscles. Improves balance, flexibility, and functional strength for daily activities. Helps build bone density and joint stability.",
			},
			{
				Name:         "Standing Calf Raises",
				Prescription: Reps{Count: 15, Sets: 2},
				Description:  "Stand with feet hip-width apart, optionally hold onto a wall for balance. Lift your heels off the ground by pushing through the balls of your feet, rising up as high as possible. Slowly lower back down.",
				Benefits:     "Strengthens calf muscles, improves ankle stability, and enhances lower leg endurance. Beneficial for activities like walking, running, and jumping.",
			},
			{
				Name:         "Assisted Lunges",
				Prescription: Reps{Count: 8, Sets: 2},
				PerSide:      true,
				Description:  "Stand near a wall or chair for support. Step forward with one leg, lowering your back knee toward the ground while keeping your front knee over your ankle. Push back to starting position. Alternate legs.",
				Benefits:     "Builds leg strength unilaterally, improves balance and stability. Helps correct muscle imbalances and enhances hip mobility. Great for developing lower body coordination.",
			},
		},
		Back: {
			{
				Name:         "Superman Hold",
				Prescription: Timed{Duration: Duration{Amount: 20, Unit: "seconds"}, Sets: 2},
				Description:  "Lie face down with arms extended overhead. Simultaneously lift your arms, chest, and legs off the ground, holding the position. Keep your neck neutral by looking at the floor.",
				Benefits:     "Strengthens back muscles, improves posture, and enhances core stability. Helps reduce lower back pain and improves overall spinal health.",
			},
			{
				Name:         "Band Pull-Aparts",
				Prescription: Reps{Count: 12, Sets: 2},
				Description:  "Hold a resistance band at shoulder height with arms extended forward, hands shoulder-width apart. Pull the band apart by moving your arms outward, squeezing your shoulder blades together. Slowly return to start.",
				Benefits:     "Targets upper back muscles, improves shoulder stability, and enhances posture. Helps reduce shoulder tension and improves overall upper body strength.",
			},
			{
				Name:         "Bird Dogs",
				Prescription: Reps{Count: 8, Sets: 2},
				PerSide:      true,
				Description:  "Start on hands and knees. Simultaneously extend your right arm forward and left leg back, keeping your back flat and core engaged. Return to start, then repeat with opposite limbs.",
				Benefits:     "Strengthens core muscles, improves balance and coordination. Targets back muscles and glutes, enhancing overall lower body strength and stability.",
			},
		},
		Chest: {
			{
				Name:         "Wall Push-ups",
				Prescription: Reps{Count: 10, Sets: 2},
				Description:  "Stand facing a wall at arm's length. Place your hands on the wall at shoulder height and width. Keep your body straight, slowly bend your elbows to bring your chest toward the wall, then push back to the starting position.",
				Benefits:     "Builds upper body strength, improves shoulder stability, and helps develop proper push-up form. Great for beginners to build chest, shoulder, and tricep muscles safely.",
			},
			{
				Name:         "Standing Chest Press with Band",
				Prescription: Reps{Count: 12, Sets: 2},
				Description:  "Loop a resistance band around a sturdy object at chest height. Facing away, hold the ends with elbows bent at sides. Press forward, extending arms straight ahead, then slowly return to start.",
				Benefits:     "Targets chest muscles, improves shoulder stability, and enhances upper body strength. Helps improve posture and reduces shoulder tension.",
			},
		},
		Core: {
			{
				Name:         "Modified Plank",
				Prescription: Timed{Duration: Duration{Amount: 20, Unit: "seconds"}, Sets: 2},
				Description:  "Start on your knees, then place your forearms on the ground. Extend your legs back, keeping knees on the ground. Keep your body in a straight line from head to knees, engaging your core muscles.",
				Benefits:     "Strengthens core muscles, improves posture, and enhances overall stability. Helps reduce lower back pain and improves overall spinal health.",
			},
			{
				Name:         "Knee Raises",
				Prescription: Reps{Count: 10, Sets: 2},
				Description:  "Lie on your back with legs extended. Place your hands by your sides or under your lower back for support. Slowly lift your knees toward your chest, then lower them back down with control.",
				Benefits:     "Targets abdominal muscles, improves lower back stability, and enhances overall core strength. Helps reduce lower back pain and improves overall posture.",
			},
			{
				Name:         "Modified Crunches",
				Prescription: Reps{Count: 12, Sets: 2},
				Description:  "Lie on your back with knees bent and feet flat. Place hands behind your head, supporting your neck. Lift your shoulders slightly off the ground, engaging your core muscles, then lower back down slowly.",
				Benefits:     "Strengthens abdominal muscles, improves posture, and enhances overall core strength. Helps reduce lower back pain and improves overall spinal health.",
			},
		},
		Shoulders: {
			{
				Name:         "Wall Angels",
				Prescription: Reps{Count: 10, Sets: 2},
				Description:  "Stand with your back against a wall, feet slightly away. Press your head, back, and arms against the wall. Slide your arms up and down like making a snow angel, keeping contact with the wall.",
				Benefits:     "Improves shoulder mobility, reduces shoulder tension, and enhances overall upper body flexibility. Helps improve posture and reduces shoulder pain.",
			},
			{
				Name:         "Arm Circles",
				Prescription: Timed{Duration: Duration{Amount: 30, Unit: "seconds"}},
				Description:  "Stand with feet shoulder-width apart. Extend arms out to sides at shoulder height. Make small circles forward for 15 seconds, then backward for 15 seconds, keeping arms straight.",
				Benefits:     "Improves shoulder mobility, reduces shoulder tension, and enhances overall upper body flexibility. Helps improve posture and reduces shoulder pain.",
			},
			{
				Name:         "Band Front Raises",
				Prescription: Reps{Count: 10, Sets: 2},
				Description:  "Stand on a resistance band with feet shoulder-width apart. Hold the ends at your thighs. Keeping arms straight, raise them forward to shoulder height, then lower with control.",
				Benefits:     "Targets shoulder muscles, improves shoulder stability, and enhances overall upper body strength. Helps improve posture and reduces shoulder tension.",
			},
		},
		Cardio: {
			{
				Name:         "Walking in Place",
				Prescription: Timed{Duration: Duration{Amount: 2, Unit: "minutes"}},
				Description:  "March in place, lifting knees high and swinging arms naturally. Maintain a steady pace and breathe regularly. Increase speed or knee height for more intensity.",
				Benefits:     "Improves cardiovascular health, increases blood flow, and enhances overall endurance. Helps reduce stress and improves overall mood.",
			},
			{
				Name:         "Modified Jumping Jacks",
				Prescription: Timed{Duration: Duration{Amount: 30, Unit: "seconds"}},
				Description:  "Stand with feet together. Step one foot out to the side while raising arms overhead, then step back while lowering arms. Alternate sides in a rhythmic motion.",
				Benefits:     "Improves cardiovascular health, increases blood flow, and enhances overall endurance. Helps reduce stress and improves overall mood.",
			},
			{
				Name:         "Step-Ups",
				Prescription: Timed{Duration: Duration{Amount: 1, Unit: "minute"}},
				Description:  "Using a sturdy step or bottom stair, step up with one foot, bringing the other foot up, then step back down. Alternate leading legs. Use a handrail for balance if needed.",
				Benefits:     "Improves cardiovascular health, increases blood flow, and enhances overall endurance. Targets leg muscles and improves overall lower body strength.",
			},
		},
	},
	Intermediate: {
		Arms: {
			{
				Name:         "Regular Push-ups",
				Prescription: Reps{Count: 10, Sets: 3},
				Description:  "Start in a plank position with hands slightly wider than shoulders. Lower your body until your chest nearly touches the ground, keeping your body in a straight line. Push back up to the starting position.",
			},
			{
				Name:         "Diamond Push-ups",
				Prescription: Reps{Count: 8, Sets: 3},
				Description:  "Start in a push-up position but place your hands close together with thumbs and index fingers touching to form a diamond shape. Lower your chest toward your hands, keeping elbows close to your body, then push back up.",
			},
			{
				Name:         "Tricep Dips",
				Prescription: Reps{Count: 12, Sets: 3},
				Description:  "Using parallel bars or a sturdy chair, grip the edges and lift your body. Lower yourself by bending your elbows, keeping them close to your body, until your upper arms are parallel to the ground. Push back up to start.",
			},
		},
		Legs: {
			{
				Name:         "Jump Squats",
				Prescription: Reps{Count: 15, Sets: 3},
				Description:  "Stand with feet shoulder-width apart. Lower into a squat, then explosively jump upward, reaching arms overhead. Land softly back in the squat position. Keep your core engaged throughout the movement.",
			},
			{
				Name:         "Walking Lunges",
				Prescription: Reps{Count: 12, Sets: 3},
				PerSide:      true,
				Description:  "Step forward into a lunge position, lowering your back knee toward the ground. Push off your front foot to bring your back foot forward into the next lunge. Continue alternating legs while moving forward.",
			},
			{
				Name:         "Single-Leg Calf Raises",
				Prescription: Reps{Count: 15, Sets: 3},
				PerSide:      true,
				Description:  "Stand on one leg, using a wall for balance if needed. Rise up onto your toes as high as possible, then lower your heel below the level of your toes. Complete all reps on one side before switching.",
			},
		},
		Back: {
			{
				Name:         "Superman with Arm/Leg Raise",
				Prescription: Timed{Duration: Duration{Amount: 30, Unit: "seconds"}, Sets: 3},
				Description:  "Lie face down with arms and legs extended. Lift opposite arm and leg simultaneously, holding briefly at the top. Lower and switch to the other side. Continue alternating in a controlled manner.",
			},
			{
				Name:         "Resistance Band Rows",
				Prescription: Reps{Count: 15, Sets: 3},
				Description:  "Secure a resistance band to a sturdy object at chest height. Step back to create tension. Pull the band toward your chest, squeezing your shoulder blades together, then slowly release back to start.",
			},
			{
				Name:         "Reverse Snow Angels",
				Prescription: Reps{Count: 12, Sets: 3},
				Description:  "Lie face down with arms by your sides. Simultaneously raise your chest and arms off the ground, sweeping your arms up overhead in a snow angel motion. Return to start position with control.",
			},
		},
		Chest: {
			{
				Name:         "Wide Push-ups",
				Prescription: Reps{Count: 12, Sets: 3},
				Description:  "Perform a push-up with hands placed wider than shoulder-width. Lower your chest toward the ground, keeping your core tight and body straight. Push back up to the starting position.",
			},
			{
				Name:         "Decline Push-ups",
				Prescription: Reps{Count: 10, Sets: 3},
				Description:  "Place your feet on an elevated surface (like a step or chair) and hands on the ground. Perform push-ups in this position, keeping your body straight. Lower until your chest nearly touches the ground, then push back up.",
			},
		},
		Core: {
			{
				Name:         "Plank",
				Prescription: Timed{Duration: Duration{Amount: 45, Unit: "seconds"}, Sets: 3},
				Description:  "Start in a forearm plank position, elbows under shoulders. Keep your body in a straight line from head to heels, engaging your core. Hold the position while breathing steadily.",
			},
			{
				Name:         "Mountain Climbers",
				Prescription: Timed{Duration: Duration{Amount: 30, Unit: "seconds"}, Sets: 3},
				Description:  "Start in a push-up position. Alternately drive your knees toward your chest in a running motion, keeping your core engaged and back flat. Maintain a steady pace.",
			},
			{
				Name:         "Russian Twists",
				Prescription: Reps{Count: 20, Sets: 3},
				Description:  "Sit with knees bent and feet lifted slightly off the ground. Lean back slightly, keeping your back straight. Rotate your torso from side to side, touching the ground beside your hips with your hands.",
			},
		},
		Shoulders: {
			{
				Name:         "Pike Push-ups",
				Prescription: Reps{Count: 8, Sets: 3},
				Description:  "Start in a downward dog position, forming an inverted V. Bend your elbows to lower your head toward the ground between your hands, then push back up. Keep your core engaged throughout.",
			},
			{
				Name:         "Band Shoulder Press",
				Prescription: Reps{Count: 12, Sets: 3},
				Description:  "Stand on a resistance band, holding the ends at shoulder height. Press the band overhead until your arms are fully extended, then slowly lower back to shoulder height.",
			},
			{
				Name:         "Lateral Raises with Band",
				Prescription: Reps{Count: 12, Sets: 3},
				Description:  "Stand on a resistance band with feet shoulder-width apart. Hold the ends at your sides. Raise your arms out to the sides until they're parallel to the ground, then lower with control.",
			},
		},
		Cardio: {
			{
				Name:         "High Knees",
				Prescription: Timed{Duration: Duration{Amount: 45, Unit: "seconds"}},
				Description:  "Run in place, lifting your knees as high as possible toward your chest. Pump your arms naturally. Maintain a quick pace while staying light on your feet.",
			},
			{
				Name:         "Burpees",
				Prescription: Reps{Count: 10, Sets: 3},
				Description:  "Start standing, drop into a squat position and place hands on the ground. Jump feet back into a plank, perform a push-up (optional), jump feet forward, then explosively jump up with arms overhead.",
			},
			{
				Name:         "Jump Rope",
				Prescription: Timed{Duration: Duration{Amount: 1, Unit: "minute"}},
				Description:  "Using a jump rope or simulating the motion, jump rhythmically while rotating your wrists to swing the rope. Keep your jumps small and stay on the balls of your feet.",
			},
		},
	},
	Advanced: {
		Arms: {
			{
				Name:         "Clap Push-ups",
				Prescription: Reps{Count: 8, Sets: 4},
				Description:  "Start in a push-up position. Lower your chest to the ground, then explosively push up with enough force to lift your hands off the ground and clap before landing back in the starting position.",
			},
			{
				Name:         "Pike Push-ups to Handstand",
				Prescription: Reps{Count: 6, Sets: 3},
				Description:  "Start in a pike position with feet close to hands. Walk your feet up a wall until you're in a handstand position. Perform a push-up, then walk feet back down. Requires good shoulder strength and balance.",
			},
			{
				Name:         "Pseudo Planche Push-ups",
				Prescription: Reps{Count: 8, Sets: 3},
				Description:  "Start in a push-up position with hands turned out 45 degrees and positioned near your hips. Lean forward, keeping body straight and shoulders protracted. Lower and push up while maintaining forward lean.",
			},
		},
		Legs: {
			{
				Name:         "Pistol Squats",
				Prescription: Reps{Count: 6, Sets: 3},
				PerSide:      true,
				Description:  "Stand on one leg, extend the other leg forward. Slowly lower your body on the standing leg while keeping the other leg straight and parallel to the ground. Push back up to standing. Maintain balance throughout.",
			},
			{
				Name:         "Plyometric Lunges",
				Prescription: Reps{Count: 12, Sets: 4},
				PerSide:      true,
				Description:  "Start in a lunge position. Jump explosively upward, switching legs mid-air to land in a lunge with opposite leg forward. Keep your core tight and maintain control during landing.",
			},
			{
				Name:         "Box Jumps",
				Prescription: Reps{Count: 10, Sets: 4},
				Description:  "Stand facing a sturdy elevated surface. Bend into a quarter squat, then explosively jump onto the box, landing softly with both feet. Step back down and repeat. Focus on landing quietly.",
			},
		},
		Back: {
			{
				Name:         "Inverted Rows",
				Prescription: Reps{Count: 12, Sets: 4},
				Description:  "Position yourself under a sturdy horizontal bar. Grasp the bar with hands shoulder-width apart, body straight. Pull your chest to the bar while keeping your body rigid, then lower with control.",
			},
			{
				Name:         "Renegade Rows",
				Prescription: Reps{Count: 10, Sets: 3},
				PerSide:      true,
				Description:  "Start in a push-up position holding dumbbells or with hands on sturdy elevated surfaces. Perform a row by pulling one hand to your hip while balancing on the other. Alternate sides.",
			},
			{
				Name:         "Back Extensions with Hold",
				Prescription: Reps{Count: 12, Sets: 3},
				Description:  "Lie face down. Lift your chest and legs off the ground simultaneously, arms extended overhead. Hold the raised position for 2-3 seconds before lowering. Keep your neck neutral throughout.",
			},
		},
		Chest: {
			{
				Name:         "Plyometric Push-ups",
				Prescription: Reps{Count: 8, Sets: 4},
				Description:  "Start in a push-up position. Lower your chest, then explosively push up so your hands leave the ground. Land softly and immediately go into the next repetition. Focus on explosive power.",
			},
			{
				Name:         "Archer Push-ups",
				Prescription: Reps{Count: 6, Sets: 3},
				PerSide:      true,
				Description:  "Start in a wide push-up position. Lower to one side by bending that arm while keeping the other arm straight. Push back up, then repeat on the other side. Alternating sides with each rep.",
			},
			{
				Name:         "Diamond to Wide Push-ups",
				Prescription: Reps{Count: 10, Sets: 3},
				Description:  "Alternate between diamond push-ups (hands together) and wide push-ups (hands wide). Perform one diamond push-up, then walk hands out to wide position for next rep. Continue alternating.",
			},
		},
		Core: {
			{
				Name:         "Dragon Flags",
				Prescription: Reps{Count: 6, Sets: 3},
				Description:  "Lie on a bench, holding behind your head. Lift your legs and lower back off the bench until only your upper back is in contact. Lower your body back down while keeping it straight.",
			},
			{
				Name:         "L-Sits",
				Prescription: Timed{Duration: Duration{Amount: 20, Unit: "seconds"}, Sets: 3},
				Description:  "Support your body on parallel bars or the ground. Lift your legs until they're parallel to the ground, forming an 'L' shape. Hold the position while keeping your arms straight and core tight.",
			},
			{
				Name:         "Windshield Wipers",
				Prescription: Reps{Count: 10, Sets: 3},
				Description:  "Lie on your back, legs straight up. Keep your legs together and lower them to one side, then sweep them to the other side in a controlled motion, like a windshield wiper. Keep shoulders on the ground.",
			},
		},
		Shoulders: {
			{
				Name:         "Handstand Push-ups",
				Prescription: Reps{Count: 5, Sets: 3},
				Description:  "Start in a handstand position against a wall. Lower your head toward the ground by bending your arms, then push back up to straight arms. Maintain body alignment throughout the movement.",
			},
			{
				Name:         "Pike Press to Handstand",
				Prescription: Reps{Count: 6, Sets: 3},
				Description:  "Start in a pike position. Press through your shoulders to lift your feet off the ground, working toward a handstand. Lower back to pike position with control. Progress gradually.",
			},
			{
				Name:         "Wall Walks",
				Prescription: Reps{Count: 4, Sets: 3},
				Description:  "Start in a push-up position with feet against a wall. Walk your feet up the wall while walking your hands back until you're in a handstand position. Reverse the movement to return to start.",
			},
		},
		Cardio: {
			{
				Name:         "Burpee Pull-ups",
				Prescription: Reps{Count: 8, Sets: 4},
				Description:  "Perform a burpee, then jump up to grab a pull-up bar. Perform a pull-up, then drop down and immediately go into the next burpee. Maintain form throughout the complex movement.",
			},
			{
				Name:         "Double Unders",
				Prescription: Timed{Duration: Duration{Amount: 45, Unit: "seconds"}},
				Description:  "Jump rope while passing the rope under your feet twice per jump. Requires quick wrist rotation and higher jumps. Stay on the balls of your feet and maintain a consistent rhythm.",
			},
			{
				Name:         "Sprinter Burpees",
				Prescription: Reps{Count: 10, Sets: 3},
				Description:  "Perform a burpee, but instead of a regular jump, explode into a sprinter's start position with one knee up. Alternate legs with each rep. Focus on explosive power and coordination.",
			},
		},
	},
}
