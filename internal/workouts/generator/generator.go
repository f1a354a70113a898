package generator

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/JustRob12/HomeWorkoutGenerator/internal/workouts/catalog"
)

const (
	// ObeseBMIThreshold is the BMI at and above which prescriptions are scaled down.
	ObeseBMIThreshold = 30.0
	// ScaleFactor applied to reps and duration amounts for BMI >= ObeseBMIThreshold.
	ScaleFactor = 0.8
	// MinutesPerExercise is used for the estimated workout duration.
	MinutesPerExercise = 3
	maxPerArea         = 2
)

var ErrInvalidBodyMetrics = errors.New("invalid body metrics")

// Workout is a freshly generated, not yet persisted workout.
type Workout struct {
	Name      string             `json:"name"`
	Duration  string             `json:"duration"`
	Exercises []catalog.Exercise `json:"exercises"`
}

type Generator struct {
	catalog *catalog.Catalog

	mu  sync.Mutex
	rnd *rand.Rand
}

type Option func(g *Generator)

// WithRand sets the random source used for exercise selection, e.g. a seeded one in tests.
func WithRand(rnd *rand.Rand) Option {
	return func(g *Generator) {
		g.rnd = rnd
	}
}

func New(c *catalog.Catalog, opts ...Option) *Generator {
	g := &Generator{catalog: c}
	for _, opt := range opts {
		opt(g)
	}
	if g.rnd == nil {
		now := uint64(time.Now().UnixNano())
		g.rnd = rand.New(rand.NewPCG(now, now>>17|1))
	}
	return g
}

// Generate picks one or two random exercises for each target area (in the given order)
// and scales them down for a BMI at or above ObeseBMIThreshold.
// It never fails; an empty exercise list is a valid result.
func (g *Generator) Generate(level catalog.Level, bmi float64, targetAreas []catalog.BodyPart) Workout {
	exercises := make([]catalog.Exercise, 0, len(targetAreas)*maxPerArea)
	for _, area := range targetAreas {
		available := g.catalog.Lookup(level, area)
		if len(available) == 0 {
			continue
		}
		exercises = append(exercises, g.pick(available)...)
	}

	if bmi >= ObeseBMIThreshold {
		for i := range exercises {
			exercises[i].Prescription = Scale(exercises[i].Prescription, ScaleFactor)
		}
	}

	return Workout{
		Name:      fmt.Sprintf("Custom %s Workout", level.Title()),
		Duration:  EstimateDuration(len(exercises)),
		Exercises: exercises,
	}
}

// pick shuffles the (already copied) bucket and takes 1 or 2 exercises from it, without replacement.
func (g *Generator) pick(available []catalog.Exercise) []catalog.Exercise {
	g.mu.Lock()
	defer g.mu.Unlock()

	count := 1 + g.rnd.IntN(maxPerArea)
	g.rnd.Shuffle(len(available), func(i, j int) {
		available[i], available[j] = available[j], available[i]
	})

	return available[:min(count, len(available))]
}

// Scale reduces a prescription for higher-BMI users: one set less (never below 1),
// reps and duration amount multiplied by factor and floored.
// A floored amount of 0 is raised to 1, so "1 minute" stays "1 minute" instead of becoming "0 minutes".
func Scale(p catalog.Prescription, factor float64) catalog.Prescription {
	switch v := p.(type) {
	case catalog.Reps:
		return catalog.Reps{
			Count: scaleAmount(v.Count, factor),
			Sets:  reduceSets(v.Sets),
		}
	case catalog.Timed:
		return catalog.Timed{
			Duration: scaleDuration(v.Duration, factor),
			Sets:     reduceSets(v.Sets),
		}
	case catalog.RepsTimed:
		return catalog.RepsTimed{
			Count:    scaleAmount(v.Count, factor),
			Duration: scaleDuration(v.Duration, factor),
			Sets:     reduceSets(v.Sets),
		}
	default:
		return p
	}
}

func reduceSets(sets int) int {
	// unspecified stays unspecified
	if sets == 0 {
		return 0
	}
	return max(1, sets-1)
}

func scaleAmount(amount int, factor float64) int {
	return max(1, int(math.Floor(float64(amount)*factor)))
}

func scaleDuration(d catalog.Duration, factor float64) catalog.Duration {
	return catalog.Duration{
		Amount: scaleAmount(d.Amount, factor),
		Unit:   d.Unit,
	}
}

// EstimateDuration returns the estimated total workout time for the given number of exercises.
func EstimateDuration(exerciseCount int) string {
	return fmt.Sprintf("%d minutes", exerciseCount*MinutesPerExercise)
}

// BMI computes the body mass index from weight in kilograms and height in centimeters.
func BMI(weightKg, heightCm float64) (float64, error) {
	if weightKg <= 0 || heightCm <= 0 {
		return 0, fmt.Errorf("%w: weight and height must be positive", ErrInvalidBodyMetrics)
	}
	heightM := heightCm / 100
	return weightKg / (heightM * heightM), nil
}
