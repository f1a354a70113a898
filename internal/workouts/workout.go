package workouts

import (
	"time"

	"github.com/JustRob12/HomeWorkoutGenerator/internal/workouts/generator"
	"github.com/JustRob12/HomeWorkoutGenerator/internal/workouts/pulse"
)

// PulseRates are filled in step by step: initial on start, the rest on completion.
type PulseRates struct {
	Initial          *int     `json:"initial,omitempty"`
	Final            *int     `json:"final,omitempty"`
	Difference       *int     `json:"difference,omitempty"`
	PercentageChange *float64 `json:"percentageChange,omitempty"`
}

// Workout is a saved generated workout owned by a user.
type Workout struct {
	ID          string            `json:"id"`
	Username    string            `json:"username"`
	Workout     generator.Workout `json:"workout"`
	Status      Status            `json:"status"`
	PulseRates  PulseRates        `json:"pulseRates"`
	CreatedAt   time.Time         `json:"createdAt"`
	ActivatedAt *time.Time        `json:"activatedAt,omitempty"`
	CompletedAt *time.Time        `json:"completedAt,omitempty"`
}

// PulseRecord is a completed workout with its intensity band, as shown in the pulse history.
type PulseRecord struct {
	Workout
	Intensity pulse.Intensity `json:"intensity"`
}

type Stats struct {
	TotalWorkouts      int                     `json:"totalWorkouts"`
	Inactive           int                     `json:"inactive"`
	Active             int                     `json:"active"`
	Completed          int                     `json:"completed"`
	CompletedExercises int                     `json:"completedExercises"`
	CompletedMinutes   int                     `json:"completedMinutes"`
	AvgPulseChange     *float64                `json:"avgPulseChange,omitempty"`
	MaxPulseChange     *float64                `json:"maxPulseChange,omitempty"`
	Intensity          map[pulse.Intensity]int `json:"intensity"`
	LastCompletedAt    *time.Time              `json:"lastCompletedAt,omitempty"`
}
