package workouts

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/JustRob12/HomeWorkoutGenerator/internal/workouts/pulse"
)

var (
	ErrUnknownStatus       = errors.New("unknown workout status")
	ErrInvalidTransition   = errors.New("invalid workout status transition")
	ErrMissingInitialPulse = errors.New("workout has no initial pulse rate")
)

type Status string

const (
	StatusInactive  Status = "inactive"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

func ParseStatus(s string) (Status, error) {
	switch status := Status(strings.ToLower(strings.TrimSpace(s))); status {
	case StatusInactive, StatusActive, StatusCompleted:
		return status, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
}

// next holds the only allowed transition out of each non-terminal state.
var next = map[Status]Status{
	StatusInactive: StatusActive,
	StatusActive:   StatusCompleted,
}

func CanTransition(from, to Status) bool {
	n, ok := next[from]
	return ok && n == to
}

// Transition moves the workout to status `to`, recording the pulse measured at that moment.
// The workout is left untouched when an error is returned.
func (w *Workout) Transition(to Status, bpm int, now time.Time) error {
	if !CanTransition(w.Status, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, w.Status, to)
	}
	if err := pulse.Validate(bpm); err != nil {
		return err
	}

	switch to {
	case StatusActive:
		w.start(bpm, now)
	case StatusCompleted:
		if w.PulseRates.Initial == nil {
			return ErrMissingInitialPulse
		}
		w.complete(bpm, now)
	}

	return nil
}

func (w *Workout) start(initialBPM int, now time.Time) {
	w.Status = StatusActive
	w.PulseRates.Initial = &initialBPM
	w.ActivatedAt = &now
}

func (w *Workout) complete(finalBPM int, now time.Time) {
	delta := pulse.ComputeDelta(*w.PulseRates.Initial, finalBPM)
	w.Status = StatusCompleted
	w.PulseRates.Final = &finalBPM
	w.PulseRates.Difference = &delta.Difference
	w.PulseRates.PercentageChange = &delta.PercentageChange
	w.CompletedAt = &now
}
