package pulse

import (
	"errors"
	"fmt"
	"math"
)

const (
	MinBPM = 1
	MaxBPM = 400
)

var ErrPulseOutOfRange = fmt.Errorf("pulse rate must be between %d and %d bpm", MinBPM, MaxBPM)

var errZeroInitial = errors.New("initial pulse rate is zero")

// Validate checks that bpm is a plausible heart rate.
func Validate(bpm int) error {
	if bpm < MinBPM || bpm > MaxBPM {
		return fmt.Errorf("%w: got %d", ErrPulseOutOfRange, bpm)
	}
	return nil
}

// Delta is the change between the pulse measured at workout start and at completion.
type Delta struct {
	Difference       int     `json:"difference"`
	PercentageChange float64 `json:"percentageChange"`
}

// ComputeDelta returns the absolute and relative (rounded to one decimal) pulse change.
// Inputs are expected to be validated; a zero initial yields a zero percentage.
func ComputeDelta(initial, final int) Delta {
	d := Delta{Difference: final - initial}
	if pct, err := percentageChange(initial, final); err == nil {
		d.PercentageChange = pct
	}
	return d
}

func percentageChange(initial, final int) (float64, error) {
	if initial == 0 {
		return 0, errZeroInitial
	}
	return Round1(float64(final-initial) / float64(initial) * 100), nil
}

// Round1 rounds to one decimal place, halves away from zero.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

type Intensity string

const (
	IntensityLight    Intensity = "light"
	IntensityModerate Intensity = "moderate"
	IntensityIntense  Intensity = "intense"
)

// Classify buckets a percentage change: up to 50% light, up to 100% moderate, above that intense.
func Classify(percentageChange float64) Intensity {
	switch {
	case percentageChange <= 50:
		return IntensityLight
	case percentageChange <= 100:
		return IntensityModerate
	default:
		return IntensityIntense
	}
}
