package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidDuration = errors.New("invalid duration")

// Exercise is a single catalog entry. Selected exercises are copied out of the catalog,
// so callers may adjust the prescription freely.
type Exercise struct {
	Name         string
	Prescription Prescription
	PerSide      bool
	Description  string
	Benefits     string
}

// Prescription is one of Reps, Timed or RepsTimed.
type Prescription interface {
	// SetCount returns the number of sets, 0 if the prescription does not specify any.
	SetCount() int
	isPrescription()
}

type Reps struct {
	Count int
	Sets  int
}

type Timed struct {
	Duration Duration
	Sets     int
}

type RepsTimed struct {
	Count    int
	Duration Duration
	Sets     int
}

func (r Reps) SetCount() int      { return r.Sets }
func (t Timed) SetCount() int     { return t.Sets }
func (r RepsTimed) SetCount() int { return r.Sets }

func (Reps) isPrescription()      {}
func (Timed) isPrescription()     {}
func (RepsTimed) isPrescription() {}

// Duration is an amount with a free-text unit, e.g. "20 seconds" or "1 minute".
type Duration struct {
	Amount int
	Unit   string
}

func ParseDuration(s string) (Duration, error) {
	amountStr, unit, ok := strings.Cut(strings.TrimSpace(s), " ")
	if !ok {
		return Duration{}, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}
	amount, err := strconv.Atoi(amountStr)
	if err != nil || amount < 0 {
		return Duration{}, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}
	unit = strings.TrimSpace(unit)
	if unit == "" {
		return Duration{}, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}
	return Duration{Amount: amount, Unit: unit}, nil
}

func (d Duration) String() string {
	return fmt.Sprintf("%d %s", d.Amount, d.Unit)
}

// exerciseJSON is the flat document shape stored with workouts and sent to clients.
type exerciseJSON struct {
	Name        string `json:"name"`
	Reps        *int   `json:"reps,omitempty"`
	Sets        *int   `json:"sets,omitempty"`
	Duration    string `json:"duration,omitempty"`
	PerSide     bool   `json:"perSide,omitempty"`
	Description string `json:"description"`
	Benefits    string `json:"benefits,omitempty"`
}

func (e Exercise) MarshalJSON() ([]byte, error) {
	doc := exerciseJSON{
		Name:        e.Name,
		PerSide:     e.PerSide,
		Description: e.Description,
		Benefits:    e.Benefits,
	}

	var reps, sets int
	switch p := e.Prescription.(type) {
	case Reps:
		reps, sets = p.Count, p.Sets
		doc.Reps = &reps
	case Timed:
		sets = p.Sets
		doc.Duration = p.Duration.String()
	case RepsTimed:
		reps, sets = p.Count, p.Sets
		doc.Reps = &reps
		doc.Duration = p.Duration.String()
	case nil:
		return nil, fmt.Errorf("exercise %q has no prescription", e.Name)
	default:
		return nil, fmt.Errorf("exercise %q: unsupported prescription %T", e.Name, p)
	}
	if sets > 0 {
		doc.Sets = &sets
	}

	return json.Marshal(doc)
}

func (e *Exercise) UnmarshalJSON(data []byte) error {
	var doc exerciseJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	var sets int
	if doc.Sets != nil {
		sets = *doc.Sets
	}

	var duration Duration
	if doc.Duration != "" {
		d, err := ParseDuration(doc.Duration)
		if err != nil {
			return fmt.Errorf("exercise %q: %w", doc.Name, err)
		}
		duration = d
	}

	switch {
	case doc.Reps != nil && doc.Duration != "":
		e.Prescription = RepsTimed{Count: *doc.Reps, Duration: duration, Sets: sets}
	case doc.Reps != nil:
		e.Prescription = Reps{Count: *doc.Reps, Sets: sets}
	case doc.Duration != "":
		e.Prescription = Timed{Duration: duration, Sets: sets}
	default:
		return fmt.Errorf("exercise %q has neither reps nor duration", doc.Name)
	}

	e.Name = doc.Name
	e.PerSide = doc.PerSide
	e.Description = doc.Description
	e.Benefits = doc.Benefits

	return nil
}
