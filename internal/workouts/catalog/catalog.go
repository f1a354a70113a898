package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrUnknownLevel    = errors.New("unknown fitness level")
	ErrUnknownBodyPart = errors.New("unknown body part")
)

type Level string

const (
	Beginner     Level = "beginner"
	Intermediate Level = "intermediate"
	Advanced     Level = "advanced"
)

var Levels = []Level{Beginner, Intermediate, Advanced}

func ParseLevel(s string) (Level, error) {
	level := Level(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Levels, level) {
		return "", fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
	return level, nil
}

// Title returns the capitalised level name, e.g. "Beginner".
func (l Level) Title() string {
	if l == "" {
		return ""
	}
	return strings.ToUpper(string(l[:1])) + string(l[1:])
}

type BodyPart string

const (
	Arms      BodyPart = "arms"
	Legs      BodyPart = "legs"
	Back      BodyPart = "back"
	Chest     BodyPart = "chest"
	Core      BodyPart = "core"
	Shoulders BodyPart = "shoulders"
	Cardio    BodyPart = "cardio"
)

var BodyParts = []BodyPart{Arms, Legs, Back, Chest, Core, Shoulders, Cardio}

func ParseBodyPart(s string) (BodyPart, error) {
	part := BodyPart(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(BodyParts, part) {
		return "", fmt.Errorf("%w: %q", ErrUnknownBodyPart, s)
	}
	return part, nil
}

// Catalog is the immutable exercise table keyed by level and body part.
// It is safe for concurrent use since nothing mutates it after construction.
type Catalog struct {
	table map[Level]map[BodyPart][]Exercise
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{table: defaultTable}
}

// New builds a catalog from an arbitrary table; the table is deep copied.
func New(table map[Level]map[BodyPart][]Exercise) *Catalog {
	copied := make(map[Level]map[BodyPart][]Exercise, len(table))
	for level, parts := range table {
		copied[level] = make(map[BodyPart][]Exercise, len(parts))
		for part, exercises := range parts {
			copied[level][part] = cloneExercises(exercises)
		}
	}
	return &Catalog{table: copied}
}

// Lookup returns a copy of the bucket for the given level and body part, in catalog order.
// Unknown combinations yield an empty, non-nil slice.
func (c *Catalog) Lookup(level Level, part BodyPart) []Exercise {
	exercises := c.table[level][part]
	if len(exercises) == 0 {
		return []Exercise{}
	}
	return cloneExercises(exercises)
}

// Bucket is one {level, bodyPart} slice of the catalog, as listed by the exercises endpoint.
type Bucket struct {
	Level     Level      `json:"level"`
	BodyPart  BodyPart   `json:"bodyPart"`
	Exercises []Exercise `json:"exercises"`
}

// Buckets lists catalog buckets in a stable order, optionally filtered by level and/or body part
// (empty filter value matches all).
func (c *Catalog) Buckets(level Level, part BodyPart) []Bucket {
	var buckets []Bucket
	for _, l := range Levels {
		if level != "" && l != level {
			continue
		}
		for _, p := range BodyParts {
			if part != "" && p != part {
				continue
			}
			exercises := c.Lookup(l, p)
			if len(exercises) == 0 {
				continue
			}
			buckets = append(buckets, Bucket{
				Level:     l,
				BodyPart:  p,
				Exercises: exercises,
			})
		}
	}
	return buckets
}

func cloneExercises(exercises []Exercise) []Exercise {
	// Exercise holds only value types, a shallow slice copy is a deep copy
	return slices.Clone(exercises)
}
