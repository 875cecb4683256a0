package model

import (
	"fmt"
	"strings"
)

// Sex selects the constant term of the Mifflin-St Jeor equation.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// Valid reports whether s is male or female.
func (s Sex) Valid() bool {
	return s == SexMale || s == SexFemale
}

// Title returns the capitalized caption used by the form.
func (s Sex) Title() string {
	switch s {
	case SexMale:
		return "Male"
	case SexFemale:
		return "Female"
	}
	return string(s)
}

// ParseSex accepts "male"/"female" (or "m"/"f"), case-insensitively.
func ParseSex(v string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "male", "m":
		return SexMale, nil
	case "female", "f":
		return SexFemale, nil
	}
	return "", fmt.Errorf("unknown sex %q (want male or female)", v)
}

// InputFields is the raw form state. Numeric fields hold the text exactly as
// typed and are only parsed on validation.
type InputFields struct {
	Weight        string // kg
	Height        string // cm
	Age           string // years
	Sex           Sex
	ActivityLevel ActivityLevel
}

// DefaultInputFields returns an empty form with male/moderate preselected.
func DefaultInputFields() InputFields {
	return InputFields{
		Sex:           SexMale,
		ActivityLevel: ActivityModerate,
	}
}

// Measurements holds validated, parsed input.
type Measurements struct {
	WeightKg      float64
	HeightCm      float64
	AgeYears      float64
	Sex           Sex
	ActivityLevel ActivityLevel
}
