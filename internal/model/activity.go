package model

import (
	"fmt"
	"strings"
)

// ActivityLevel is one of the five fixed activity keys.
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityActive    ActivityLevel = "active"
	ActivityExtreme   ActivityLevel = "extreme"
)

type activityInfo struct {
	level      ActivityLevel
	multiplier float64
	title      string
	label      string
}

// activityTable is ordered by increasing multiplier. It is part of the
// calculation contract and must not change at runtime.
var activityTable = [...]activityInfo{
	{ActivitySedentary, 1.2, "Sedentary", "little/no exercise"},
	{ActivityLight, 1.375, "Lightly active", "light activity 1–3 days/week"},
	{ActivityModerate, 1.55, "Moderately active", "moderate activity 3–5 days/week"},
	{ActivityActive, 1.725, "Very active", "heavy activity 6–7 days/week"},
	{ActivityExtreme, 1.9, "Extremely active", "professional athlete level"},
}

// ActivityLevels returns every activity level in table order.
func ActivityLevels() []ActivityLevel {
	out := make([]ActivityLevel, len(activityTable))
	for i, a := range activityTable {
		out[i] = a.level
	}
	return out
}

func (a ActivityLevel) info() (activityInfo, bool) {
	for _, e := range activityTable {
		if e.level == a {
			return e, true
		}
	}
	return activityInfo{}, false
}

// Valid reports whether a is one of the table keys.
func (a ActivityLevel) Valid() bool {
	_, ok := a.info()
	return ok
}

// Multiplier returns the TDEE multiplier, or 0 for an unknown level.
func (a ActivityLevel) Multiplier() float64 {
	e, _ := a.info()
	return e.multiplier
}

// Label returns the human-readable description shown next to the TDEE.
func (a ActivityLevel) Label() string {
	e, _ := a.info()
	return e.label
}

// Title returns the short caption used in option lists.
func (a ActivityLevel) Title() string {
	e, _ := a.info()
	return e.title
}

// DisplayName combines title and label, e.g. "Sedentary (little/no exercise)".
func (a ActivityLevel) DisplayName() string {
	e, ok := a.info()
	if !ok {
		return string(a)
	}
	return fmt.Sprintf("%s (%s)", e.title, e.label)
}

// ParseActivityLevel accepts a table key, case-insensitively.
func ParseActivityLevel(s string) (ActivityLevel, error) {
	a := ActivityLevel(strings.ToLower(strings.TrimSpace(s)))
	if !a.Valid() {
		return "", fmt.Errorf("unknown activity level %q (want one of %s)", s, activityKeys())
	}
	return a, nil
}

// ActivityLevelByDisplayName is the inverse of DisplayName.
func ActivityLevelByDisplayName(name string) (ActivityLevel, bool) {
	for _, e := range activityTable {
		if e.level.DisplayName() == name {
			return e.level, true
		}
	}
	return "", false
}

func activityKeys() string {
	keys := make([]string, len(activityTable))
	for i, e := range activityTable {
		keys[i] = string(e.level)
	}
	return strings.Join(keys, ", ")
}
