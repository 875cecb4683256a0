package metabolic

import (
	"math"
	"strconv"
	"strings"

	"bmr-calculator/internal/model"
)

type numericField struct {
	name string
	text string
	dst  *float64
}

// Validate parses the numeric fields of f and checks that they are positive.
// Parse failures across all three fields are reported before range failures.
func Validate(f model.InputFields) (model.Measurements, error) {
	m := model.Measurements{
		Sex:           f.Sex,
		ActivityLevel: f.ActivityLevel,
	}

	fields := []numericField{
		{"weight", f.Weight, &m.WeightKg},
		{"height", f.Height, &m.HeightCm},
		{"age", f.Age, &m.AgeYears},
	}

	for _, nf := range fields {
		v, ok := parseNumber(nf.text)
		if !ok {
			return model.Measurements{}, &ValidationError{Field: nf.name, Value: nf.text, Err: ErrMissingField}
		}
		*nf.dst = v
	}

	if !f.Sex.Valid() {
		return model.Measurements{}, &ValidationError{Field: "sex", Value: string(f.Sex), Err: ErrMissingField}
	}
	if !f.ActivityLevel.Valid() {
		return model.Measurements{}, &ValidationError{Field: "activity", Value: string(f.ActivityLevel), Err: ErrMissingField}
	}

	for _, nf := range fields {
		if *nf.dst <= 0 {
			return model.Measurements{}, &ValidationError{Field: nf.name, Value: nf.text, Err: ErrOutOfRange}
		}
	}

	bmr := RawBMR(m.WeightKg, m.HeightCm, m.AgeYears, m.Sex)
	if !withinCalorieRange(bmr) || !withinCalorieRange(bmr*m.ActivityLevel.Multiplier()) {
		return model.Measurements{}, &ValidationError{
			Field: "measurements",
			Value: strconv.FormatFloat(bmr, 'g', -1, 64),
			Err:   ErrOutOfRange,
		}
	}

	return m, nil
}

// maxCalories bounds |BMR| and |TDEE| so that rounding, the int conversion
// and the goal offsets stay exact.
const maxCalories = 1 << 53

func withinCalorieRange(kcal float64) bool {
	return math.Abs(kcal) <= maxCalories
}

// ValidateNumber checks a single numeric field the same way Validate does.
// The form uses it for per-entry hints.
func ValidateNumber(name, text string) error {
	v, ok := parseNumber(text)
	if !ok {
		return &ValidationError{Field: name, Value: text, Err: ErrMissingField}
	}
	if v <= 0 {
		return &ValidationError{Field: name, Value: text, Err: ErrOutOfRange}
	}
	return nil
}

// parseNumber accepts finite decimal numbers only; NaN and Inf count as missing.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
