// Package metabolic computes Basal Metabolic Rate and Total Daily Energy
// Expenditure with the Mifflin-St Jeor equation.
package metabolic

import (
	"math"

	"bmr-calculator/internal/model"
)

const (
	maleConstant   = 5.0
	femaleConstant = -161.0
)

// RawBMR returns the unrounded Mifflin-St Jeor BMR in kcal/day.
func RawBMR(weightKg, heightCm, ageYears float64, sex model.Sex) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*ageYears
	if sex == model.SexMale {
		return bmr + maleConstant
	}
	return bmr + femaleConstant
}

// Compute applies the formula to already validated input. It does not check
// its arguments; call Validate first.
//
// TDEE is derived from the unrounded BMR. Both values are rounded half away
// from zero.
func Compute(weightKg, heightCm, ageYears float64, sex model.Sex, level model.ActivityLevel) model.Result {
	bmr := RawBMR(weightKg, heightCm, ageYears, sex)
	tdee := bmr * level.Multiplier()

	return model.Result{
		BMR:           int(math.Round(bmr)),
		TDEE:          int(math.Round(tdee)),
		ActivityLabel: level.Label(),
	}
}

// ComputeMeasurements is Compute over a Measurements value.
func ComputeMeasurements(m model.Measurements) model.Result {
	return Compute(m.WeightKg, m.HeightCm, m.AgeYears, m.Sex, m.ActivityLevel)
}

// Calculate validates f and computes its result.
func Calculate(f model.InputFields) (model.Result, error) {
	m, err := Validate(f)
	if err != nil {
		return model.Result{}, err
	}
	return ComputeMeasurements(m), nil
}
