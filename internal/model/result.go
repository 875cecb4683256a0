package model

import "time"

// Calorie offsets applied to TDEE for the goal recommendations.
const (
	WeightLossDeficit = 500 // ~0.5 kg/week
	MuscleGainSurplus = 300 // ~0.3 kg/week
)

// Result is the output of one computation. Values are whole calories.
type Result struct {
	BMR           int
	TDEE          int
	ActivityLabel string
}

// WeightLossTarget returns the daily intake for ~0.5 kg/week loss.
// Not clamped: extreme inputs can make it negative.
func (r Result) WeightLossTarget() int {
	return r.TDEE - WeightLossDeficit
}

// MaintenanceTarget returns the daily intake to keep current weight.
func (r Result) MaintenanceTarget() int {
	return r.TDEE
}

// MuscleGainTarget returns the daily intake for ~0.3 kg/week gain.
func (r Result) MuscleGainTarget() int {
	return r.TDEE + MuscleGainSurplus
}

// Calculation is a Result together with the input it was computed from.
type Calculation struct {
	ID        string // uuid
	Timestamp time.Time
	Input     Measurements
	Result    Result
}
