package format

import (
	"fmt"
	"strconv"
	"strings"

	"bmr-calculator/internal/model"
)

// FormatNumber renders a measurement without trailing zeros (70, 62.5).
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatInputs produces a one-line description of the measurements.
func FormatInputs(m model.Measurements) string {
	return fmt.Sprintf("%s kg, %s cm, %s years, %s, %s",
		FormatNumber(m.WeightKg), FormatNumber(m.HeightCm), FormatNumber(m.AgeYears),
		m.Sex, m.ActivityLevel.Title())
}

// FormatRecommendations returns the three goal lines derived from TDEE.
func FormatRecommendations(r model.Result) []string {
	return []string{
		fmt.Sprintf("Weight loss:     %d kcal/day (-0.5 kg/week)", r.WeightLossTarget()),
		fmt.Sprintf("Maintenance:     %d kcal/day", r.MaintenanceTarget()),
		fmt.Sprintf("Muscle gain:     %d kcal/day (+0.3 kg/week)", r.MuscleGainTarget()),
	}
}

// FormatResult produces a human-readable summary of a calculation.
func FormatResult(c *model.Calculation) string {
	var b strings.Builder

	b.WriteString("=== Metabolic Rate ===\n")
	if !c.Timestamp.IsZero() {
		b.WriteString(fmt.Sprintf("Timestamp:       %s\n", c.Timestamp.Format("2006-01-02 15:04:05")))
	}
	b.WriteString(fmt.Sprintf("Weight:          %s kg\n", FormatNumber(c.Input.WeightKg)))
	b.WriteString(fmt.Sprintf("Height:          %s cm\n", FormatNumber(c.Input.HeightCm)))
	b.WriteString(fmt.Sprintf("Age:             %s years\n", FormatNumber(c.Input.AgeYears)))
	b.WriteString(fmt.Sprintf("Sex:             %s\n", c.Input.Sex.Title()))
	b.WriteString(fmt.Sprintf("Activity:        %s\n", c.Input.ActivityLevel.Title()))

	b.WriteString("\n--- Results ---\n")
	b.WriteString(fmt.Sprintf("BMR:             %d kcal\n", c.Result.BMR))
	b.WriteString(fmt.Sprintf("TDEE:            %d kcal (%s)\n", c.Result.TDEE, c.Result.ActivityLabel))

	b.WriteString("\n--- Recommendations ---\n")
	for _, line := range FormatRecommendations(c.Result) {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("======================")
	return b.String()
}
