package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"bmr-calculator/internal/format"
	"bmr-calculator/internal/model"
)

var csvHeaders = []string{
	"date",
	"time",
	"calculation_id",
	"weight_kg",
	"height_cm",
	"age_years",
	"sex",
	"activity",
	"multiplier",
	"bmr",
	"tdee",
	"weight_loss_kcal",
	"maintenance_kcal",
	"muscle_gain_kcal",
}

// WriteCSV writes a single calculation as a semicolon-separated report with
// a header row. An existing file is truncated.
func WriteCSV(path string, c *model.Calculation) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("open csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = ';'

	if err := w.Write(csvHeaders); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}

	in := c.Input
	row := []string{
		c.Timestamp.Format("02.01.2006"),
		c.Timestamp.Format("15:04:05"),
		c.ID,
		format.FormatNumber(in.WeightKg),
		format.FormatNumber(in.HeightCm),
		format.FormatNumber(in.AgeYears),
		string(in.Sex),
		string(in.ActivityLevel),
		format.FormatNumber(in.ActivityLevel.Multiplier()),
		strconv.Itoa(c.Result.BMR),
		strconv.Itoa(c.Result.TDEE),
		strconv.Itoa(c.Result.WeightLossTarget()),
		strconv.Itoa(c.Result.MaintenanceTarget()),
		strconv.Itoa(c.Result.MuscleGainTarget()),
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("write csv row: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
