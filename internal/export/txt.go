package export

import (
	"fmt"
	"os"

	"bmr-calculator/internal/format"
	"bmr-calculator/internal/model"
)

// WriteTXT writes the formatted summary of a calculation to path.
func WriteTXT(path string, c *model.Calculation) error {
	if err := os.WriteFile(path, []byte(format.FormatResult(c)+"\n"), 0644); err != nil {
		return fmt.Errorf("write txt file: %w", err)
	}
	return nil
}

// WriteReport writes base.csv and base.txt for c and returns both paths.
func WriteReport(base string, c *model.Calculation) (csvPath, txtPath string, err error) {
	csvPath = base + ".csv"
	txtPath = base + ".txt"

	if err := EnsureDir(csvPath); err != nil {
		return "", "", fmt.Errorf("create report dir: %w", err)
	}
	if err := WriteCSV(csvPath, c); err != nil {
		return "", "", err
	}
	if err := WriteTXT(txtPath, c); err != nil {
		return csvPath, "", err
	}
	return csvPath, txtPath, nil
}
