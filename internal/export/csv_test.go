package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"bmr-calculator/internal/model"
)

func sampleCalculation() *model.Calculation {
	return &model.Calculation{
		ID:        "6a1f0c2e-0000-4000-8000-000000000001",
		Timestamp: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		Input: model.Measurements{
			WeightKg:      70,
			HeightCm:      175,
			AgeYears:      30,
			Sex:           model.SexMale,
			ActivityLevel: model.ActivityModerate,
		},
		Result: model.Result{BMR: 1649, TDEE: 2556, ActivityLabel: "moderate activity 3–5 days/week"},
	}
}

func TestWriteCSV_NewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")

	if err := WriteCSV(path, sampleCalculation()); err != nil {
		t.Fatalf("WriteCSV() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines (header + 1 row), got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "date;time;calculation_id;") {
		t.Errorf("unexpected header: %s", lines[0])
	}
	want := "01.01.2024;12:00:00;6a1f0c2e-0000-4000-8000-000000000001;70;175;30;male;moderate;1.55;1649;2556;2056;2556;2856"
	if lines[1] != want {
		t.Errorf("row = %q, want %q", lines[1], want)
	}
}

func TestWriteCSV_Truncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")

	for i := 0; i < 2; i++ {
		if err := WriteCSV(path, sampleCalculation()); err != nil {
			t.Fatalf("WriteCSV() #%d error: %v", i, err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Errorf("report should hold a single result, got %d lines", len(lines))
	}
}

func TestWriteCSV_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "report.csv")
	if err := WriteCSV(path, sampleCalculation()); err == nil {
		t.Error("expected error for missing directory")
	}
}
