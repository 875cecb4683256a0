package ui

import (
	"fyne.io/fyne/v2/widget"

	"bmr-calculator/internal/metabolic"
)

// newMeasurementEntry creates an entry that flags non-numeric or
// non-positive input while typing. The hint never blocks Calculate.
func newMeasurementEntry(field, placeholder string) *widget.Entry {
	e := widget.NewEntry()
	e.SetPlaceHolder(placeholder)
	e.Validator = measurementValidator(field)
	return e
}

// measurementValidator returns nil for empty text so an untouched form is
// not shown in an error state.
func measurementValidator(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return nil
		}
		return metabolic.ValidateNumber(field, s)
	}
}
