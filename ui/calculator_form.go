package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"bmr-calculator/internal/model"
)

// CalculatorForm holds the GUI form fields for the body measurements.
type CalculatorForm struct {
	weightEntry    *widget.Entry
	heightEntry    *widget.Entry
	ageEntry       *widget.Entry
	sexRadio       *widget.RadioGroup
	activitySelect *widget.Select
	form           *fyne.Container
}

// NewCalculatorForm creates the form with male/moderate preselected.
func NewCalculatorForm() *CalculatorForm {
	cf := &CalculatorForm{}
	defaults := model.DefaultInputFields()

	cf.weightEntry = newMeasurementEntry("weight", "e.g. 70")
	cf.heightEntry = newMeasurementEntry("height", "e.g. 175")
	cf.ageEntry = newMeasurementEntry("age", "e.g. 30")

	cf.sexRadio = widget.NewRadioGroup([]string{model.SexMale.Title(), model.SexFemale.Title()}, nil)
	cf.sexRadio.Horizontal = true
	cf.sexRadio.Required = true
	cf.sexRadio.SetSelected(defaults.Sex.Title())

	levels := model.ActivityLevels()
	options := make([]string, len(levels))
	for i, l := range levels {
		options[i] = l.DisplayName()
	}
	cf.activitySelect = widget.NewSelect(options, nil)
	cf.activitySelect.SetSelected(defaults.ActivityLevel.DisplayName())

	cf.form = container.NewVBox(
		widget.NewLabelWithStyle("Your Data", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewForm(
			widget.NewFormItem("Weight (kg)", cf.weightEntry),
			widget.NewFormItem("Height (cm)", cf.heightEntry),
			widget.NewFormItem("Age (years)", cf.ageEntry),
			widget.NewFormItem("Sex", cf.sexRadio),
			widget.NewFormItem("Activity Level", cf.activitySelect),
		),
	)

	return cf
}

// Container returns the form's Fyne container.
func (cf *CalculatorForm) Container() *fyne.Container {
	return cf.form
}

// Fields returns the current form state. Numeric text is passed through
// unparsed; validation happens on Calculate.
func (cf *CalculatorForm) Fields() model.InputFields {
	f := model.InputFields{
		Weight: cf.weightEntry.Text,
		Height: cf.heightEntry.Text,
		Age:    cf.ageEntry.Text,
	}

	switch cf.sexRadio.Selected {
	case model.SexMale.Title():
		f.Sex = model.SexMale
	case model.SexFemale.Title():
		f.Sex = model.SexFemale
	}

	if level, ok := model.ActivityLevelByDisplayName(cf.activitySelect.Selected); ok {
		f.ActivityLevel = level
	}
	return f
}

// SetFields replaces the form content.
func (cf *CalculatorForm) SetFields(f model.InputFields) {
	cf.weightEntry.SetText(f.Weight)
	cf.heightEntry.SetText(f.Height)
	cf.ageEntry.SetText(f.Age)
	if f.Sex.Valid() {
		cf.sexRadio.SetSelected(f.Sex.Title())
	}
	if f.ActivityLevel.Valid() {
		cf.activitySelect.SetSelected(f.ActivityLevel.DisplayName())
	}
}

// LoadPreferences restores form values from persistent preferences.
func (cf *CalculatorForm) LoadPreferences(prefs fyne.Preferences) {
	f := cf.Fields()
	if v := prefs.String("form.weight"); v != "" {
		f.Weight = v
	}
	if v := prefs.String("form.height"); v != "" {
		f.Height = v
	}
	if v := prefs.String("form.age"); v != "" {
		f.Age = v
	}
	if v := prefs.String("form.sex"); v != "" {
		if sex, err := model.ParseSex(v); err == nil {
			f.Sex = sex
		}
	}
	if v := prefs.String("form.activity"); v != "" {
		if level, err := model.ParseActivityLevel(v); err == nil {
			f.ActivityLevel = level
		}
	}
	cf.SetFields(f)
}

// SavePreferences persists form values to preferences.
func (cf *CalculatorForm) SavePreferences(prefs fyne.Preferences) {
	f := cf.Fields()
	prefs.SetString("form.weight", f.Weight)
	prefs.SetString("form.height", f.Height)
	prefs.SetString("form.age", f.Age)
	prefs.SetString("form.sex", string(f.Sex))
	prefs.SetString("form.activity", string(f.ActivityLevel))
}
