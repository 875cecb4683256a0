package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

var infoCards = []struct {
	title string
	body  string
}{
	{
		"What is BMR?",
		"Basal Metabolic Rate is the number of calories your body needs to keep vital functions such as breathing, circulation and body temperature running at complete rest.",
	},
	{
		"Formula Used",
		"The Mifflin-St Jeor equation, considered one of the most accurate today, estimates basal metabolism from weight, height, age and sex.",
	},
	{
		"Total Daily Expenditure",
		"TDEE (Total Daily Energy Expenditure) multiplies your BMR by your physical activity level, showing how many calories you actually burn per day including exercise.",
	},
}

// BuildMainWindow creates and configures the main application window.
func BuildMainWindow(app fyne.App, logger *slog.Logger) fyne.Window {
	win := app.NewWindow("BMR Calculator")
	win.Resize(NewWindowSize())

	calculatorForm := NewCalculatorForm()
	resultView := NewResultView()
	statusView := NewStatusView()
	controls := NewControls(win, calculatorForm, resultView, statusView, logger)

	prefs := app.Preferences()
	calculatorForm.LoadPreferences(prefs)

	leftPanel := container.NewVBox(
		calculatorForm.Container(),
		controls.Container(),
		statusView.Container(),
	)

	rightPanel := container.NewVScroll(resultView.Container())

	topRow := container.NewHSplit(leftPanel, rightPanel)
	topRow.SetOffset(MainSplitRatio)

	content := container.NewBorder(
		widget.NewLabelWithStyle("Basal Metabolic Rate Calculator", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		newInfoRow(),
		nil, nil,
		topRow,
	)

	win.SetContent(content)

	win.SetCloseIntercept(func() {
		calculatorForm.SavePreferences(prefs)
		win.Close()
	})

	return win
}

func newInfoRow() *fyne.Container {
	row := container.NewGridWithColumns(len(infoCards))
	for _, info := range infoCards {
		body := widget.NewLabel(info.body)
		body.Wrapping = fyne.TextWrapWord
		row.Add(widget.NewCard(info.title, "", body))
	}
	return row
}
