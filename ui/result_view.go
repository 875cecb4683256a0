package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"bmr-calculator/internal/format"
	"bmr-calculator/internal/model"
)

// ResultView shows the latest calculation, or a prompt before the first one.
type ResultView struct {
	bmrText       *canvas.Text
	tdeeText      *canvas.Text
	bmrCard       *widget.Card
	tdeeCard      *widget.Card
	lossLabel     *widget.Label
	maintainLabel *widget.Label
	gainLabel     *widget.Label
	summary       *summaryEntry

	placeholder *widget.Card
	results     *fyne.Container
	container   *fyne.Container
}

// NewResultView creates the result cards in their empty state.
func NewResultView() *ResultView {
	rv := &ResultView{}

	rv.bmrText = newFigureText()
	rv.tdeeText = newFigureText()

	rv.bmrCard = widget.NewCard("Basal Metabolic Rate", "Calories at complete rest", rv.bmrText)
	rv.tdeeCard = widget.NewCard("Total Daily Energy Expenditure", "", rv.tdeeText)

	rv.lossLabel = widget.NewLabel("")
	rv.maintainLabel = widget.NewLabel("")
	rv.gainLabel = widget.NewLabel("")
	recommendations := widget.NewCard("Recommendations", "", container.NewVBox(
		rv.lossLabel,
		rv.maintainLabel,
		rv.gainLabel,
	))

	rv.summary = newSummaryEntry(6)
	details := widget.NewAccordion(widget.NewAccordionItem("Summary", rv.summary))

	rv.results = container.NewVBox(rv.bmrCard, rv.tdeeCard, recommendations, details)
	rv.results.Hide()

	prompt := widget.NewLabelWithStyle(msgPrompt, fyne.TextAlignCenter, fyne.TextStyle{})
	prompt.Wrapping = fyne.TextWrapWord
	rv.placeholder = widget.NewCard("Fill in the form", "", prompt)

	rv.container = container.NewStack(rv.placeholder, rv.results)
	return rv
}

func newFigureText() *canvas.Text {
	t := canvas.NewText("", theme.Color(theme.ColorNamePrimary))
	t.TextSize = ResultTextSize
	t.TextStyle = fyne.TextStyle{Bold: true}
	return t
}

// Container returns the result view's container.
func (rv *ResultView) Container() *fyne.Container {
	return rv.container
}

// Show replaces whatever is displayed with c. Must run on the UI thread.
func (rv *ResultView) Show(c *model.Calculation) {
	r := c.Result

	rv.bmrText.Text = fmt.Sprintf("%d kcal", r.BMR)
	rv.bmrText.Refresh()
	rv.tdeeText.Text = fmt.Sprintf("%d kcal", r.TDEE)
	rv.tdeeText.Refresh()
	rv.tdeeCard.SetSubTitle(r.ActivityLabel)

	lines := format.FormatRecommendations(r)
	rv.lossLabel.SetText(lines[0])
	rv.maintainLabel.SetText(lines[1])
	rv.gainLabel.SetText(lines[2])

	rv.summary.SetSummary(format.FormatResult(c))

	rv.placeholder.Hide()
	rv.results.Show()
}

// BMRText returns the displayed BMR figure ("" before the first result).
func (rv *ResultView) BMRText() string {
	return rv.bmrText.Text
}

// TDEEText returns the displayed TDEE figure ("" before the first result).
func (rv *ResultView) TDEEText() string {
	return rv.tdeeText.Text
}
