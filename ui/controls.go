package ui

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"bmr-calculator/internal/export"
	"bmr-calculator/internal/metabolic"
	"bmr-calculator/internal/model"
)

// Controls owns the calculator session and the Calculate/Export buttons.
// All callbacks run on the Fyne event thread, so the session is never used
// concurrently.
type Controls struct {
	session *metabolic.Session
	logger  *slog.Logger
	window  fyne.Window

	calculateBtn *StyledButton
	exportBtn    *widget.Button

	form       *CalculatorForm
	resultView *ResultView
	status     *StatusView

	container *fyne.Container
}

// NewControls creates the control buttons wired to the given views.
func NewControls(win fyne.Window, cf *CalculatorForm, rv *ResultView, sv *StatusView, logger *slog.Logger) *Controls {
	c := &Controls{
		logger:     logger,
		window:     win,
		form:       cf,
		resultView: rv,
		status:     sv,
	}
	c.session = metabolic.NewSession(c, metabolic.WithLogger(logger))

	c.calculateBtn = NewStyledButton("Calculate", c.onCalculate, calculatePalette)
	c.exportBtn = widget.NewButton("Export Report", c.onExport)
	c.exportBtn.Disable()

	c.container = container.NewVBox(
		c.calculateBtn,
		container.NewHBox(c.exportBtn),
	)
	return c
}

// Container returns the controls container.
func (c *Controls) Container() *fyne.Container {
	return c.container
}

// Session exposes the calculator session backing the window.
func (c *Controls) Session() *metabolic.Session {
	return c.session
}

func (c *Controls) onCalculate() {
	c.session.Fields = c.form.Fields()
	// Outcome is delivered through ReportFailure/ReportResult.
	_, _ = c.session.Calculate()
}

// ReportFailure shows the validation message. The previous result stays on
// screen.
func (c *Controls) ReportFailure(err error) {
	c.status.ShowError(metabolic.UserMessage(err))
}

// ReportResult displays a new calculation.
func (c *Controls) ReportResult(calc *model.Calculation) {
	c.resultView.Show(calc)
	c.status.ShowSuccess(msgSuccess)
	c.exportBtn.Enable()
}

func (c *Controls) onExport() {
	latest := c.session.Latest()
	if latest == nil {
		c.status.ShowError(msgNoResult)
		return
	}

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, c.window)
			return
		}
		if writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		c.exportTo(export.TrimReportExt(path), latest)
	}, c.window)
	d.SetFileName(filepath.Base(export.BuildBase("bmr", latest.Timestamp)) + ".csv")
	d.Show()
}

func (c *Controls) exportTo(base string, calc *model.Calculation) {
	csvPath, txtPath, err := export.WriteReport(base, calc)
	if err != nil {
		c.logger.Error("export failed", "base", base, "error", err)
		c.status.ShowError(fmt.Sprintf("Export error: %v", err))
		return
	}
	c.logger.Info("report exported", "csv", csvPath, "txt", txtPath)
	c.status.ShowSuccess(fmt.Sprintf("Exported to %s and %s", csvPath, txtPath))
}
