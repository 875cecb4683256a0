package ui

import "fyne.io/fyne/v2"

// Window dimensions
const (
	WindowWidth  = 980
	WindowHeight = 720
)

// Split ratios
const (
	MainSplitRatio = 0.5 // form | results
)

// Result figure size in points.
const ResultTextSize = 36

// Messages shown on the status line.
const (
	msgSuccess  = "Calculation completed successfully!"
	msgNoResult = "No result to export."
	msgPrompt   = "Complete your data to calculate your basal metabolic rate and daily energy expenditure."
)

// NewWindowSize returns the default window size
func NewWindowSize() fyne.Size {
	return fyne.NewSize(WindowWidth, WindowHeight)
}
