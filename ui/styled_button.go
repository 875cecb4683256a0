package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// buttonPalette is the pair of fill/text colors for each button state.
type buttonPalette struct {
	fill, text                 color.Color
	disabledFill, disabledText color.Color
}

// calculatePalette is the green primary action used by the Calculate button.
var calculatePalette = buttonPalette{
	fill:         color.NRGBA{R: 22, G: 163, B: 74, A: 255},
	text:         color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	disabledFill: color.NRGBA{R: 187, G: 222, B: 200, A: 255},
	disabledText: color.NRGBA{R: 240, G: 246, B: 242, A: 255},
}

// StyledButton is a wide, bold action button painted from a buttonPalette.
type StyledButton struct {
	widget.Button
	palette buttonPalette
}

// NewStyledButton creates a button painted with p.
func NewStyledButton(label string, tapped func(), p buttonPalette) *StyledButton {
	b := &StyledButton{palette: p}
	b.Text = label
	b.OnTapped = tapped
	b.ExtendBaseWidget(b)
	return b
}

// colors returns the fill and text colors for the current state.
func (b *StyledButton) colors() (fill, text color.Color) {
	if b.Disabled() {
		return b.palette.disabledFill, b.palette.disabledText
	}
	return b.palette.fill, b.palette.text
}

// CreateRenderer returns a custom renderer.
func (b *StyledButton) CreateRenderer() fyne.WidgetRenderer {
	b.ExtendBaseWidget(b)

	r := &styledButtonRenderer{
		button: b,
		fill:   canvas.NewRectangle(color.Transparent),
		label:  canvas.NewText(b.Text, color.Transparent),
	}
	r.fill.CornerRadius = theme.InputRadiusSize()
	r.label.Alignment = fyne.TextAlignCenter
	r.label.TextStyle = fyne.TextStyle{Bold: true}
	r.label.TextSize = theme.TextSize() * 1.2
	r.Refresh()
	return r
}

type styledButtonRenderer struct {
	button *StyledButton
	fill   *canvas.Rectangle
	label  *canvas.Text
}

func (r *styledButtonRenderer) Layout(size fyne.Size) {
	r.fill.Resize(size)
	text := r.label.MinSize()
	r.label.Resize(text)
	r.label.Move(fyne.NewPos((size.Width-text.Width)/2, (size.Height-text.Height)/2))
}

func (r *styledButtonRenderer) MinSize() fyne.Size {
	pad := theme.InnerPadding()
	return r.label.MinSize().Add(fyne.NewSize(pad*4, pad*3))
}

func (r *styledButtonRenderer) Refresh() {
	fill, text := r.button.colors()
	r.fill.FillColor = fill
	r.label.Color = text
	r.label.Text = r.button.Text
	canvas.Refresh(r.fill)
	canvas.Refresh(r.label)
}

func (r *styledButtonRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.fill, r.label}
}

func (r *styledButtonRenderer) Destroy() {}
