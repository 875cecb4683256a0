package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// StatusView is a one-line notice below the controls.
type StatusView struct {
	label *widget.Label
}

// NewStatusView creates an empty status line.
func NewStatusView() *StatusView {
	sv := &StatusView{}
	sv.label = widget.NewLabel("")
	sv.label.Wrapping = fyne.TextWrapWord
	return sv
}

// Container returns the status label.
func (sv *StatusView) Container() *widget.Label {
	return sv.label
}

// ShowSuccess displays a confirmation message.
func (sv *StatusView) ShowSuccess(msg string) {
	sv.label.Importance = widget.SuccessImportance
	sv.label.SetText(msg)
}

// ShowError displays a failure message.
func (sv *StatusView) ShowError(msg string) {
	sv.label.Importance = widget.DangerImportance
	sv.label.SetText(msg)
}

// Text returns the message currently shown.
func (sv *StatusView) Text() string {
	return sv.label.Text
}
