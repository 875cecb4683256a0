package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// summaryNavKeys are the only keys the summary reacts to.
var summaryNavKeys = map[fyne.KeyName]bool{
	fyne.KeyUp:       true,
	fyne.KeyDown:     true,
	fyne.KeyLeft:     true,
	fyne.KeyRight:    true,
	fyne.KeyHome:     true,
	fyne.KeyEnd:      true,
	fyne.KeyPageUp:   true,
	fyne.KeyPageDown: true,
}

// summaryEntry holds the plain-text calculation summary. Users can select
// and copy it; the text only changes through SetSummary.
type summaryEntry struct {
	widget.Entry
}

func newSummaryEntry(rows int) *summaryEntry {
	e := &summaryEntry{}
	e.MultiLine = true
	e.Wrapping = fyne.TextWrapOff
	e.TextStyle = fyne.TextStyle{Monospace: true}
	e.ExtendBaseWidget(e)
	e.SetMinRowsVisible(rows)
	return e
}

// SetSummary replaces the shown text.
func (e *summaryEntry) SetSummary(text string) {
	e.Entry.SetText(text)
}

// TypedRune drops typed characters.
func (e *summaryEntry) TypedRune(rune) {}

// TypedKey forwards cursor movement only.
func (e *summaryEntry) TypedKey(ev *fyne.KeyEvent) {
	if summaryNavKeys[ev.Name] {
		e.Entry.TypedKey(ev)
	}
}

// TypedShortcut forwards copy and select-all only.
func (e *summaryEntry) TypedShortcut(s fyne.Shortcut) {
	switch s.(type) {
	case *fyne.ShortcutCopy, *fyne.ShortcutSelectAll:
		e.Entry.TypedShortcut(s)
	}
}
