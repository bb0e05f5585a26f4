package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"codeberg.org/snonux/bulktrans/internal/limiter"
)

// LimitedEntry is an entry that never holds more than its field's maximum
// number of characters and keeps a "n/max" counter label up to date
type LimitedEntry struct {
	widget.Entry
	field    *limiter.Field
	counter  *widget.Label
	onEscape func()
}

// NewLimitedEntry creates an entry limited by field
func NewLimitedEntry(field *limiter.Field, multiLine bool) *LimitedEntry {
	e := &LimitedEntry{
		field:   field,
		counter: widget.NewLabel(field.Counter()),
	}
	e.MultiLine = multiLine
	if multiLine {
		e.Wrapping = fyne.TextWrapWord
	}
	e.ExtendBaseWidget(e)
	e.OnChanged = e.onChanged
	return e
}

// Counter returns the counter label
func (e *LimitedEntry) Counter() *widget.Label {
	return e.counter
}

// Value returns the limited text
func (e *LimitedEntry) Value() string {
	return e.field.Value()
}

// Reset clears the entry and its counter
func (e *LimitedEntry) Reset() {
	e.field.Set("")
	e.SetText("")
	e.counter.SetText(e.field.Counter())
}

func (e *LimitedEntry) onChanged(text string) {
	value, truncated := e.field.Set(text)
	if truncated {
		e.SetText(value)
		e.CursorRow, e.CursorColumn = lastPosition(value)
		e.Refresh()
	}
	e.counter.SetText(e.field.Counter())
}

// TypedKey handles key events
func (e *LimitedEntry) TypedKey(key *fyne.KeyEvent) {
	if key.Name == fyne.KeyEscape && e.onEscape != nil {
		e.onEscape()
		return
	}
	e.Entry.TypedKey(key)
}

// SetOnEscape sets the callback for when Escape is pressed
func (e *LimitedEntry) SetOnEscape(f func()) {
	e.onEscape = f
}

// lastPosition returns the row and column after the last character
func lastPosition(text string) (row, col int) {
	for _, r := range text {
		if r == '\n' {
			row++
			col = 0
			continue
		}
		col++
	}
	return row, col
}
