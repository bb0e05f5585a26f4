// Package limiter enforces the maximum character counts of the title and
// description fields. Lengths are counted in Unicode code points.
package limiter

import (
	"fmt"
	"unicode/utf8"
)

const (
	// MaxTitleChars is the longest title accepted.
	MaxTitleChars = 100
	// MaxDescriptionChars is the longest description accepted.
	MaxDescriptionChars = 5000
	// MaxPanelChars is the length above which a translated title is highlighted.
	MaxPanelChars = 100
)

// Limit returns the first max code points of text.
func Limit(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(text) <= max {
		return text
	}
	n := 0
	for i := range text {
		if n == max {
			return text[:i]
		}
		n++
	}
	return text
}

// Counter renders the "<len>/<max>" label shown next to a field.
func Counter(text string, max int) string {
	return fmt.Sprintf("%d/%d", utf8.RuneCountInString(text), max)
}

// Field is a text value that never exceeds its maximum length.
type Field struct {
	max   int
	value string
}

// NewField creates an empty field with the given maximum.
func NewField(max int) *Field {
	return &Field{max: max}
}

// NewTitleField creates a field limited to MaxTitleChars.
func NewTitleField() *Field {
	return NewField(MaxTitleChars)
}

// NewDescriptionField creates a field limited to MaxDescriptionChars.
func NewDescriptionField() *Field {
	return NewField(MaxDescriptionChars)
}

// Set stores text, truncating it to the maximum. It returns the stored value
// and whether truncation happened, so callers can rewrite their widget.
func (f *Field) Set(text string) (string, bool) {
	f.value = Limit(text, f.max)
	return f.value, f.value != text
}

// Value returns the stored text.
func (f *Field) Value() string {
	return f.value
}

// Len returns the stored length in code points.
func (f *Field) Len() int {
	return utf8.RuneCountInString(f.value)
}

// Max returns the field's maximum length.
func (f *Field) Max() int {
	return f.max
}

// Counter renders the field's counter label.
func (f *Field) Counter() string {
	return Counter(f.value, f.max)
}
