// Package present formats translated text for the language panels.
package present

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"codeberg.org/snonux/bulktrans/internal/lang"
	"codeberg.org/snonux/bulktrans/internal/limiter"
	"codeberg.org/snonux/bulktrans/internal/pipeline"
)

// rtlPadding is prepended to right-to-left text. fyne renders text left to
// right only, so the padding nudges Arabic away from the left edge.
const rtlPadding = "  "

// Presenter turns panel text into display text.
type Presenter struct {
	PadRTL bool
	Limit  int
}

// NewPresenter returns a presenter with RTL padding enabled and the panel limit.
func NewPresenter() *Presenter {
	return &Presenter{PadRTL: true, Limit: limiter.MaxPanelChars}
}

// Present returns the text to show for language code and whether the text
// exceeds the panel limit. The limit check uses the unpadded text.
func (p *Presenter) Present(text, code string) (string, bool) {
	display := text
	if p.PadRTL && lang.IsRTL(code) {
		display = rtlPadding + text
	}
	return display, utf8.RuneCountInString(text) > p.Limit
}

// ErrorText renders a per-language failure for a panel.
func ErrorText(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %s", strings.TrimSpace(err.Error()))
}

// PanelText returns the display text of an outcome's title panel. Failed
// languages show the service error, never flagged as over the limit.
func (p *Presenter) PanelText(o pipeline.Outcome) (string, bool) {
	if o.Err != nil {
		var te *pipeline.TranslationError
		if errors.As(o.Err, &te) {
			return ErrorText(te.Err), false
		}
		return ErrorText(o.Err), false
	}
	return p.Present(o.Title, o.Language)
}
