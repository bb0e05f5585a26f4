package present

import (
	"unicode/utf8"

	"codeberg.org/snonux/bulktrans/internal/pipeline"
)

// Panel is the display state of one language slot
type Panel struct {
	Language    string
	Label       string
	Text        string // title text, or error text for failed languages
	Chars       int    // length of Text without display padding
	Description string
	OverLimit   bool
	Source      bool
	Failed      bool
}

// Sink receives the output of a run. The GUI and the terminal each
// implement one.
type Sink interface {
	Progress(fraction float64)
	Panel(panel Panel)
}

// Stepper is implemented by sinks that want interpolated progress. Yield
// is called between sub-steps.
type Stepper interface {
	Steps() int
	Yield()
}

// Panel builds the panel for an outcome
func (p *Presenter) Panel(o pipeline.Outcome, label string) Panel {
	text, over := p.PanelText(o)
	chars := utf8.RuneCountInString(o.Title)
	if o.Err != nil {
		chars = utf8.RuneCountInString(text)
	}
	panel := Panel{
		Language:  o.Language,
		Label:     label,
		Text:      text,
		Chars:     chars,
		OverLimit: over,
		Source:    o.Source,
		Failed:    o.Err != nil,
	}
	if o.Err == nil {
		panel.Description, _ = p.Present(o.Description, o.Language)
	}
	return panel
}
