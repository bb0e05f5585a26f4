package pipeline

// Result is a successful translation of both fields into one language
type Result struct {
	Language    string
	Title       string
	Description string
}

// Outcome is what happened for one target language
type Outcome struct {
	Language    string
	Title       string
	Description string
	Source      bool  // target is the input language, text copied verbatim
	Err         error // *TranslationError when the language failed
}

// OK reports whether the outcome holds text
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Run holds everything one invocation produced
type Run struct {
	ID                string
	InputLanguage     string
	DetectionFallback bool // detection failed, InputLanguage is the configured fallback
	Outcomes          []Outcome
}

// Results returns the successful translations in pipeline order. The
// source language and failed languages are left out.
func (r *Run) Results() []Result {
	results := make([]Result, 0, len(r.Outcomes))
	for _, o := range r.Outcomes {
		if o.Source || o.Err != nil {
			continue
		}
		results = append(results, Result{
			Language:    o.Language,
			Title:       o.Title,
			Description: o.Description,
		})
	}
	return results
}

// Outcome returns the outcome for language code
func (r *Run) Outcome(code string) (Outcome, bool) {
	for _, o := range r.Outcomes {
		if o.Language == code {
			return o, true
		}
	}
	return Outcome{}, false
}

// Failed returns the number of languages that failed
func (r *Run) Failed() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}
