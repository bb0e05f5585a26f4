package pipeline

import (
	"context"
	"strings"

	"codeberg.org/snonux/bulktrans/internal"
	"codeberg.org/snonux/bulktrans/internal/lang"
	"codeberg.org/snonux/bulktrans/internal/logger"
	"codeberg.org/snonux/bulktrans/internal/translation"
)

// ProgressFunc receives the completed fraction of a run in [0, 1]
type ProgressFunc func(fraction float64)

// Options configures a pipeline
type Options struct {
	// Targets defaults to lang.Targets
	Targets []lang.Target

	// Steps is the number of progress reports per language, interpolated
	// between the language's start and end fraction. Defaults to 1.
	Steps int

	// Yield is called between progress sub-steps, e.g. to let a UI repaint
	Yield func()

	// FallbackLanguage is used as input language when detection fails.
	// Empty means a failed detection aborts the run.
	FallbackLanguage string
}

// Pipeline translates a title and description into all target languages
type Pipeline struct {
	svc  translation.Service
	opts Options
}

// New creates a pipeline using svc
func New(svc translation.Service, opts Options) *Pipeline {
	if len(opts.Targets) == 0 {
		opts.Targets = lang.Targets
	}
	if opts.Steps < 1 {
		opts.Steps = 1
	}
	return &Pipeline{svc: svc, opts: opts}
}

// Run detects the language of title and translates title and description
// into every target. Per-language failures end up in the outcomes; only an
// empty title, a failed detection or a cancelled context return an error.
// On cancellation the partial run is returned with the context error.
func (p *Pipeline) Run(ctx context.Context, title, description string, progress ProgressFunc) (*Run, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyInput
	}

	run := &Run{ID: internal.GenerateRunID(title)}

	inputLang, err := p.detect(ctx, title)
	if err != nil {
		if p.opts.FallbackLanguage == "" || ctx.Err() != nil {
			return nil, &DetectionError{Err: err}
		}
		inputLang = lang.Normalize(p.opts.FallbackLanguage)
		run.DetectionFallback = true
		logger.Warn("language detection failed, using fallback language",
			"module", "pipeline", "run", run.ID, "lang", inputLang, "error", err)
	}
	run.InputLanguage = inputLang

	logger.Info("translation run started",
		"module", "pipeline", "run", run.ID, "service", p.svc.Name(),
		"input", inputLang, "title", internal.Snippet(title, 40))

	total := len(p.opts.Targets)
	for i, target := range p.opts.Targets {
		if err := ctx.Err(); err != nil {
			logger.Warn("translation run cancelled",
				"module", "pipeline", "run", run.ID, "done", i, "total", total)
			return run, err
		}

		outcome := p.translate(ctx, target.Code, inputLang, title, description)
		run.Outcomes = append(run.Outcomes, outcome)

		if outcome.Err != nil {
			logger.Warn("translation failed, continuing with next language",
				"module", "pipeline", "run", run.ID, "lang", target.Code, "error", outcome.Err)
		} else {
			logger.Debug("translated",
				"module", "pipeline", "run", run.ID, "lang", target.Code,
				"source", outcome.Source, "title", internal.Snippet(outcome.Title, 40))
		}

		p.report(progress, i, total)
	}

	logger.Info("translation run finished",
		"module", "pipeline", "run", run.ID, "failed", run.Failed(), "total", total)

	return run, nil
}

func (p *Pipeline) detect(ctx context.Context, title string) (string, error) {
	code, err := p.svc.Detect(ctx, title)
	if err != nil {
		return "", err
	}
	code = lang.Normalize(code)
	if code == "" {
		return "", translation.ErrUndetected
	}
	return code, nil
}

func (p *Pipeline) translate(ctx context.Context, target, inputLang, title, description string) Outcome {
	if target == inputLang {
		return Outcome{
			Language:    target,
			Title:       title,
			Description: description,
			Source:      true,
		}
	}

	translatedTitle, err := p.svc.Translate(ctx, title, target)
	if err != nil {
		return Outcome{Language: target, Err: &TranslationError{Language: target, Err: err}}
	}

	var translatedDescription string
	if strings.TrimSpace(description) != "" {
		translatedDescription, err = p.svc.Translate(ctx, description, target)
		if err != nil {
			return Outcome{Language: target, Err: &TranslationError{Language: target, Err: err}}
		}
	}

	return Outcome{
		Language:    target,
		Title:       translatedTitle,
		Description: translatedDescription,
	}
}

// report emits the sub-steps between language i's start and end fraction.
// The last report of a run is exactly 1.
func (p *Pipeline) report(progress ProgressFunc, i, total int) {
	if progress == nil {
		return
	}

	steps := p.opts.Steps
	for j := 1; j <= steps; j++ {
		fraction := (float64(i) + float64(j)/float64(steps)) / float64(total)
		if i == total-1 && j == steps {
			fraction = 1
		}
		progress(fraction)
		if p.opts.Yield != nil && j < steps {
			p.opts.Yield()
		}
	}
}
