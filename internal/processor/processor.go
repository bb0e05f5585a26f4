package processor

import (
	"context"
	"fmt"
	"io"
	"os"

	"codeberg.org/snonux/bulktrans/internal/cli"
	"codeberg.org/snonux/bulktrans/internal/export"
	"codeberg.org/snonux/bulktrans/internal/gui"
	"codeberg.org/snonux/bulktrans/internal/i18n"
	"codeberg.org/snonux/bulktrans/internal/input"
	"codeberg.org/snonux/bulktrans/internal/lang"
	"codeberg.org/snonux/bulktrans/internal/limiter"
	"codeberg.org/snonux/bulktrans/internal/logger"
	"codeberg.org/snonux/bulktrans/internal/pipeline"
	"codeberg.org/snonux/bulktrans/internal/present"
	"codeberg.org/snonux/bulktrans/internal/translation"
)

// Processor handles the main translation logic
type Processor struct {
	settings  *cli.Settings
	svc       translation.Service
	catalog   *i18n.Catalog
	presenter *present.Presenter
	exporter  *export.Exporter

	stdout io.Writer
	stderr io.Writer
}

// NewProcessor creates a processor with the configured translation service
func NewProcessor(settings *cli.Settings) (*Processor, error) {
	svc, err := translation.NewService(settings.Translation)
	if err != nil {
		return nil, fmt.Errorf("failed to create translation service: %w", err)
	}
	return NewProcessorWithService(settings, svc), nil
}

// NewProcessorWithService creates a processor using svc
func NewProcessorWithService(settings *cli.Settings, svc translation.Service) *Processor {
	presenter := present.NewPresenter()
	presenter.PadRTL = settings.RTLPadding

	return &Processor{
		settings:  settings,
		svc:       svc,
		catalog:   i18n.New(settings.UILanguage),
		presenter: presenter,
		exporter:  export.NewExporter(),
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	}
}

// Translate limits the input, runs the pipeline, sends every panel to sink
// and exports the results to dir. It returns the run and the export path,
// which is empty when dir is blank. Failed languages do not make it fail;
// the run is returned together with an *export.ExportError when only the
// export failed.
func (p *Processor) Translate(ctx context.Context, title, description, dir string, sink present.Sink) (*pipeline.Run, string, error) {
	title, description = p.limit(title, description)

	opts := pipeline.Options{FallbackLanguage: p.settings.FallbackLanguage}
	if stepper, ok := sink.(present.Stepper); ok {
		opts.Steps = stepper.Steps()
		opts.Yield = stepper.Yield
	}

	run, err := pipeline.New(p.svc, opts).Run(ctx, title, description, sink.Progress)
	if err != nil {
		return run, "", err
	}

	for _, outcome := range run.Outcomes {
		sink.Panel(p.presenter.Panel(outcome, p.catalog.LanguageLabel(outcome.Language)))
	}

	path, err := p.exporter.Export(run.Results(), dir, run.InputLanguage)
	if err != nil {
		return run, "", err
	}
	if path != "" {
		logger.Info("results exported", "module", "processor", "run", run.ID, "path", path)
	}

	return run, path, nil
}

// limit truncates title and description to their maximum length
func (p *Processor) limit(title, description string) (string, string) {
	titleField := limiter.NewTitleField()
	if _, truncated := titleField.Set(title); truncated {
		logger.Warn("title truncated", "module", "processor", "max", titleField.Max())
	}

	descriptionField := limiter.NewDescriptionField()
	if _, truncated := descriptionField.Set(description); truncated {
		logger.Warn("description truncated", "module", "processor", "max", descriptionField.Max())
	}

	return titleField.Value(), descriptionField.Value()
}

// ProcessFile translates the title and description read from filename
func (p *Processor) ProcessFile(ctx context.Context, filename string) error {
	entry, err := input.ReadFile(filename)
	if err != nil {
		return err
	}
	return p.ProcessText(ctx, entry.Title, entry.Description)
}

// ProcessText translates title and description in headless mode, printing
// the panels to stdout and the progress bar to stderr
func (p *Processor) ProcessText(ctx context.Context, title, description string) error {
	if n := len([]rune(title)); n > limiter.MaxTitleChars {
		fmt.Fprintf(p.stderr, "Warning: title has %d characters, only the first %d are translated\n", n, limiter.MaxTitleChars)
	}
	if n := len([]rune(description)); n > limiter.MaxDescriptionChars {
		fmt.Fprintf(p.stderr, "Warning: description has %d characters, only the first %d are translated\n", n, limiter.MaxDescriptionChars)
	}

	fmt.Fprintf(p.stdout, "Translating with %s\n", p.svc.Name())

	sink := newTerminalSink(p.stdout, p.stderr)
	run, path, err := p.Translate(ctx, title, description, p.settings.OutputDir, sink)
	sink.finish()
	if run == nil {
		return err
	}

	p.printSummary(run)

	if err != nil {
		return err
	}
	if path != "" {
		fmt.Fprintf(p.stdout, "\n%s\n", p.catalog.Tf("StatusExported", map[string]any{"Path": path}))
	}
	return nil
}

func (p *Processor) printSummary(run *pipeline.Run) {
	language := fmt.Sprintf("%s (%s)", lang.DisplayName(run.InputLanguage), run.InputLanguage)
	if run.DetectionFallback {
		fmt.Fprintf(p.stdout, "\n%s\n", p.catalog.Tf("StatusDetectionFallback", map[string]any{"Language": language}))
	} else {
		fmt.Fprintf(p.stdout, "\n%s\n", p.catalog.Tf("StatusDetected", map[string]any{"Language": language}))
	}

	if failed := run.Failed(); failed > 0 {
		fmt.Fprintf(p.stdout, "%s\n", p.catalog.Tf("StatusFailed", map[string]any{"Count": failed}))
	}
}

// RunGUIMode launches the GUI application
func (p *Processor) RunGUIMode() error {
	guiConfig := &gui.Config{
		OutputDir: p.settings.OutputDir,
		Catalog:   p.catalog,
		Service:   p.svc.Name(),
		LogLevel:  logger.ParseLevel(p.settings.LogLevel),
		Translate: p.Translate,
	}

	app := gui.New(guiConfig)
	app.Run()

	return nil
}
