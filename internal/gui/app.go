package gui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"codeberg.org/snonux/bulktrans/internal"
	"codeberg.org/snonux/bulktrans/internal/export"
	"codeberg.org/snonux/bulktrans/internal/i18n"
	"codeberg.org/snonux/bulktrans/internal/lang"
	"codeberg.org/snonux/bulktrans/internal/limiter"
	"codeberg.org/snonux/bulktrans/internal/logger"
	"codeberg.org/snonux/bulktrans/internal/pipeline"
	"codeberg.org/snonux/bulktrans/internal/present"
)

const (
	// progressSteps animates the bar within each language
	progressSteps     = 10
	progressStepDelay = 10 * time.Millisecond

	// progressResetDelay is how long the full bar stays after a run
	progressResetDelay = time.Second
)

// TranslateFunc runs one translation, reporting progress and panels into
// sink, and exports to dir. It returns the run and the export path.
type TranslateFunc func(ctx context.Context, title, description, dir string, sink present.Sink) (*pipeline.Run, string, error)

// Config holds GUI application configuration
type Config struct {
	OutputDir string
	Catalog   *i18n.Catalog
	Service   string // shown in the status line
	LogLevel  slog.Level
	Translate TranslateFunc
}

// Application represents the main GUI application
type Application struct {
	// Fyne components
	app    fyne.App
	window fyne.Window
	tabs   *container.AppTabs

	// Input tab
	titleEntry       *LimitedEntry
	descriptionEntry *LimitedEntry
	translateButton  *ttwidget.Button
	resetButton      *ttwidget.Button
	progressBar      *widget.ProgressBar
	statusLabel      *widget.Label

	// Checker tab
	panels map[string]*LanguagePanel

	// Footer
	dirEntry     *widget.Entry
	browseButton *ttwidget.Button

	logViewer *LogViewer

	config  *Config
	catalog *i18n.Catalog

	// Background processing
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	mu      sync.Mutex
	running bool
}

// New creates a new GUI application
func New(config *Config) *Application {
	if config.Catalog == nil {
		config.Catalog = i18n.New(i18n.DefaultLocale)
	}

	ctx, cancel := context.WithCancel(context.Background())

	a := &Application{
		app:       app.NewWithID("org.codeberg.snonux.bulktrans"),
		config:    config,
		catalog:   config.Catalog,
		panels:    make(map[string]*LanguagePanel),
		logViewer: NewLogViewer(config.Catalog.T("LabelLogMessages")),
		ctx:       ctx,
		cancel:    cancel,
	}

	// Tee log output into the Log tab
	logger.Init(config.LogLevel, io.MultiWriter(os.Stderr, a.logViewer))

	a.setupUI()
	return a
}

// setupUI creates the main user interface
func (a *Application) setupUI() {
	t := a.catalog.T

	a.window = a.app.NewWindow(fmt.Sprintf("%s v%s", t("AppTitle"), internal.Version))
	a.window.Resize(fyne.NewSize(900, 700))

	a.tabs = container.NewAppTabs(
		container.NewTabItemWithIcon(t("TabInput"), theme.DocumentCreateIcon(), a.createInputTab()),
		container.NewTabItemWithIcon(t("TabChecker"), theme.ConfirmIcon(), a.createCheckerTab()),
		container.NewTabItemWithIcon(t("TabLog"), theme.ListIcon(), a.logViewer),
	)

	content := container.NewBorder(nil, a.createFooter(), nil, nil, a.tabs)

	// Add the tooltip layer to enable tooltips
	a.window.SetContent(fynetooltip.AddWindowToolTipLayer(content, a.window.Canvas()))

	// Now that tooltip layer is created, set all tooltips
	a.setupTooltips()

	a.window.SetOnClosed(func() {
		a.cancel()
		a.wg.Wait()
	})

	a.setupKeyboardShortcuts()
}

func (a *Application) createInputTab() fyne.CanvasObject {
	t := a.catalog.T
	unfocus := func() { a.window.Canvas().Unfocus() }

	a.titleEntry = NewLimitedEntry(limiter.NewTitleField(), false)
	a.titleEntry.SetPlaceHolder(t("PlaceholderTitle"))
	a.titleEntry.OnSubmitted = func(string) { a.onTranslate() }
	a.titleEntry.SetOnEscape(unfocus)

	a.descriptionEntry = NewLimitedEntry(limiter.NewDescriptionField(), true)
	a.descriptionEntry.SetPlaceHolder(t("PlaceholderDescription"))
	a.descriptionEntry.SetOnEscape(unfocus)

	a.translateButton = ttwidget.NewButtonWithIcon(t("ButtonTranslate"), theme.MediaPlayIcon(), a.onTranslate)
	a.translateButton.Importance = widget.HighImportance
	a.resetButton = ttwidget.NewButtonWithIcon(t("ButtonReset"), theme.ContentClearIcon(), a.onReset)

	a.progressBar = widget.NewProgressBar()
	a.statusLabel = widget.NewLabel(a.config.Service)
	a.statusLabel.Truncation = fyne.TextTruncateEllipsis

	top := container.NewVBox(
		widget.NewLabel(t("LabelTitle")),
		container.NewBorder(nil, nil, nil, a.titleEntry.Counter(), a.titleEntry),
		widget.NewLabel(t("LabelDescription")),
	)

	bottom := container.NewVBox(
		container.NewHBox(layout.NewSpacer(), a.descriptionEntry.Counter()),
		container.NewBorder(nil, nil, container.NewHBox(a.translateButton, a.resetButton), nil, a.statusLabel),
		a.progressBar,
	)

	return container.NewBorder(top, bottom, nil, nil, a.descriptionEntry)
}

func (a *Application) createCheckerTab() fyne.CanvasObject {
	t := a.catalog.T
	rows := container.NewVBox()

	for _, target := range lang.Targets {
		panel := NewLanguagePanel(target.Code, t(target.MessageID), t("ButtonCopy"), t("ButtonCopied"), a.copyToClipboard)
		a.panels[target.Code] = panel
		rows.Add(panel)
	}

	return container.NewVScroll(rows)
}

func (a *Application) createFooter() fyne.CanvasObject {
	t := a.catalog.T

	a.dirEntry = widget.NewEntry()
	a.dirEntry.SetText(a.config.OutputDir)
	a.browseButton = ttwidget.NewButtonWithIcon(t("ButtonBrowse"), theme.FolderOpenIcon(), a.onBrowse)

	return container.NewBorder(nil, nil,
		widget.NewLabel(t("LabelCSVDirectory")),
		a.browseButton,
		a.dirEntry,
	)
}

func (a *Application) setupTooltips() {
	t := a.catalog.T
	a.translateButton.SetToolTip(t("TooltipTranslate") + " (Ctrl+Enter)")
	a.resetButton.SetToolTip(t("TooltipReset"))
	a.browseButton.SetToolTip(t("TooltipBrowse"))
	for _, panel := range a.panels {
		panel.SetToolTip(t("TooltipCopy"))
	}
}

func (a *Application) setupKeyboardShortcuts() {
	a.window.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyReturn,
		Modifier: fyne.KeyModifierControl,
	}, func(fyne.Shortcut) {
		a.onTranslate()
	})
}

// Run starts the GUI application
func (a *Application) Run() {
	a.window.ShowAndRun()
}

// onTranslate starts a run in the background. Clicks with an empty title
// or while a run is active are ignored.
func (a *Application) onTranslate() {
	title := a.titleEntry.Value()
	if strings.TrimSpace(title) == "" {
		return
	}

	a.mu.Lock()
	if a.running {
		a.mu.Unlock()
		return
	}
	a.running = true
	a.mu.Unlock()

	a.translateButton.Disable()
	a.progressBar.SetValue(0)
	a.statusLabel.SetText(a.config.Service)

	description := a.descriptionEntry.Value()
	dir := strings.TrimSpace(a.dirEntry.Text)

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.runTranslation(title, description, dir)
	}()
}

func (a *Application) runTranslation(title, description, dir string) {
	run, path, err := a.config.Translate(a.ctx, title, description, dir, &panelSink{a: a})
	if a.ctx.Err() != nil {
		return
	}
	if err != nil {
		logger.Error("translation run failed", "module", "gui", "error", err)
	}

	fyne.Do(func() {
		a.mu.Lock()
		a.running = false
		a.mu.Unlock()
		a.translateButton.Enable()

		var exportErr *export.ExportError
		switch {
		case errors.As(err, &exportErr):
			dialog.ShowError(fmt.Errorf("%s: %w", a.catalog.T("DialogExportFailed"), err), a.window)
		case err != nil:
			dialog.ShowError(fmt.Errorf("%s: %w", a.catalog.T("DialogTranslationFailed"), err), a.window)
		}

		if run != nil {
			a.statusLabel.SetText(a.runStatus(run, path))
			a.tabs.SelectIndex(1)
		}
	})

	time.AfterFunc(progressResetDelay, func() {
		fyne.Do(func() {
			a.progressBar.SetValue(0)
		})
	})
}

// runStatus summarises a run for the status line
func (a *Application) runStatus(run *pipeline.Run, path string) string {
	language := a.catalog.LanguageLabel(run.InputLanguage)
	id := "StatusDetected"
	if run.DetectionFallback {
		id = "StatusDetectionFallback"
	}
	parts := []string{a.catalog.Tf(id, map[string]any{"Language": language})}

	if failed := run.Failed(); failed > 0 {
		parts = append(parts, a.catalog.Tf("StatusFailed", map[string]any{"Count": failed}))
	}
	if path != "" {
		parts = append(parts, a.catalog.Tf("StatusExported", map[string]any{"Path": path}))
	}
	return strings.Join(parts, " | ")
}

func (a *Application) onReset() {
	a.titleEntry.Reset()
	a.descriptionEntry.Reset()
}

func (a *Application) onBrowse() {
	folderDialog := dialog.NewFolderOpen(func(dir fyne.ListableURI, err error) {
		if err != nil || dir == nil {
			return
		}
		a.dirEntry.SetText(dir.Path())
	}, a.window)

	// Try to set initial directory
	if current := strings.TrimSpace(a.dirEntry.Text); current != "" {
		if uri, err := storage.ParseURI("file://" + current); err == nil {
			if listableURI, err := storage.ListerForURI(uri); err == nil {
				folderDialog.SetLocation(listableURI)
			}
		}
	}

	folderDialog.Show()
}

func (a *Application) copyToClipboard(text string) {
	a.app.Clipboard().SetContent(text)
}

// panelSink forwards a run's output to the widgets
type panelSink struct {
	a *Application
}

func (s *panelSink) Progress(fraction float64) {
	fyne.Do(func() {
		s.a.progressBar.SetValue(fraction)
	})
}

func (s *panelSink) Panel(panel present.Panel) {
	fyne.Do(func() {
		if p, ok := s.a.panels[panel.Language]; ok {
			p.Show(panel)
		}
	})
}

func (s *panelSink) Steps() int {
	return progressSteps
}

func (s *panelSink) Yield() {
	time.Sleep(progressStepDelay)
}
