package gui

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"codeberg.org/snonux/bulktrans/internal/limiter"
	"codeberg.org/snonux/bulktrans/internal/present"
)

// copiedDuration is how long the copy button reads "Copied!"
const copiedDuration = 2 * time.Second

// LanguagePanel shows the translated title of one language with a
// character counter and a copy button
type LanguagePanel struct {
	widget.BaseWidget

	Language string

	container  *fyne.Container
	label      *widget.Label
	entry      *widget.Entry
	counter    *widget.Label
	copyButton *ttwidget.Button

	copyText   string
	copiedText string
	onCopy     func(text string)

	mu    sync.Mutex
	timer *time.Timer
}

// NewLanguagePanel creates a panel for language code. onCopy receives the
// text to put on the clipboard.
func NewLanguagePanel(code, label, copyText, copiedText string, onCopy func(string)) *LanguagePanel {
	p := &LanguagePanel{
		Language:   code,
		copyText:   copyText,
		copiedText: copiedText,
		onCopy:     onCopy,
	}

	p.label = widget.NewLabel(label)
	p.label.TextStyle = fyne.TextStyle{Bold: true}

	p.entry = widget.NewEntry()
	p.entry.OnChanged = func(text string) {
		p.updateCounter(text)
	}

	p.counter = widget.NewLabel(limiter.Counter("", limiter.MaxPanelChars))
	p.copyButton = ttwidget.NewButtonWithIcon(copyText, theme.ContentCopyIcon(), p.copy)

	p.container = container.NewBorder(
		nil, nil,
		container.NewGridWrap(fyne.NewSize(110, p.label.MinSize().Height), p.label),
		container.NewHBox(p.counter, p.copyButton),
		p.entry,
	)

	p.ExtendBaseWidget(p)
	return p
}

// CreateRenderer implements fyne.Widget
func (p *LanguagePanel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.container)
}

// SetToolTip sets the tooltip of the copy button
func (p *LanguagePanel) SetToolTip(text string) {
	p.copyButton.SetToolTip(text)
}

// Show displays a panel produced by a run. The counter and highlight come
// from the panel, not from the padded display text. Must run on the UI
// goroutine.
func (p *LanguagePanel) Show(panel present.Panel) {
	p.entry.SetText(panel.Text)
	p.counter.SetText(fmt.Sprintf("%d/%d", panel.Chars, limiter.MaxPanelChars))
	p.setHighlight(panel.OverLimit || panel.Failed)
}

// Clear empties the panel
func (p *LanguagePanel) Clear() {
	p.entry.SetText("")
	p.updateCounter("")
}

// updateCounter counts without the right-to-left indent
func (p *LanguagePanel) updateCounter(text string) {
	text = strings.TrimSpace(text)
	p.counter.SetText(limiter.Counter(text, limiter.MaxPanelChars))

	p.setHighlight(len([]rune(text)) > limiter.MaxPanelChars)
}

func (p *LanguagePanel) setHighlight(on bool) {
	importance := widget.MediumImportance
	if on {
		importance = widget.DangerImportance
	}
	if p.counter.Importance != importance {
		p.counter.Importance = importance
		p.counter.Refresh()
	}
}

func (p *LanguagePanel) copy() {
	if p.onCopy != nil {
		p.onCopy(strings.TrimSpace(p.entry.Text))
	}
	p.copyButton.SetText(p.copiedText)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.timer != nil {
		p.timer.Stop()
	}
	p.timer = time.AfterFunc(copiedDuration, func() {
		fyne.Do(func() {
			p.copyButton.SetText(p.copyText)
		})
	})
}
