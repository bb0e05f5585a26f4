package processor

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"codeberg.org/snonux/bulktrans/internal/present"
)

var (
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.Bold, color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

// terminalSink shows progress as a bar on stderr and panels on stdout.
// Panels are buffered until the bar is finished so the two don't mix.
type terminalSink struct {
	out    io.Writer
	bar    *progressbar.ProgressBar
	panels []present.Panel
}

func newTerminalSink(out, errOut io.Writer) *terminalSink {
	bar := progressbar.NewOptions(100,
		progressbar.OptionSetWriter(errOut),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan]Translating[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
	return &terminalSink{out: out, bar: bar}
}

func (s *terminalSink) Progress(fraction float64) {
	s.bar.Set(int(fraction*100 + 0.5))
}

func (s *terminalSink) Panel(panel present.Panel) {
	s.panels = append(s.panels, panel)
}

func (s *terminalSink) finish() {
	s.bar.Finish()
	fmt.Fprintln(s.out)
	for _, panel := range s.panels {
		writePanel(s.out, panel)
	}
}

// writePanel prints "[<label>] <text>" followed by the indented description
func writePanel(w io.Writer, panel present.Panel) {
	label := bold(fmt.Sprintf("[%s]", panel.Label))
	text := panel.Text
	switch {
	case panel.Failed:
		text = red(text)
	case panel.OverLimit:
		text = yellow(text)
	case panel.Source:
		text = cyan(text)
	}
	fmt.Fprintf(w, "%s %s\n", label, text)

	if panel.Description == "" {
		return
	}
	for _, line := range strings.Split(panel.Description, "\n") {
		fmt.Fprintf(w, "    %s\n", line)
	}
}
