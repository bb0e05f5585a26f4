package present

import (
	"errors"
	"strings"
	"testing"

	"codeberg.org/snonux/bulktrans/internal/pipeline"
)

func TestPresent(t *testing.T) {
	p := NewPresenter()

	tests := []struct {
		name         string
		text         string
		code         string
		wantDisplay  string
		wantOverflow bool
	}{
		{"ltr unchanged", "Hallo Welt", "de", "Hallo Welt", false},
		{"arabic padded", "مرحبا بالعالم", "ar", "  مرحبا بالعالم", false},
		{"empty arabic", "", "ar", "  ", false},
		{"exactly at limit", strings.Repeat("a", 100), "en", strings.Repeat("a", 100), false},
		{"over limit", strings.Repeat("a", 101), "fr", strings.Repeat("a", 101), true},
		{"arabic at limit not pushed over by padding", strings.Repeat("ب", 100), "ar", "  " + strings.Repeat("ب", 100), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			display, over := p.Present(tt.text, tt.code)
			if display != tt.wantDisplay {
				t.Errorf("display = %q, want %q", display, tt.wantDisplay)
			}
			if over != tt.wantOverflow {
				t.Errorf("overLimit = %v, want %v", over, tt.wantOverflow)
			}
		})
	}
}

func TestPresent_NoPadding(t *testing.T) {
	p := NewPresenter()
	p.PadRTL = false

	display, _ := p.Present("مرحبا", "ar")
	if display != "مرحبا" {
		t.Errorf("Expected unpadded text, got %q", display)
	}
}

func TestErrorText(t *testing.T) {
	if got := ErrorText(errors.New("service unavailable ")); got != "Error: service unavailable" {
		t.Errorf("ErrorText = %q", got)
	}
	if got := ErrorText(nil); got != "" {
		t.Errorf("ErrorText(nil) = %q, want empty", got)
	}
}

func TestPanelText(t *testing.T) {
	p := NewPresenter()

	text, over := p.PanelText(pipeline.Outcome{Language: "ar", Title: "مرحبا"})
	if text != "  مرحبا" || over {
		t.Errorf("PanelText(ar) = %q, %v", text, over)
	}

	failed := pipeline.Outcome{
		Language: "ja",
		Err:      &pipeline.TranslationError{Language: "ja", Err: errors.New("quota exceeded")},
	}
	text, over = p.PanelText(failed)
	if text != "Error: quota exceeded" || over {
		t.Errorf("PanelText(failed) = %q, %v", text, over)
	}

	long := pipeline.Outcome{Language: "de", Title: strings.Repeat("a", 101)}
	if _, over := p.PanelText(long); !over {
		t.Error("Expected over-limit flag for 101 characters")
	}
}

func TestPanel(t *testing.T) {
	p := NewPresenter()

	panel := p.Panel(pipeline.Outcome{Language: "en", Title: "Hello", Description: "World", Source: true}, "Inggris")
	if panel.Label != "Inggris" || panel.Text != "Hello" || panel.Chars != 5 || panel.Description != "World" || !panel.Source {
		t.Errorf("Unexpected source panel %+v", panel)
	}

	panel = p.Panel(pipeline.Outcome{Language: "ar", Title: "مرحبا", Description: "وصف"}, "Arab")
	if panel.Description != "  وصف" || panel.Chars != 5 {
		t.Errorf("Unexpected RTL panel %+v", panel)
	}

	panel = p.Panel(pipeline.Outcome{Language: "ru", Err: errors.New("timeout")}, "Rusia")
	if !panel.Failed || panel.Text != "Error: timeout" || panel.Description != "" {
		t.Errorf("Unexpected failed panel %+v", panel)
	}
}
