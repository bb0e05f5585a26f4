package cli

import (
	"time"

	"codeberg.org/snonux/bulktrans/internal/i18n"
	"codeberg.org/snonux/bulktrans/internal/translation"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	OutputDir  string
	LogLevel   string
	ListModels bool
	Archive    bool
	NoColor    bool

	// Input flags, any of them selects headless mode
	Title       string
	Description string
	InputFile   string

	// Translation flags
	Provider         string
	FallbackProvider string
	Model            string
	BaseURL          string
	RateLimit        float64
	Timeout          time.Duration
	BreakerFailures  uint32
	NoCache          bool

	// Detection flags
	Detector         string
	FallbackLanguage string

	// UI flags
	UILanguage   string
	NoRTLPadding bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	defaults := translation.DefaultConfig()
	return &Flags{
		LogLevel:        "info",
		Provider:        defaults.Provider,
		RateLimit:       defaults.RateLimit,
		Timeout:         defaults.Timeout,
		BreakerFailures: defaults.BreakerFailures,
		Detector:        defaults.DetectionEngine,
		UILanguage:      i18n.DefaultLocale,
	}
}

// Headless reports whether input was given on the command line
func (f *Flags) Headless() bool {
	return f.Title != "" || f.Description != "" || f.InputFile != ""
}
