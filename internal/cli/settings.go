package cli

import (
	"github.com/spf13/viper"

	"codeberg.org/snonux/bulktrans/internal/translation"
)

// Settings are the configuration values of a run after flags, config
// file and environment have been merged
type Settings struct {
	Translation      *translation.Config
	FallbackLanguage string
	OutputDir        string
	UILanguage       string
	RTLPadding       bool
	LogLevel         string
	NoColor          bool
}

// ResolveSettings merges flags with viper. Flags set on the command line
// win over the config file, which wins over flag defaults.
func ResolveSettings(flags *Flags) *Settings {
	provider := viper.GetString("translation.provider")
	fallbackProvider := viper.GetString("translation.fallback_provider")

	config := translation.DefaultConfig()
	config.Provider = provider
	config.APIKey = GetAPIKey(provider)
	config.Model = viper.GetString("translation.model")
	config.BaseURL = viper.GetString("translation.base_url")
	config.FallbackProvider = fallbackProvider
	config.FallbackAPIKey = GetAPIKey(fallbackProvider)
	config.DetectionEngine = viper.GetString("detection.engine")
	config.RateLimit = viper.GetFloat64("translation.rate_limit")
	config.Timeout = viper.GetDuration("translation.timeout")
	config.BreakerFailures = viper.GetUint32("translation.breaker_failures")
	config.EnableCache = !flags.NoCache

	rtlPadding := viper.GetBool("ui.rtl_padding")
	if flags.NoRTLPadding {
		rtlPadding = false
	}

	return &Settings{
		Translation:      config,
		FallbackLanguage: viper.GetString("detection.fallback_language"),
		OutputDir:        viper.GetString("output.directory"),
		UILanguage:       viper.GetString("ui.language"),
		RTLPadding:       rtlPadding,
		LogLevel:         viper.GetString("log.level"),
		NoColor:          flags.NoColor,
	}
}
