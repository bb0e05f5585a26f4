package cli

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func TestResolveSettings(t *testing.T) {
	resetViper(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("ANTHROPIC_API_KEY", "")

	cmd := &cobra.Command{}
	flags := NewFlags()
	setupFlags(cmd, flags)

	// config file values
	viper.Set("translation.fallback_provider", "anthropic")
	viper.Set("translation.anthropic_key", "ant-test")
	viper.Set("output.directory", "/exports")

	// command line wins over config
	cmd.Flags().Set("provider", "openai")
	cmd.Flags().Set("timeout", "5s")
	cmd.Flags().Set("ui-language", "en")
	flags.NoRTLPadding = true
	flags.NoCache = true

	s := ResolveSettings(flags)

	tc := s.Translation
	if tc.Provider != "openai" || tc.APIKey != "sk-test" {
		t.Errorf("Unexpected provider/key: %q/%q", tc.Provider, tc.APIKey)
	}
	if tc.FallbackProvider != "anthropic" || tc.FallbackAPIKey != "ant-test" {
		t.Errorf("Unexpected fallback provider/key: %q/%q", tc.FallbackProvider, tc.FallbackAPIKey)
	}
	if tc.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v", tc.Timeout)
	}
	if tc.RateLimit != 5 || tc.BreakerFailures != 3 {
		t.Errorf("Defaults lost: rate %v, breaker %v", tc.RateLimit, tc.BreakerFailures)
	}
	if tc.EnableCache {
		t.Error("Cache should be disabled by --no-cache")
	}
	if tc.DetectionEngine != "service" {
		t.Errorf("DetectionEngine = %q", tc.DetectionEngine)
	}
	if s.OutputDir != "/exports" || s.UILanguage != "en" || s.RTLPadding {
		t.Errorf("Unexpected settings: %+v", s)
	}
}
