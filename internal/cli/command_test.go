package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestCreateRootCommand(t *testing.T) {
	resetViper(t)
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	// Test basic command properties
	if cmd.Use != "bulktrans" {
		t.Errorf("Expected Use to be 'bulktrans', got %s", cmd.Use)
	}

	if !strings.Contains(cmd.Short, "YouTube Bulk Translator") {
		t.Errorf("Expected Short description to contain 'YouTube Bulk Translator'")
	}

	// Test that flags are set up
	flagNames := []string{
		"config", "title", "description", "input", "output", "archive",
		"no-color", "log-level", "provider", "fallback-provider", "model",
		"base-url", "rate-limit", "timeout", "breaker-failures", "no-cache",
		"list-models", "detector", "fallback-language", "ui-language",
		"no-rtl-padding",
	}

	for _, name := range flagNames {
		t.Run("flag_"+name, func(t *testing.T) {
			var flag *pflag.Flag
			if name == "config" {
				flag = cmd.PersistentFlags().Lookup(name)
			} else {
				flag = cmd.Flags().Lookup(name)
			}
			if flag == nil {
				t.Errorf("Expected flag %s to exist", name)
			}
		})
	}

	for short, long := range map[string]string{"t": "title", "d": "description", "i": "input", "o": "output"} {
		if flag := cmd.Flags().ShorthandLookup(short); flag == nil || flag.Name != long {
			t.Errorf("Expected -%s to be shorthand for --%s", short, long)
		}
	}
}

func TestSetupFlags(t *testing.T) {
	resetViper(t)
	cmd := &cobra.Command{}
	flags := NewFlags()

	setupFlags(cmd, flags)

	defaults := map[string]string{
		"output":           "",
		"provider":         "google",
		"detector":         "service",
		"ui-language":      "id",
		"timeout":          "30s",
		"breaker-failures": "3",
		"log-level":        "info",
	}
	for name, want := range defaults {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			t.Fatalf("%s flag not found", name)
		}
		if flag.DefValue != want {
			t.Errorf("Expected default %s to be %q, got %q", name, want, flag.DefValue)
		}
	}
}

func TestInitConfig(t *testing.T) {
	tests := []struct {
		name      string
		setupFunc func(t *testing.T) string
		check     func(t *testing.T)
	}{
		{
			name: "with config file",
			setupFunc: func(t *testing.T) string {
				cfgPath := filepath.Join(t.TempDir(), "test-config.yaml")
				content := `translation:
  provider: anthropic
  anthropic_key: test-key
  timeout: 10s
output:
  directory: /test/output
ui:
  rtl_padding: false`
				if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
					t.Fatalf("Failed to create test config: %v", err)
				}
				return cfgPath
			},
			check: func(t *testing.T) {
				if got := viper.GetString("translation.provider"); got != "anthropic" {
					t.Errorf("translation.provider = %q", got)
				}
				if got := viper.GetDuration("translation.timeout"); got != 10*time.Second {
					t.Errorf("translation.timeout = %v", got)
				}
				if got := viper.GetString("output.directory"); got != "/test/output" {
					t.Errorf("output.directory = %q", got)
				}
			},
		},
		{
			name:      "without config file",
			setupFunc: func(t *testing.T) string { return "" },
			check:     func(t *testing.T) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper(t)

			InitConfig(tt.setupFunc(t))
			tt.check(t)

			// Test environment variable prefix
			t.Setenv("BULKTRANS_TEST_VAR", "test-value")
			if viper.GetString("test_var") != "test-value" {
				t.Error("Environment variable not properly loaded")
			}

			t.Setenv("BULKTRANS_DETECTION_ENGINE", "lingua")
			if viper.GetString("detection.engine") != "lingua" {
				t.Error("Nested key not resolved from environment")
			}
		})
	}
}

func TestGetAPIKey(t *testing.T) {
	tests := []struct {
		name      string
		provider  string
		envName   string
		envKey    string
		configKey string
		expected  string
	}{
		{
			name:      "from environment",
			provider:  "openai",
			envName:   "OPENAI_API_KEY",
			envKey:    "env-test-key",
			configKey: "config-test-key",
			expected:  "env-test-key",
		},
		{
			name:      "from config when no env",
			provider:  "gemini",
			envName:   "GEMINI_API_KEY",
			configKey: "config-test-key",
			expected:  "config-test-key",
		},
		{
			name:     "empty when neither set",
			provider: "anthropic",
			envName:  "ANTHROPIC_API_KEY",
			expected: "",
		},
		{
			name:      "google needs no key",
			provider:  "google",
			configKey: "ignored",
			expected:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper(t)

			// Set up environment
			if tt.envName != "" {
				t.Setenv(tt.envName, tt.envKey)
			}

			// Set up config
			if tt.configKey != "" {
				viper.Set("translation."+tt.provider+"_key", tt.configKey)
			}

			got := GetAPIKey(tt.provider)
			if got != tt.expected {
				t.Errorf("GetAPIKey(%q) = %v, want %v", tt.provider, got, tt.expected)
			}
		})
	}
}

func TestBindFlagsToViper(t *testing.T) {
	resetViper(t)

	cmd := &cobra.Command{}
	flags := NewFlags()
	setupFlags(cmd, flags)

	// Set some flag values
	cmd.Flags().Set("output", "/test/output")
	cmd.Flags().Set("provider", "openai")
	cmd.Flags().Set("fallback-language", "en")

	// Test that values are bound
	if viper.GetString("output.directory") != "/test/output" {
		t.Errorf("Expected output.directory to be /test/output, got %s", viper.GetString("output.directory"))
	}

	if viper.GetString("translation.provider") != "openai" {
		t.Errorf("Expected translation.provider to be openai, got %s", viper.GetString("translation.provider"))
	}

	if viper.GetString("detection.fallback_language") != "en" {
		t.Errorf("Expected detection.fallback_language to be en, got %s", viper.GetString("detection.fallback_language"))
	}

	if !viper.GetBool("ui.rtl_padding") {
		t.Error("Expected ui.rtl_padding to default to true")
	}
}
