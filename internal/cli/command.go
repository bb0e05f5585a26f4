package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/bulktrans/internal"
	"codeberg.org/snonux/bulktrans/internal/translation"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bulktrans",
		Short: "YouTube Bulk Translator",
		Long: `bulktrans translates a video title and description into Arabic, Dutch,
English, Indonesian, Italian, Japanese, German, French, Russian and Spanish.

The language of the title is detected automatically. Results can be saved
as translated_HHMM_DDMMYYYY.csv in a directory of your choice.

Examples:
  bulktrans                                   # Launch interactive GUI (default)
  bulktrans -t "Hello World" -d "My video"    # Translate on the command line
  bulktrans -i video.txt -o ~/exports         # Title and description from file, save CSV
  bulktrans --provider openai --model gpt-4o  # Use OpenAI instead of Google Translate`,
		Args:    cobra.NoArgs,
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.bulktrans.yaml)")

	// Input flags
	cmd.Flags().StringVarP(&flags.Title, "title", "t", "", "Video title to translate (max 100 characters)")
	cmd.Flags().StringVarP(&flags.Description, "description", "d", "", "Video description to translate (max 5000 characters)")
	cmd.Flags().StringVarP(&flags.InputFile, "input", "i", "", "Read title (first line) and description (rest) from file, - for stdin")

	// Output flags
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", "", "Directory for the CSV export (no export when empty)")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Move earlier CSV exports of the output directory into its archive subdirectory")
	cmd.Flags().BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")
	cmd.Flags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")

	// Translation flags
	cmd.Flags().StringVar(&flags.Provider, "provider", flags.Provider, "Translation provider: google, openai, gemini, anthropic")
	cmd.Flags().StringVar(&flags.FallbackProvider, "fallback-provider", "", "Provider used when the primary provider fails")
	cmd.Flags().StringVar(&flags.Model, "model", "", "Model for LLM providers (default depends on provider)")
	cmd.Flags().StringVar(&flags.BaseURL, "base-url", "", "Base URL of an OpenAI-compatible API (openai provider only)")
	cmd.Flags().Float64Var(&flags.RateLimit, "rate-limit", flags.RateLimit, "Maximum service calls per second (0 disables)")
	cmd.Flags().DurationVar(&flags.Timeout, "timeout", flags.Timeout, "Timeout per service call")
	cmd.Flags().Uint32Var(&flags.BreakerFailures, "breaker-failures", flags.BreakerFailures, "Consecutive failures before pausing the provider (0 disables)")
	cmd.Flags().BoolVar(&flags.NoCache, "no-cache", false, "Disable the in-memory translation cache")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI chat models for the current API key")

	// Detection flags
	cmd.Flags().StringVar(&flags.Detector, "detector", flags.Detector, "Language detection: service, whatlang, lingua")
	cmd.Flags().StringVar(&flags.FallbackLanguage, "fallback-language", "", "Input language to assume when detection fails (default: abort)")

	// UI flags
	cmd.Flags().StringVar(&flags.UILanguage, "ui-language", flags.UILanguage, "UI language: id, en")
	cmd.Flags().BoolVar(&flags.NoRTLPadding, "no-rtl-padding", false, "Do not indent right-to-left translations")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("translation.provider", cmd.Flags().Lookup("provider"))
	viper.BindPFlag("translation.fallback_provider", cmd.Flags().Lookup("fallback-provider"))
	viper.BindPFlag("translation.model", cmd.Flags().Lookup("model"))
	viper.BindPFlag("translation.base_url", cmd.Flags().Lookup("base-url"))
	viper.BindPFlag("translation.rate_limit", cmd.Flags().Lookup("rate-limit"))
	viper.BindPFlag("translation.timeout", cmd.Flags().Lookup("timeout"))
	viper.BindPFlag("translation.breaker_failures", cmd.Flags().Lookup("breaker-failures"))
	viper.BindPFlag("detection.engine", cmd.Flags().Lookup("detector"))
	viper.BindPFlag("detection.fallback_language", cmd.Flags().Lookup("fallback-language"))
	viper.BindPFlag("output.directory", cmd.Flags().Lookup("output"))
	viper.BindPFlag("ui.language", cmd.Flags().Lookup("ui-language"))
	viper.BindPFlag("log.level", cmd.Flags().Lookup("log-level"))
	viper.SetDefault("ui.rtl_padding", true)
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	// A .env file in the working directory is optional
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env: %v\n", err)
	}

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".bulktrans" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".bulktrans")
	}

	// Environment variables, e.g. BULKTRANS_TRANSLATION_PROVIDER
	viper.SetEnvPrefix("BULKTRANS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

var apiKeyEnv = map[string]string{
	translation.ProviderOpenAI:    "OPENAI_API_KEY",
	translation.ProviderGemini:    "GEMINI_API_KEY",
	translation.ProviderAnthropic: "ANTHROPIC_API_KEY",
}

// GetAPIKey retrieves the API key of provider from environment or config.
// Google Translate needs no key.
func GetAPIKey(provider string) string {
	envName, ok := apiKeyEnv[provider]
	if !ok {
		return ""
	}

	// First check environment variable
	if key := os.Getenv(envName); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("translation." + provider + "_key")
}
