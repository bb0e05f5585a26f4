package translation

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Service detects languages and translates text
type Service interface {
	// Detect returns the ISO 639-1 code of the language text is written in
	Detect(ctx context.Context, text string) (string, error)

	// Translate translates text into the target language code
	Translate(ctx context.Context, text, target string) (string, error)

	// Name returns the service name
	Name() string
}

// Provider names
const (
	ProviderGoogle    = "google"
	ProviderOpenAI    = "openai"
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
)

var (
	ErrMissingAPIKey   = errors.New("API key is required")
	ErrUnknownProvider = errors.New("unknown translation provider")
	ErrUndetected      = errors.New("language could not be detected")
)

// Config holds the configuration for the translation service stack
type Config struct {
	Provider         string // google, openai, gemini, anthropic
	APIKey           string
	Model            string // LLM providers only
	BaseURL          string // OpenAI-compatible endpoint, openai only
	FallbackProvider string // used when the primary provider fails
	FallbackAPIKey   string

	// DetectionEngine selects who detects the input language: "service"
	// asks the provider, "whatlang" and "lingua" detect locally.
	DetectionEngine string

	Timeout         time.Duration // per service call
	RateLimit       float64       // calls per second, 0 disables
	BreakerFailures uint32        // consecutive failures that open the breaker, 0 disables
	BreakerCooldown time.Duration // time the breaker stays open
	EnableCache     bool
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Provider:        ProviderGoogle,
		DetectionEngine: "service",
		Timeout:         30 * time.Second,
		RateLimit:       5,
		BreakerFailures: 3,
		BreakerCooldown: 30 * time.Second,
		EnableCache:     true,
	}
}

// DefaultModel returns the model used when none is configured
func DefaultModel(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return "gpt-4o-mini"
	case ProviderGemini:
		return "gemini-2.0-flash"
	case ProviderAnthropic:
		return "claude-3-5-haiku-latest"
	default:
		return ""
	}
}

// NewProvider creates a single, undecorated translation provider
func NewProvider(name, apiKey, model, baseURL string, timeout time.Duration) (Service, error) {
	if model == "" {
		model = DefaultModel(name)
	}
	if timeout <= 0 {
		timeout = DefaultConfig().Timeout
	}

	switch name {
	case ProviderGoogle, "":
		return NewGoogleService(NewLinguaDetector(), timeout), nil
	case ProviderOpenAI:
		if apiKey == "" {
			return nil, fmt.Errorf("OpenAI %w", ErrMissingAPIKey)
		}
		return NewOpenAIService(apiKey, model, baseURL, timeout), nil
	case ProviderGemini:
		if apiKey == "" {
			return nil, fmt.Errorf("Gemini %w", ErrMissingAPIKey)
		}
		return NewGeminiService(apiKey, model, timeout), nil
	case ProviderAnthropic:
		if apiKey == "" {
			return nil, fmt.Errorf("Anthropic %w", ErrMissingAPIKey)
		}
		return NewAnthropicService(apiKey, model, timeout), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, name)
	}
}

// NewService builds the configured provider and wraps it with the enabled
// decorators. From the outside in: cache, circuit breaker, rate limiter,
// local detector, fallback provider.
func NewService(config *Config) (Service, error) {
	if config == nil {
		config = DefaultConfig()
	}

	svc, err := NewProvider(config.Provider, config.APIKey, config.Model, config.BaseURL, config.Timeout)
	if err != nil {
		return nil, err
	}

	if config.FallbackProvider != "" && config.FallbackProvider != config.Provider {
		fallback, err := NewProvider(config.FallbackProvider, config.FallbackAPIKey, "", "", config.Timeout)
		if err != nil {
			return nil, fmt.Errorf("fallback provider: %w", err)
		}
		svc = NewServiceWithFallback(svc, fallback)
	}

	switch config.DetectionEngine {
	case "", "service":
	default:
		detector, err := NewDetector(config.DetectionEngine)
		if err != nil {
			return nil, err
		}
		svc = WithDetector(svc, detector)
	}

	if config.RateLimit > 0 {
		svc = NewRateLimitedService(svc, config.RateLimit)
	}
	if config.BreakerFailures > 0 {
		svc = NewBreakerService(svc, config.BreakerFailures, config.BreakerCooldown)
	}
	if config.EnableCache {
		svc = NewCachedService(svc, NewTranslationCache())
	}

	return svc, nil
}
