package translation

import (
	"errors"
	"strings"
	"testing"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		apiKey   string
		wantName string
		wantErr  error
	}{
		{name: "google default", provider: "", wantName: "Google Translate"},
		{name: "google", provider: ProviderGoogle, wantName: "Google Translate"},
		{name: "openai", provider: ProviderOpenAI, apiKey: "key", wantName: "OpenAI (gpt-4o-mini)"},
		{name: "gemini", provider: ProviderGemini, apiKey: "key", wantName: "Gemini (gemini-2.0-flash)"},
		{name: "anthropic", provider: ProviderAnthropic, apiKey: "key", wantName: "Anthropic (claude-3-5-haiku-latest)"},
		{name: "openai without key", provider: ProviderOpenAI, wantErr: ErrMissingAPIKey},
		{name: "gemini without key", provider: ProviderGemini, wantErr: ErrMissingAPIKey},
		{name: "anthropic without key", provider: ProviderAnthropic, wantErr: ErrMissingAPIKey},
		{name: "unknown", provider: "babelfish", wantErr: ErrUnknownProvider},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewProvider(tt.provider, tt.apiKey, "", "", 0)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewProvider failed: %v", err)
			}
			if svc.Name() != tt.wantName {
				t.Errorf("Expected name %q, got %q", tt.wantName, svc.Name())
			}
		})
	}
}

func TestNewService_Decorators(t *testing.T) {
	config := DefaultConfig()
	svc, err := NewService(config)
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}

	cached, ok := svc.(*CachedService)
	if !ok {
		t.Fatalf("Expected outermost *CachedService, got %T", svc)
	}
	if _, ok := cached.next.(*BreakerService); !ok {
		t.Errorf("Expected *BreakerService inside the cache, got %T", cached.next)
	}

	config.EnableCache = false
	config.BreakerFailures = 0
	config.RateLimit = 0
	svc, err = NewService(config)
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	if _, ok := svc.(*GoogleService); !ok {
		t.Errorf("Expected bare *GoogleService, got %T", svc)
	}
}

func TestNewService_DetectionEngineAndFallback(t *testing.T) {
	config := &Config{
		Provider:         ProviderOpenAI,
		APIKey:           "key",
		FallbackProvider: ProviderGoogle,
		DetectionEngine:  "lingua",
	}
	svc, err := NewService(config)
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}

	name := svc.Name()
	for _, want := range []string{"OpenAI", "fallback: Google Translate", "detection: lingua"} {
		if !strings.Contains(name, want) {
			t.Errorf("Expected service name %q to contain %q", name, want)
		}
	}

	config.DetectionEngine = "crystal-ball"
	if _, err := NewService(config); err == nil {
		t.Error("Expected error for unknown detection engine")
	}

	config.DetectionEngine = "service"
	config.FallbackProvider = ProviderAnthropic
	if _, err := NewService(config); !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("Expected missing fallback key error, got %v", err)
	}
}

func TestParseDetectedCode(t *testing.T) {
	tests := []struct {
		reply   string
		want    string
		wantErr bool
	}{
		{reply: "en", want: "en"},
		{reply: "EN.", want: "en"},
		{reply: "`de`", want: "de"},
		{reply: " pt-BR\n", want: "pt"},
		{reply: "", wantErr: true},
		{reply: "...", wantErr: true},
		{reply: "English", wantErr: true},
		{reply: "und", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.reply, func(t *testing.T) {
			got, err := parseDetectedCode(tt.reply)
			if tt.wantErr {
				if !errors.Is(err, ErrUndetected) {
					t.Errorf("Expected ErrUndetected, got %q, %v", got, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseDetectedCode failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestTranslateSystemPrompt(t *testing.T) {
	prompt := translateSystemPrompt("ja")
	if !strings.Contains(prompt, "Japanese") || !strings.Contains(prompt, `"ja"`) {
		t.Errorf("Prompt does not name the target language: %s", prompt)
	}
}
