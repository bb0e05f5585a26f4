package translation

import (
	"context"
	"os"
	"testing"
	"time"
)

// Live provider checks, skipped unless the matching API key is set.
func TestLLMProviders_Integration(t *testing.T) {
	providers := []struct {
		name   string
		envKey string
		create func(key string) Service
	}{
		{ProviderOpenAI, "OPENAI_API_KEY", func(key string) Service {
			return NewOpenAIService(key, "", "", 30*time.Second)
		}},
		{ProviderGemini, "GEMINI_API_KEY", func(key string) Service {
			return NewGeminiService(key, "", 30*time.Second)
		}},
		{ProviderAnthropic, "ANTHROPIC_API_KEY", func(key string) Service {
			return NewAnthropicService(key, "", 30*time.Second)
		}},
	}

	for _, p := range providers {
		t.Run(p.name, func(t *testing.T) {
			apiKey := os.Getenv(p.envKey)
			if apiKey == "" {
				t.Skipf("Skipping integration test: %s not set", p.envKey)
			}
			svc := p.create(apiKey)
			ctx := context.Background()

			code, err := svc.Detect(ctx, "Hello World")
			if err != nil {
				t.Fatalf("Detect failed: %v", err)
			}
			if code != "en" {
				t.Errorf("Expected en, got %q", code)
			}

			translated, err := svc.Translate(ctx, "Hello World", "de")
			if err != nil {
				t.Fatalf("Translate failed: %v", err)
			}
			if translated == "" {
				t.Error("Got empty translation")
			}
			t.Logf("%s: %s", svc.Name(), translated)
		})
	}
}
