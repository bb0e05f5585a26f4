package translation

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"google.golang.org/genai"
)

// GeminiService translates with Google's Gemini API
type GeminiService struct {
	apiKey  string
	model   string
	timeout time.Duration

	mu     sync.Mutex
	client *genai.Client
}

// NewGeminiService creates a new Gemini translation service. The API
// client is created on first use.
func NewGeminiService(apiKey, model string, timeout time.Duration) *GeminiService {
	if model == "" {
		model = DefaultModel(ProviderGemini)
	}
	return &GeminiService{
		apiKey:  apiKey,
		model:   model,
		timeout: timeout,
	}
}

// Name returns the service name
func (s *GeminiService) Name() string {
	return fmt.Sprintf("Gemini (%s)", s.model)
}

// Detect asks the model for the language code of text
func (s *GeminiService) Detect(ctx context.Context, text string) (string, error) {
	reply, err := s.generate(ctx, detectSystemPrompt, text)
	if err != nil {
		return "", err
	}
	return parseDetectedCode(reply)
}

// Translate translates text into target
func (s *GeminiService) Translate(ctx context.Context, text, target string) (string, error) {
	return s.generate(ctx, translateSystemPrompt(target), text)
}

func (s *GeminiService) getClient(ctx context.Context) (*genai.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		return s.client, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  s.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	s.client = client
	return client, nil
}

func (s *GeminiService) generate(ctx context.Context, system, user string) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	client, err := s.getClient(ctx)
	if err != nil {
		return "", err
	}

	config := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr[float32](0.3),
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
	}

	resp, err := client.Models.GenerateContent(ctx, s.model, genai.Text(user), config)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("no response from Gemini")
	}
	return text, nil
}
