package translation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// OpenAIService translates with OpenAI chat completions. BaseURL points it
// at any OpenAI-compatible server.
type OpenAIService struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAIService creates a new OpenAI translation service
func NewOpenAIService(apiKey, model, baseURL string, timeout time.Duration) *OpenAIService {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	if model == "" {
		model = DefaultModel(ProviderOpenAI)
	}
	return &OpenAIService{
		client:  openai.NewClientWithConfig(config),
		model:   model,
		timeout: timeout,
	}
}

// Name returns the service name
func (s *OpenAIService) Name() string {
	return fmt.Sprintf("OpenAI (%s)", s.model)
}

// Detect asks the model for the language code of text
func (s *OpenAIService) Detect(ctx context.Context, text string) (string, error) {
	reply, err := s.complete(ctx, detectSystemPrompt, text)
	if err != nil {
		return "", err
	}
	return parseDetectedCode(reply)
}

// Translate translates text into target
func (s *OpenAIService) Translate(ctx context.Context, text, target string) (string, error) {
	return s.complete(ctx, translateSystemPrompt(target), text)
}

func (s *OpenAIService) complete(ctx context.Context, system, user string) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	req := openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: system,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: user,
			},
		},
		Temperature: 0.3,
	}

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
