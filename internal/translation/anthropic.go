package translation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// anthropicMaxTokens leaves room for a 5000 character description
const anthropicMaxTokens = 8192

// AnthropicService translates with Anthropic's Messages API
type AnthropicService struct {
	client  anthropic.Client
	model   string
	timeout time.Duration
}

// NewAnthropicService creates a new Anthropic translation service
func NewAnthropicService(apiKey, model string, timeout time.Duration) *AnthropicService {
	if model == "" {
		model = DefaultModel(ProviderAnthropic)
	}
	return &AnthropicService{
		client:  anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:   model,
		timeout: timeout,
	}
}

// Name returns the service name
func (s *AnthropicService) Name() string {
	return fmt.Sprintf("Anthropic (%s)", s.model)
}

// Detect asks the model for the language code of text
func (s *AnthropicService) Detect(ctx context.Context, text string) (string, error) {
	reply, err := s.message(ctx, detectSystemPrompt, text)
	if err != nil {
		return "", err
	}
	return parseDetectedCode(reply)
}

// Translate translates text into target
func (s *AnthropicService) Translate(ctx context.Context, text, target string) (string, error) {
	return s.message(ctx, translateSystemPrompt(target), text)
}

func (s *AnthropicService) message(ctx context.Context, system, user string) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	resp, err := s.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(s.model),
		MaxTokens: anthropicMaxTokens,
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("Anthropic API error: %w", err)
	}

	for _, block := range resp.Content {
		switch v := block.AsAny().(type) {
		case anthropic.TextBlock:
			return strings.TrimSpace(v.Text), nil
		}
	}
	return "", fmt.Errorf("no text in Anthropic response")
}
