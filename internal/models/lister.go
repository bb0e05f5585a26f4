package models

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Lister handles listing available OpenAI models
type Lister struct {
	apiKey string
	client *openai.Client
}

// NewLister creates a new model lister. baseURL may point to an
// OpenAI-compatible server.
func NewLister(apiKey, baseURL string) *Lister {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClientWithConfig(config),
	}
}

// ListChatModels returns the sorted IDs of chat models
func (l *Lister) ListChatModels(ctx context.Context) ([]string, error) {
	if l.apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .bulktrans.yaml")
	}

	list, err := l.client.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	ids := make([]string, 0, len(list.Models))
	for _, model := range list.Models {
		ids = append(ids, model.ID)
	}
	return filterChatModels(ids), nil
}

// PrintChatModels writes the chat models to w
func (l *Lister) PrintChatModels(ctx context.Context, w io.Writer) error {
	chatModels, err := l.ListChatModels(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Chat/Translation Models (use with --model):")
	if len(chatModels) == 0 {
		fmt.Fprintln(w, "  No chat models found")
		return nil
	}
	for _, model := range chatModels {
		fmt.Fprintf(w, "  %s\n", model)
	}
	return nil
}

var nonChat = []string{"tts", "audio", "dall-e", "image", "embedding", "whisper", "moderation", "realtime", "transcribe", "search"}

// filterChatModels keeps gpt, o-series and chat models
func filterChatModels(ids []string) []string {
	var chatModels []string
	for _, id := range ids {
		if isNonChat(id) {
			continue
		}
		if strings.Contains(id, "gpt") || strings.Contains(id, "chat") ||
			strings.HasPrefix(id, "o1") || strings.HasPrefix(id, "o3") || strings.HasPrefix(id, "o4") {
			chatModels = append(chatModels, id)
		}
	}
	sort.Strings(chatModels)
	return chatModels
}

func isNonChat(id string) bool {
	for _, s := range nonChat {
		if strings.Contains(id, s) {
			return true
		}
	}
	return false
}
