package testutil

import (
	"context"
	"fmt"
	"sync"
)

// MockService mocks a translation service. Translations default to
// "[<target>] <text>"; Errors fails every call for a target language.
type MockService struct {
	DetectLanguage string
	DetectErr      error
	Translations   map[string]string // keyed by TranslationKey
	Errors         map[string]error  // keyed by target language
	ServiceName    string

	mu    sync.Mutex
	calls []string
}

// NewMockService returns a mock that detects lang
func NewMockService(lang string) *MockService {
	return &MockService{
		DetectLanguage: lang,
		Translations:   make(map[string]string),
		Errors:         make(map[string]error),
	}
}

// TranslationKey builds the Translations key for text and target
func TranslationKey(text, target string) string {
	return target + ":" + text
}

// Detect mocks language detection
func (m *MockService) Detect(ctx context.Context, text string) (string, error) {
	m.record(fmt.Sprintf("detect %s", text))
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if m.DetectErr != nil {
		return "", m.DetectErr
	}
	return m.DetectLanguage, nil
}

// Translate mocks translation
func (m *MockService) Translate(ctx context.Context, text, target string) (string, error) {
	m.record(fmt.Sprintf("translate %s %s", target, text))
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err, ok := m.Errors[target]; ok {
		return "", err
	}
	if translated, ok := m.Translations[TranslationKey(text, target)]; ok {
		return translated, nil
	}
	return fmt.Sprintf("[%s] %s", target, text), nil
}

// Name returns the mock name
func (m *MockService) Name() string {
	if m.ServiceName != "" {
		return m.ServiceName
	}
	return "mock"
}

// Calls returns the recorded calls in order
func (m *MockService) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// TranslateCalls returns the number of Translate calls
func (m *MockService) TranslateCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, call := range m.calls {
		if len(call) > 10 && call[:10] == "translate " {
			n++
		}
	}
	return n
}

func (m *MockService) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
}
