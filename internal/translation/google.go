package translation

import (
	"context"
	"fmt"
	"time"

	"github.com/bregydoc/gtranslate"
)

// GoogleService translates through the free Google Translate endpoint.
// The endpoint has no detection call, so Detect uses a local detector.
type GoogleService struct {
	detector  Detector
	timeout   time.Duration
	translate func(text string, params gtranslate.TranslationParams) (string, error)
}

// NewGoogleService creates a Google Translate service
func NewGoogleService(detector Detector, timeout time.Duration) *GoogleService {
	if detector == nil {
		detector = NewLinguaDetector()
	}
	return &GoogleService{
		detector:  detector,
		timeout:   timeout,
		translate: gtranslate.TranslateWithParams,
	}
}

// Name returns the service name
func (s *GoogleService) Name() string {
	return "Google Translate"
}

// Detect detects the language of text with the local detector
func (s *GoogleService) Detect(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.detector.Detect(text)
}

// Translate translates text into target. gtranslate takes no context, so
// the call runs on its own goroutine and is abandoned on timeout.
func (s *GoogleService) Translate(ctx context.Context, text, target string) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	type result struct {
		text string
		err  error
	}
	done := make(chan result, 1)
	go func() {
		translated, err := s.translate(text, gtranslate.TranslationParams{
			From: "auto",
			To:   target,
		})
		done <- result{translated, err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			return "", fmt.Errorf("google translate to %s: %w", target, r.err)
		}
		return r.text, nil
	case <-ctx.Done():
		return "", fmt.Errorf("google translate to %s: %w", target, ctx.Err())
	}
}
