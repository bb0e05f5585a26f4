package translation

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// RateLimitedService spaces out calls to the wrapped service
type RateLimitedService struct {
	next    Service
	limiter *rate.Limiter
}

// NewRateLimitedService allows perSecond calls per second with a burst of one
func NewRateLimitedService(next Service, perSecond float64) *RateLimitedService {
	return &RateLimitedService{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(perSecond), 1),
	}
}

// Name returns the wrapped service name
func (s *RateLimitedService) Name() string {
	return s.next.Name()
}

// Detect waits for the limiter, then detects
func (s *RateLimitedService) Detect(ctx context.Context, text string) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}
	return s.next.Detect(ctx, text)
}

// Translate waits for the limiter, then translates
func (s *RateLimitedService) Translate(ctx context.Context, text, target string) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}
	return s.next.Translate(ctx, text, target)
}
