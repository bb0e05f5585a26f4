package translation

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"

	"codeberg.org/snonux/bulktrans/internal/logger"
)

// BreakerService stops calling a failing service for a cooldown period.
// While open, calls fail fast with gobreaker.ErrOpenState.
type BreakerService struct {
	next Service
	cb   *gobreaker.CircuitBreaker
}

// NewBreakerService opens the breaker after failures consecutive errors
// and probes again after cooldown
func NewBreakerService(next Service, failures uint32, cooldown time.Duration) *BreakerService {
	if failures == 0 {
		failures = 1
	}
	settings := gobreaker.Settings{
		Name:        next.Name(),
		MaxRequests: 1,
		Timeout:     cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		IsSuccessful: func(err error) bool {
			// a cancelled run says nothing about the service
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				"module", "translation", "service", name,
				"from", from.String(), "to", to.String())
		},
	}
	return &BreakerService{
		next: next,
		cb:   gobreaker.NewCircuitBreaker(settings),
	}
}

// Name returns the wrapped service name
func (s *BreakerService) Name() string {
	return s.next.Name()
}

// Detect detects the language of text through the breaker
func (s *BreakerService) Detect(ctx context.Context, text string) (string, error) {
	return s.execute(func() (string, error) {
		return s.next.Detect(ctx, text)
	})
}

// Translate translates text through the breaker
func (s *BreakerService) Translate(ctx context.Context, text, target string) (string, error) {
	return s.execute(func() (string, error) {
		return s.next.Translate(ctx, text, target)
	})
}

func (s *BreakerService) execute(call func() (string, error)) (string, error) {
	result, err := s.cb.Execute(func() (interface{}, error) {
		return call()
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}
