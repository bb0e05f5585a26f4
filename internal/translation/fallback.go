package translation

import (
	"context"
	"fmt"

	"codeberg.org/snonux/bulktrans/internal/logger"
)

// ServiceWithFallback wraps a primary service with a fallback option
type ServiceWithFallback struct {
	primary  Service
	fallback Service
}

// NewServiceWithFallback creates a service that falls back to secondary if primary fails
func NewServiceWithFallback(primary, fallback Service) Service {
	return &ServiceWithFallback{
		primary:  primary,
		fallback: fallback,
	}
}

// Detect tries the primary service first, falls back to secondary on error
func (s *ServiceWithFallback) Detect(ctx context.Context, text string) (string, error) {
	code, err := s.primary.Detect(ctx, text)
	if err == nil {
		return code, nil
	}
	if ctx.Err() != nil {
		return "", err
	}

	logger.Warn("primary service failed, falling back",
		"module", "translation", "op", "detect",
		"primary", s.primary.Name(), "fallback", s.fallback.Name(), "error", err)
	return s.fallback.Detect(ctx, text)
}

// Translate tries the primary service first, falls back to secondary on error
func (s *ServiceWithFallback) Translate(ctx context.Context, text, target string) (string, error) {
	translated, err := s.primary.Translate(ctx, text, target)
	if err == nil {
		return translated, nil
	}
	if ctx.Err() != nil {
		return "", err
	}

	logger.Warn("primary service failed, falling back",
		"module", "translation", "op", "translate", "lang", target,
		"primary", s.primary.Name(), "fallback", s.fallback.Name(), "error", err)
	return s.fallback.Translate(ctx, text, target)
}

// Name returns the service name
func (s *ServiceWithFallback) Name() string {
	return fmt.Sprintf("%s (fallback: %s)", s.primary.Name(), s.fallback.Name())
}
