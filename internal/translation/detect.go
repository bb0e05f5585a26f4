package translation

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/abadojack/whatlanggo"
	"github.com/pemistahl/lingua-go"

	"codeberg.org/snonux/bulktrans/internal/lang"
)

// Detector detects the language of a text locally
type Detector interface {
	Detect(text string) (string, error)
	Name() string
}

// NewDetector returns the local detector for engine
func NewDetector(engine string) (Detector, error) {
	switch strings.ToLower(engine) {
	case "whatlang":
		return WhatlangDetector{}, nil
	case "lingua":
		return NewLinguaDetector(), nil
	default:
		return nil, fmt.Errorf("unknown detection engine: %s", engine)
	}
}

// WhatlangDetector detects languages with trigram statistics. It is fast
// but needs a sentence or two; short titles usually come back unreliable.
type WhatlangDetector struct{}

// Name returns the detector name
func (WhatlangDetector) Name() string {
	return "whatlang"
}

// Detect returns the ISO 639-1 code of text
func (WhatlangDetector) Detect(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrUndetected
	}

	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return "", fmt.Errorf("%w: %s guess %q is unreliable", ErrUndetected, info.Lang.Iso6391(), text)
	}
	code := lang.Normalize(info.Lang.Iso6391())
	if code == "" {
		return "", ErrUndetected
	}
	return code, nil
}

// LinguaDetector detects languages with lingua's n-gram models. Building
// the detector is deferred to the first call.
type LinguaDetector struct {
	once     sync.Once
	detector lingua.LanguageDetector
}

// NewLinguaDetector creates a lingua detector for all languages
func NewLinguaDetector() *LinguaDetector {
	return &LinguaDetector{}
}

// Name returns the detector name
func (d *LinguaDetector) Name() string {
	return "lingua"
}

// Detect returns the ISO 639-1 code of text
func (d *LinguaDetector) Detect(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrUndetected
	}

	d.once.Do(func() {
		d.detector = lingua.NewLanguageDetectorBuilder().
			FromAllLanguages().
			Build()
	})

	language, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", ErrUndetected
	}
	code := lang.Normalize(language.IsoCode639_1().String())
	if code == "" {
		return "", ErrUndetected
	}
	return code, nil
}

// detectingService replaces the detection of a service with a local detector
type detectingService struct {
	Service
	detector Detector
}

// WithDetector makes svc detect languages with detector
func WithDetector(svc Service, detector Detector) Service {
	return &detectingService{Service: svc, detector: detector}
}

func (s *detectingService) Detect(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.detector.Detect(text)
}

func (s *detectingService) Name() string {
	return fmt.Sprintf("%s (detection: %s)", s.Service.Name(), s.detector.Name())
}
