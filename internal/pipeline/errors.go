package pipeline

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when the title is empty or whitespace only
var ErrEmptyInput = errors.New("title is empty")

// DetectionError means the input language could not be determined. It
// aborts the run.
type DetectionError struct {
	Err error
}

func (e *DetectionError) Error() string {
	return fmt.Sprintf("language detection failed: %v", e.Err)
}

func (e *DetectionError) Unwrap() error {
	return e.Err
}

// TranslationError is a failure of one target language. It never aborts
// the run.
type TranslationError struct {
	Language string
	Err      error
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("translation to %s failed: %v", e.Language, e.Err)
}

func (e *TranslationError) Unwrap() error {
	return e.Err
}
