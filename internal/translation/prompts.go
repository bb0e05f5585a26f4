package translation

import (
	"fmt"
	"strings"
	"unicode"

	"codeberg.org/snonux/bulktrans/internal/lang"
)

const detectSystemPrompt = "You identify languages. Respond with only the two-letter ISO 639-1 code of the language the user's text is written in, nothing else."

// translateSystemPrompt asks an LLM for a bare translation into target
func translateSystemPrompt(target string) string {
	return fmt.Sprintf("You translate YouTube video titles and descriptions. Translate the user's text into %s (ISO 639-1 code %q). Keep line breaks, URLs, hashtags and emoji unchanged. Respond with only the translation, nothing else.",
		lang.DisplayName(target), target)
}

// parseDetectedCode extracts a language code from an LLM reply such as
// "en", "EN." or "`de`"
func parseDetectedCode(reply string) (string, error) {
	fields := strings.FieldsFunc(reply, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '-' && r != '_'
	})
	if len(fields) == 0 {
		return "", ErrUndetected
	}

	base := strings.FieldsFunc(fields[0], func(r rune) bool { return r == '-' || r == '_' })
	if len(base) == 0 || len(base[0]) < 2 || len(base[0]) > 3 {
		return "", fmt.Errorf("%w: unexpected reply %q", ErrUndetected, reply)
	}

	code := lang.Normalize(fields[0])
	if code == "" {
		return "", fmt.Errorf("%w: unexpected reply %q", ErrUndetected, reply)
	}
	return code, nil
}
