// Package lang holds the fixed target language list, the right-to-left
// language set and normalisation of language codes returned by detectors.
package lang

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Target is one of the languages every run translates into.
type Target struct {
	Code      string // ISO 639-1 code, e.g. "ar"
	MessageID string // i18n message ID of the panel label
}

// Targets lists the target languages in declaration order. The order drives
// progress increments, panel order and export row order.
var Targets = []Target{
	{Code: "ar", MessageID: "LangArabic"},
	{Code: "nl", MessageID: "LangDutch"},
	{Code: "en", MessageID: "LangEnglish"},
	{Code: "id", MessageID: "LangIndonesian"},
	{Code: "it", MessageID: "LangItalian"},
	{Code: "ja", MessageID: "LangJapanese"},
	{Code: "de", MessageID: "LangGerman"},
	{Code: "fr", MessageID: "LangFrench"},
	{Code: "ru", MessageID: "LangRussian"},
	{Code: "es", MessageID: "LangSpanish"},
}

var rtl = map[string]bool{
	"ar": true,
	"fa": true,
	"he": true,
	"ps": true,
	"ur": true,
	"yi": true,
}

// Codes returns the target codes in declaration order.
func Codes() []string {
	codes := make([]string, len(Targets))
	for i, t := range Targets {
		codes[i] = t.Code
	}
	return codes
}

// IsTarget reports whether code is one of the fixed targets.
func IsTarget(code string) bool {
	code = Normalize(code)
	for _, t := range Targets {
		if t.Code == code {
			return true
		}
	}
	return false
}

// IsRTL reports whether code is written right-to-left.
func IsRTL(code string) bool {
	return rtl[Normalize(code)]
}

// Normalize reduces a language code to its lower-case base language, so
// "EN", "pt_BR" and "zh-CN" become "en", "pt" and "zh". Codes x/text cannot
// parse are only trimmed and lower-cased.
func Normalize(code string) string {
	code = strings.ReplaceAll(strings.TrimSpace(code), "_", "-")
	if code == "" {
		return ""
	}
	switch strings.ToLower(code) {
	case "und", "mul", "mis", "zxx":
		return ""
	}
	tag, err := language.Parse(code)
	if err != nil {
		return strings.ToLower(code)
	}
	// Base guesses a language for tags without one, e.g. "und" or "und-JP"
	base, conf := tag.Base()
	if conf < language.High {
		return ""
	}
	return base.String()
}

// DisplayName returns the English name of a language code, e.g. "Arabic".
// Unknown codes are returned unchanged.
func DisplayName(code string) string {
	tag, err := language.Parse(Normalize(code))
	if err != nil {
		return code
	}
	if name := display.English.Languages().Name(tag); name != "" {
		return name
	}
	return code
}
