// Package i18n holds the UI message catalog. Indonesian is the default
// locale; English is the alternative.
package i18n

import (
	"embed"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"codeberg.org/snonux/bulktrans/internal/lang"
	"codeberg.org/snonux/bulktrans/internal/logger"
)

//go:embed active.*.toml
var localeFS embed.FS

// DefaultLocale is used when no or an unknown locale is configured
const DefaultLocale = "id"

// Locales lists the locales with an embedded catalog
var Locales = []string{"id", "en"}

// Catalog renders UI messages for one locale
type Catalog struct {
	locale    string
	localizer *i18n.Localizer
}

// New builds a catalog for locale, falling back to the default locale
// for unknown locales and missing messages
func New(locale string) *Catalog {
	bundle := i18n.NewBundle(language.Indonesian)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, l := range Locales {
		file := "active." + l + ".toml"
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			logger.Warn("failed to load message file", "module", "i18n", "file", file, "error", err)
		}
	}

	if !supported(locale) {
		if locale != "" {
			logger.Warn("unsupported UI language, using default",
				"module", "i18n", "locale", locale, "default", DefaultLocale)
		}
		locale = DefaultLocale
	}

	return &Catalog{
		locale:    locale,
		localizer: i18n.NewLocalizer(bundle, locale, DefaultLocale),
	}
}

// Locale returns the catalog's locale
func (c *Catalog) Locale() string {
	return c.locale
}

// T renders the message id. Unknown ids render as the id itself.
func (c *Catalog) T(id string) string {
	return c.Tf(id, nil)
}

// Tf renders the message id with template data
func (c *Catalog) Tf(id string, data map[string]any) string {
	if id == "" {
		return ""
	}

	msg, err := c.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		logger.Debug("localize failed", "module", "i18n", "id", id, "locale", c.locale, "error", err)
		return id
	}
	return msg
}

// LanguageLabel returns the panel label of a target language. Codes that
// are not targets get their English display name.
func (c *Catalog) LanguageLabel(code string) string {
	code = lang.Normalize(code)
	for _, t := range lang.Targets {
		if t.Code == code {
			return c.T(t.MessageID)
		}
	}
	return lang.DisplayName(code)
}

func supported(locale string) bool {
	for _, l := range Locales {
		if l == locale {
			return true
		}
	}
	return false
}
