// Package i18n localizes console messages from embedded locale files.
package i18n

import (
	"embed"
	"encoding/json"
	"log/slog"
	"strings"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/contactbook/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Translator resolves message keys for one language.
type Translator struct {
	bundle    *goi18n.Bundle
	localizer *goi18n.Localizer
	languages []string
}

// New loads every embedded locale and selects lang, falling back to English.
func New(lang string) *Translator {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	tr := &Translator{bundle: bundle}

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
		tr.SetLanguage(lang)
		return tr
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".json")
		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}
		tr.languages = append(tr.languages, langCode)
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, langCode,
		)
	}

	tr.SetLanguage(lang)
	return tr
}

// SetLanguage switches the active language.
func (t *Translator) SetLanguage(lang string) {
	if lang == "" {
		lang = config.DefaultLanguage
	}
	t.localizer = goi18n.NewLocalizer(t.bundle, lang)
}

// Languages returns the language codes that loaded successfully.
func (t *Translator) Languages() []string {
	return t.languages
}

// T translates key with optional template data. Unknown keys are returned as is.
func (t *Translator) T(key string, data map[string]any) string {
	if t == nil || t.localizer == nil {
		return key
	}
	msg, err := t.localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return key
	}
	return msg
}

// ParseLanguage validates a user-supplied language tag and returns its
// base ISO 639-1 code.
func ParseLanguage(raw string) (string, error) {
	tag, err := language.Parse(raw)
	if err != nil {
		return "", err
	}
	base, _ := tag.Base()
	return base.String(), nil
}
