package report

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-lifeclock/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Localizer resolves report labels for one language, falling back to English
// for missing keys.
type Localizer struct {
	bundle *i18n.Bundle
	loc    *i18n.Localizer
	tag    language.Tag
}

// NewLocalizer loads the embedded locale files and builds a localizer for
// lang (ISO 639-1). Unknown languages fall back to English rather than fail:
// the report must always render.
func NewLocalizer(lang string) (*Localizer, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrLocalesAccess, err)
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

		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			return nil, fmt.Errorf("%s: %w", config.ErrLocaleLoad, err)
		}
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyFile, name,
		)
	}

	if lang == "" {
		lang = config.DefaultLanguage
	}
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}

	return &Localizer{
		bundle: bundle,
		loc:    i18n.NewLocalizer(bundle, lang, config.DefaultLanguage),
		tag:    tag,
	}, nil
}

// Get translates a key safely, returning the key itself when no translation
// exists so a missing entry is visible instead of silent.
func (l *Localizer) Get(key string) string {
	msg, err := l.loc.Localize(&i18n.LocalizeConfig{MessageID: key})
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

// GetData translates a key with template data.
func (l *Localizer) GetData(key string, data map[string]interface{}) string {
	msg, err := l.loc.Localize(&i18n.LocalizeConfig{
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

// Tag exposes the resolved language tag for number formatting.
func (l *Localizer) Tag() language.Tag {
	return l.tag
}
