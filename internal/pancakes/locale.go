package pancakes

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

// Localizer produces the strings the demo shows in its window title.
type Localizer struct {
	tag       language.Tag
	localizer *i18n.Localizer
}

// NewLocalizer loads the embedded message files and prefers locale,
// falling back to English for anything it does not translate.
func NewLocalizer(locale string) (*Localizer, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(localeFS, "locales/*.toml")
	if err != nil {
		return nil, err
	}
	for _, name := range files {
		data, err := localeFS.ReadFile(name)
		if err != nil {
			return nil, err
		}
		if _, err := bundle.ParseMessageFileBytes(data, path.Base(name)); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
	}

	return &Localizer{
		tag:       tag,
		localizer: i18n.NewLocalizer(bundle, tag.String(), language.English.String()),
	}, nil
}

// Language returns the requested language.
func (l *Localizer) Language() language.Tag {
	return l.tag
}

// ScreenName localizes a screen's display name. Screens without a message
// keep their own name.
func (l *Localizer) ScreenName(messageID, fallback string) string {
	s, err := l.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:      messageID,
		DefaultMessage: &i18n.Message{ID: messageID, Other: fallback},
	})
	if err != nil {
		return fallback
	}
	return s
}

// WindowTitle is the title for a stack of depth screens topped by screen.
func (l *Localizer) WindowTitle(screen string, depth int) string {
	s, err := l.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    "WindowTitle",
		PluralCount:  depth,
		TemplateData: map[string]any{"Screen": screen, "Depth": depth},
	})
	if err != nil {
		return fmt.Sprintf("Pancakes - %s", screen)
	}
	return s
}
