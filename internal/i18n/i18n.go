// Copyright (c) 2026 vkoslar
// Recall - terminal cheat sheet for keybinds, shortcuts and commands
// This source code is licensed under the MIT license found in the LICENSE file.

// package i18n provides internationalization support for recall. It uses
// the go-i18n library to load translations embedded in the binary, so the
// interface can be displayed in multiple languages without external files.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// localeFS embeds the YAML translation files from the 'locales' directory
// into the application binary.
//
//go:embed locales/*.yaml
var localeFS embed.FS

// bundle stores all the loaded translation messages from the locale files.
var bundle *i18n.Bundle

// localizer is used to translate messages into the active language.
var localizer *i18n.Localizer

// current is the language code the localizer was initialized with.
var current string

// Init initializes the i18n bundle and sets up the localizer for a specific
// language. It parses all embedded YAML files from the 'locales' directory.
func Init(lang string) {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, _ := localeFS.ReadFile("locales/" + f.Name())
		bundle.ParseMessageFileBytes(data, f.Name())
	}

	localizer = i18n.NewLocalizer(bundle, lang)
	current = lang
}

// T translates a message by its ID. Optional args are applied with
// fmt.Sprintf formatting, so translations may contain printf verbs. If the
// i18n system has not been initialized it defaults to English; if no
// translation exists for the ID, the ID itself is returned.
func T(messageID string, args ...interface{}) string {
	if localizer == nil {
		Init("en")
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		// Unknown IDs fall back to the ID itself so missing translations
		// stay visible instead of blanking out parts of the UI.
		msg = messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// GetLang returns the language code the localizer is currently using.
func GetLang() string {
	if current == "" {
		return "en"
	}
	return current
}

// SetLang changes the active language of the localizer.
func SetLang(lang string) {
	Init(lang)
}

// GetAvailableLocales returns the embedded locale codes mapped to their
// native display names (the `language_name` key of each locale file).
func GetAvailableLocales() map[string]string {
	out := make(map[string]string)
	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".yaml") {
			continue
		}
		code := strings.TrimSuffix(f.Name(), ".yaml")
		name := code
		if data, err := localeFS.ReadFile("locales/" + f.Name()); err == nil {
			var raw map[string]interface{}
			if yaml.Unmarshal(data, &raw) == nil {
				if display, ok := raw["language_name"].(string); ok && display != "" {
					name = display
				}
			}
		}
		out[code] = name
	}
	return out
}
