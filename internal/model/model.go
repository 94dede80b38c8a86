// Copyright (c) 2026 vkoslar
// Recall - terminal cheat sheet for keybinds, shortcuts and commands
// This source code is licensed under the MIT license found in the LICENSE file.

// package model defines the core data structures for a recall session:
// the validated set of pages and entries the TUI renders, plus the
// display settings that apply to all of them.
package model // import "github.com/vkoslar/recall/internal/model"

import (
	"errors"
	"fmt"
	"strings"
)

// Default ANSI color indices used when the configuration does not set them.
const (
	DefaultPrimaryColor   uint8 = 15 // borders, descriptions, separators
	DefaultHighlightColor uint8 = 14 // keys, page counter, selection
)

// DefaultLanguage is the locale used when the configuration does not set one.
const DefaultLanguage = "en"

// Entry is one documented shortcut or command: an ordered key sequence plus
// a free-text description. The ID identifies the entry within its page and
// is never displayed.
type Entry struct {
	ID          string
	Keys        []string // press order; never empty in a validated Config
	Description string   // may be empty
}

// Shortcut returns the unstyled key sequence joined with "+", e.g.
// "Ctrl+Alt+F2". This is what gets copied to the clipboard and what column
// widths are measured against.
func (e Entry) Shortcut() string {
	return strings.Join(e.Keys, "+")
}

// Page is a named, ordered group of entries. A page may be empty.
type Page struct {
	Name    string
	Entries []Entry
}

// Config is the full validated set of pages plus display settings for one
// session. It is read-only once handed to the TUI; page order is display
// order.
type Config struct {
	PrimaryColor   uint8
	HighlightColor uint8
	Language       string
	Pages          []Page
}

// Default returns a Config with default display settings and no pages.
func Default() Config {
	return Config{
		PrimaryColor:   DefaultPrimaryColor,
		HighlightColor: DefaultHighlightColor,
		Language:       DefaultLanguage,
	}
}

// Validate checks the invariants the TUI relies on: at least one page,
// unique non-empty page names, unique non-empty entry IDs per page, and a
// non-empty key sequence for every entry. The returned error names the
// offending page or entry.
func (c Config) Validate() error {
	if len(c.Pages) == 0 {
		return errors.New("no pages configured")
	}
	pageNames := make(map[string]struct{}, len(c.Pages))
	for _, p := range c.Pages {
		if p.Name == "" {
			return errors.New("page with empty name")
		}
		if _, dup := pageNames[p.Name]; dup {
			return fmt.Errorf("duplicate page name %q", p.Name)
		}
		pageNames[p.Name] = struct{}{}

		entryIDs := make(map[string]struct{}, len(p.Entries))
		for _, e := range p.Entries {
			if e.ID == "" {
				return fmt.Errorf("page %q: entry with empty id", p.Name)
			}
			if _, dup := entryIDs[e.ID]; dup {
				return fmt.Errorf("page %q: duplicate entry id %q", p.Name, e.ID)
			}
			entryIDs[e.ID] = struct{}{}

			if len(e.Keys) == 0 {
				return fmt.Errorf("page %q: entry %q has no keys", p.Name, e.ID)
			}
			for _, k := range e.Keys {
				if k == "" {
					return fmt.Errorf("page %q: entry %q has an empty key name", p.Name, e.ID)
				}
			}
		}
	}
	return nil
}
