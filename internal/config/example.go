// Copyright (c) 2026 vkoslar
// Recall - terminal cheat sheet for keybinds, shortcuts and commands
// This source code is licensed under the MIT license found in the LICENSE file.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// ErrConfigExists is returned by WriteExampleConfig when the target file is
// already present; init never overwrites an existing configuration.
var ErrConfigExists = errors.New("configuration file already exists")

// exampleConfig is what `recall init` writes: the default colors plus two
// starter pages the user is expected to edit.
func exampleConfig() fileConfig {
	return fileConfig{
		Recall: recallSection{
			PrimaryColor:   15,
			HighlightColor: 14,
			Language:       "en",
		},
		Pages: []filePage{
			{Name: "general", Entries: []fileEntry{
				{ID: "open", Keys: []string{"Ctrl", "Alt", "R"}, Description: "Opens recall"},
				{ID: "close", Keys: []string{"q"}, Description: "Closes recall"},
			}},
			{Name: "bash", Entries: []fileEntry{
				{ID: "history", Keys: []string{"Ctrl", "R"}, Description: "Search command history"},
				{ID: "clear", Keys: []string{"Ctrl", "L"}, Description: "Clear the screen"},
			}},
		},
	}
}

// exampleComments are attached to the marshaled example so the generated
// file documents itself.
func exampleComments() yaml.CommentMap {
	return yaml.CommentMap{
		"$.recall": []*yaml.Comment{
			yaml.HeadComment(" Display settings shared by every page."),
		},
		"$.recall.primary_color": []*yaml.Comment{
			yaml.HeadComment(" ANSI 256-color index for borders, descriptions and separators."),
		},
		"$.recall.highlight_color": []*yaml.Comment{
			yaml.HeadComment(" ANSI 256-color index for keys, the page counter and the selection."),
		},
		"$.recall.language": []*yaml.Comment{
			yaml.HeadComment(" Interface language: en, de."),
		},
		"$.pages": []*yaml.Comment{
			yaml.HeadComment(
				" Pages are shown in declaration order; left/right cycles through them.",
				" Entry ids identify an entry within its page and are never displayed.",
			),
		},
	}
}

// WriteExampleConfig writes the annotated example configuration and returns
// the path it wrote. With an explicit path the file goes there; otherwise
// to the user (or, with system set, the system-wide) config location. It
// refuses to touch an existing file.
func WriteExampleConfig(explicitFile string, system bool) (string, error) {
	path := explicitFile
	if path == "" {
		var err error
		path, err = getConfigPath(system)
		if err != nil {
			return "", err
		}
	}

	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%w: %s", ErrConfigExists, path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}

	cfg := exampleConfig()
	data, err := yaml.MarshalWithOptions(&cfg, yaml.WithComment(exampleComments()))
	if err != nil {
		return "", err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}

	return path, nil
}
