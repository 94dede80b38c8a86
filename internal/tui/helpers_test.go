// Copyright (c) 2026 vkoslar
// Recall - terminal cheat sheet for keybinds, shortcuts and commands
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"testing"

	"github.com/vkoslar/recall/internal/model"
)

func TestFilterEntries(t *testing.T) {
	entries := []model.Entry{
		{ID: "history", Keys: []string{"Ctrl", "R"}, Description: "Search command history"},
		{ID: "clear", Keys: []string{"Ctrl", "L"}, Description: "Clear the screen"},
		{ID: "quit", Keys: []string{"q"}, Description: "Close the shell"},
	}

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"history", "clear", "quit"}},
		{"  ", []string{"history", "clear", "quit"}},
		{"HIST", []string{"history"}},
		{"ctrl+l", []string{"clear"}},
		{"the", []string{"clear", "quit"}},
		{"screen", []string{"clear"}},
		{"zzz", nil},
	}

	for _, tt := range tests {
		got := filterEntries(entries, tt.query)
		if len(got) != len(tt.want) {
			t.Errorf("query %q: got %d entries, want %d", tt.query, len(got), len(tt.want))
			continue
		}
		for i, e := range got {
			if e.ID != tt.want[i] {
				t.Errorf("query %q: entry %d is %q, want %q", tt.query, i, e.ID, tt.want[i])
			}
		}
	}
}
