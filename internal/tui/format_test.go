// Copyright (c) 2026 vkoslar
// Recall - terminal cheat sheet for keybinds, shortcuts and commands
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"testing"

	"github.com/vkoslar/recall/internal/model"
)

func TestFormatKeysJoinsInOrder(t *testing.T) {
	st := newStyleSet(15, 14)

	e := model.Entry{ID: "switch", Keys: []string{"Ctrl", "Alt", "F2"}, Description: "Switch console"}
	if got := formatKeys(e, st); got != "Ctrl+Alt+F2" {
		t.Fatalf("formatKeys = %q, want %q", got, "Ctrl+Alt+F2")
	}

	// the order of the key list is the order on screen
	e.Keys = []string{"F2", "Alt", "Ctrl"}
	if got := formatKeys(e, st); got != "F2+Alt+Ctrl" {
		t.Fatalf("formatKeys = %q, want %q", got, "F2+Alt+Ctrl")
	}
}

func TestFormatKeysSingleKey(t *testing.T) {
	st := newStyleSet(15, 14)

	e := model.Entry{ID: "quit", Keys: []string{"q"}, Description: "Quit"}
	if got := formatKeys(e, st); got != "q" {
		t.Fatalf("formatKeys = %q, want %q (no separator for a single key)", got, "q")
	}
}

func TestFormatKeysDeterministic(t *testing.T) {
	st := newStyleSet(240, 81)

	e := model.Entry{ID: "history", Keys: []string{"Ctrl", "R"}, Description: "Search history"}
	first := formatKeys(e, st)
	for i := 0; i < 5; i++ {
		if got := formatKeys(e, st); got != first {
			t.Fatalf("formatKeys changed between calls: %q then %q", first, got)
		}
	}
}
