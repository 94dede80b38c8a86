// Copyright (c) 2026 vkoslar
// Recall - terminal cheat sheet for keybinds, shortcuts and commands
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"

	"github.com/vkoslar/recall/internal/model"
)

// formatKeys renders the styled shortcut cell for an entry: each key name
// in the highlight style, joined by a primary-colored "+" that reads
// "press together". The joining order is the configured press order, and
// identical entries always format identically.
func formatKeys(e model.Entry, st styleSet) string {
	parts := make([]string, len(e.Keys))
	for i, k := range e.Keys {
		parts[i] = st.key.Render(k)
	}
	return strings.Join(parts, st.plus.Render("+"))
}
