// Copyright (c) 2026 vkoslar
// Recall - terminal cheat sheet for keybinds, shortcuts and commands
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"

	"github.com/vkoslar/recall/internal/model"
)

// filterEntries returns the entries whose description, id or shortcut
// contains the query, case-insensitively. An empty query keeps them all.
func filterEntries(entries []model.Entry, query string) []model.Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return entries
	}
	matched := make([]model.Entry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Description), q) ||
			strings.Contains(strings.ToLower(e.ID), q) ||
			strings.Contains(strings.ToLower(e.Shortcut()), q) {
			matched = append(matched, e)
		}
	}
	return matched
}
