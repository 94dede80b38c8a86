// Copyright (c) 2026 vkoslar
// Recall - terminal cheat sheet for keybinds, shortcuts and commands
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/vkoslar/recall/internal/i18n"
	"github.com/vkoslar/recall/internal/model"
)

const (
	columnGap   = 2 // cells between the shortcut column and the description
	gutterWidth = 2 // selection marker column, present on every row
	ellipsis    = "…"
)

// layoutPage arranges a page's entries into display lines for the given
// viewport: one line per entry while they all fit, otherwise a window of
// entries followed by a "… N more" indicator on the last line. The window
// follows the selection so it stays visible. selected indexes entries, -1
// means none. Never panics, whatever the viewport; an empty entry list
// yields no lines.
func layoutPage(entries []model.Entry, vp viewport, selected int, st styleSet) []string {
	if vp.width <= 0 || vp.height <= 0 || len(entries) == 0 {
		return nil
	}

	rows := len(entries)
	window := vp.height
	offset := 0
	hidden := 0
	if rows > window {
		// the last line becomes the indicator
		window--
		hidden = rows - window
		if selected >= window {
			offset = selected - window + 1
			if most := rows - window; offset > most {
				offset = most
			}
		}
	}

	shortcutW := shortcutColumnWidth(entries, vp.width)

	lines := make([]string, 0, min(rows, vp.height))
	for i := offset; i < offset+window && i < rows; i++ {
		lines = append(lines, renderRow(entries[i], i == selected, shortcutW, vp.width, st))
	}
	if hidden > 0 {
		indicator := st.hint.Render(i18n.T("layout.more", hidden))
		lines = append(lines, ansi.Truncate(indicator, vp.width, ellipsis))
	}
	return lines
}

// viewport is the drawable area handed to the layout engine.
type viewport struct {
	width  int
	height int
}

// shortcutColumnWidth is the widest shortcut on the page, capped at a
// quarter of the viewport so descriptions keep most of the room.
func shortcutColumnWidth(entries []model.Entry, width int) int {
	widest := 0
	for _, e := range entries {
		if w := ansi.StringWidth(e.Shortcut()); w > widest {
			widest = w
		}
	}
	limit := width / 4
	if limit < 1 {
		limit = 1
	}
	if widest > limit {
		widest = limit
	}
	return widest
}

// renderRow renders one entry as gutter + aligned shortcut column +
// description, truncated to the viewport width.
func renderRow(e model.Entry, selected bool, shortcutW, width int, st styleSet) string {
	gutter := strings.Repeat(" ", gutterWidth)
	if selected {
		gutter = st.marker.Render("> ")
	}

	shortcut := formatKeys(e, st)
	if ansi.StringWidth(shortcut) > shortcutW {
		shortcut = ansi.Truncate(shortcut, shortcutW, ellipsis)
	}
	if w := ansi.StringWidth(shortcut); w < shortcutW {
		shortcut += strings.Repeat(" ", shortcutW-w)
	}

	desc := st.desc.Render(e.Description)
	if selected {
		desc = st.selected.Render(e.Description)
	}

	row := gutter + shortcut + strings.Repeat(" ", columnGap) + desc
	return ansi.Truncate(row, width, ellipsis)
}
