// package tui provides the terminal user interface for recall.
// This file defines the lipgloss styles shared by the frame, the entry
// table and the legend. The two configured colors drive almost all of
// them, so the set is rebuilt whenever the configuration changes.
package tui // import "github.com/vkoslar/recall/internal/tui"

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// Fixed chrome colors for the few things the configuration does not cover.
const (
	colorSubtle = lipgloss.Color("240") // Muted gray for hints
	colorWhite  = lipgloss.Color("231")
)

// ansiColor maps a configured color code to its ANSI 256-color table
// entry. Every byte value is a valid index, so this never fails.
func ansiColor(code uint8) lipgloss.Color {
	return lipgloss.Color(strconv.Itoa(int(code)))
}

// styleSet holds the concrete styles derived from one configuration.
type styleSet struct {
	// Frame
	border lipgloss.Style // box lines
	title  lipgloss.Style // page name embedded in the top border

	// Entry table
	key      lipgloss.Style // key names inside a shortcut
	plus     lipgloss.Style // the "+" between keys
	desc     lipgloss.Style // entry descriptions
	selected lipgloss.Style // description of the selected row
	marker   lipgloss.Style // selection gutter

	// Legend
	legendKey   lipgloss.Style // key tokens, e.g. <q>
	legendLabel lipgloss.Style
	counter     lipgloss.Style // [page N of M]

	// Messages
	hint   lipgloss.Style // empty page, overflow indicator
	status lipgloss.Style // transient status bar
}

// newStyleSet resolves the configured primary and highlight colors into
// the styles used by every render.
func newStyleSet(primary, highlight uint8) styleSet {
	p := ansiColor(primary)
	h := ansiColor(highlight)
	return styleSet{
		border: lipgloss.NewStyle().Foreground(p),
		title:  lipgloss.NewStyle().Foreground(p).Bold(true),

		key:      lipgloss.NewStyle().Foreground(h).Bold(true),
		plus:     lipgloss.NewStyle().Foreground(p),
		desc:     lipgloss.NewStyle().Foreground(p),
		selected: lipgloss.NewStyle().Foreground(h).Bold(true),
		marker:   lipgloss.NewStyle().Foreground(h),

		legendKey:   lipgloss.NewStyle().Foreground(h).Bold(true),
		legendLabel: lipgloss.NewStyle().Foreground(p),
		counter:     lipgloss.NewStyle().Foreground(h).Bold(true),

		hint:   lipgloss.NewStyle().Foreground(colorSubtle).Italic(true),
		status: lipgloss.NewStyle().Padding(0, 1).Foreground(colorWhite).Background(h),
	}
}
