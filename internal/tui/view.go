// Copyright (c) 2026 vkoslar
// Recall - terminal cheat sheet for keybinds, shortcuts and commands
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/vkoslar/recall/internal/i18n"
)

const (
	borderTopLeft     = "┌"
	borderTopRight    = "┐"
	borderBottomLeft  = "└"
	borderBottomRight = "┘"
	borderHorizontal  = "─"
	borderVertical    = "│"
)

// View draws the whole frame: a bordered box with the page name embedded in
// the top edge, the entry table inside, and the navigation legend embedded
// in the bottom edge. Viewports too small for a border fall back to plain
// truncated lines, so any size down to 1x1 renders something.
func (m mainModel) View() string {
	if m.quitting || m.width <= 0 || m.height <= 0 {
		return ""
	}

	innerW := m.width - 4 // border plus one cell padding each side
	innerH := m.height - 2

	var body []string
	if m.showHelp {
		body = m.helpBody(innerW, innerH)
	} else {
		body = m.pageBody(innerW, innerH)
	}

	title := ""
	if m.page >= 0 && m.page < len(m.cfg.Pages) {
		title = m.styles.title.Render("[ " + m.cfg.Pages[m.page].Name + " ]")
	}

	return renderFrame(title, m.legend(), body, m.width, m.height, m.styles)
}

func (m mainModel) pageBody(innerW, innerH int) []string {
	reserved := 0
	if m.filtering || m.filter.Value() != "" {
		reserved++
	}
	if m.status != "" {
		reserved++
	}

	entries := m.visibleEntries()
	vp := viewport{width: innerW, height: innerH - reserved}
	body := layoutPage(entries, vp, m.selected, m.styles)

	if len(entries) == 0 && vp.height > 0 {
		hint := i18n.T("page.empty")
		if strings.TrimSpace(m.filter.Value()) != "" {
			hint = i18n.T("page.no_matches")
		}
		body = []string{centerLine(m.styles.hint.Render(hint), innerW)}
	}

	for len(body) < innerH-reserved {
		body = append(body, "")
	}
	if m.filtering || m.filter.Value() != "" {
		body = append(body, ansi.Truncate(m.filter.View(), innerW, ellipsis))
	}
	if m.status != "" {
		body = append(body, alignRight(m.styles.status.Render(m.status), innerW))
	}
	return body
}

func (m mainModel) helpBody(innerW, innerH int) []string {
	body := []string{
		centerLine(m.styles.title.Render(i18n.T("help.title")), innerW),
		"",
	}
	for _, line := range strings.Split(m.help.View(&m.keys), "\n") {
		body = append(body, ansi.Truncate(line, innerW, ellipsis))
	}
	if len(body) > innerH {
		body = body[:innerH]
	}
	return body
}

// legend is the bottom-edge text: the core navigation keys and the page
// counter.
func (m mainModel) legend() string {
	st := m.styles
	parts := []string{
		st.legendKey.Render("<←>") + " " + st.legendLabel.Render(i18n.T("legend.previous")),
		st.legendKey.Render("<→>") + " " + st.legendLabel.Render(i18n.T("legend.next")),
		st.legendKey.Render("<q>") + " " + st.legendLabel.Render(i18n.T("legend.quit")),
	}
	legend := strings.Join(parts, "  ")
	if n := len(m.cfg.Pages); n > 0 {
		counter := fmt.Sprintf("[%s]", i18n.T("legend.page_counter", m.page+1, n))
		legend += "  " + st.counter.Render(counter)
	}
	return legend
}

// renderFrame boxes the body lines with title and legend embedded in the
// horizontal edges. Too-small viewports degrade to plain rows.
func renderFrame(title, legend string, body []string, width, height int, st styleSet) string {
	if width < 5 || height < 3 {
		rows := make([]string, 0, height)
		for _, line := range body {
			if len(rows) >= height {
				break
			}
			rows = append(rows, ansi.Truncate(line, width, ellipsis))
		}
		if len(rows) == 0 {
			rows = append(rows, "")
		}
		return strings.Join(rows, "\n")
	}

	innerW := width - 2

	var b strings.Builder
	b.WriteString(embedInBorder(borderTopLeft, title, borderTopRight, innerW, st))
	b.WriteString("\n")

	bodyRows := height - 2
	for i := 0; i < bodyRows; i++ {
		line := ""
		if i < len(body) {
			line = body[i]
		}
		b.WriteString(st.border.Render(borderVertical))
		b.WriteString(" ")
		b.WriteString(padLine(line, width-4))
		b.WriteString(" ")
		b.WriteString(st.border.Render(borderVertical))
		b.WriteString("\n")
	}

	b.WriteString(embedInBorder(borderBottomLeft, legend, borderBottomRight, innerW, st))
	return b.String()
}

// embedInBorder builds a horizontal edge of innerW cells with content
// centered in it, like "┌──[ general ]──┐".
func embedInBorder(left, content, right string, innerW int, st styleSet) string {
	if w := ansi.StringWidth(content); w > innerW-2 {
		content = ansi.Truncate(content, innerW-2, ellipsis)
	}
	contentW := ansi.StringWidth(content)

	dashes := innerW - contentW
	if content != "" {
		dashes -= 2 // breathing room around the content
	}
	leftDashes := dashes / 2
	rightDashes := dashes - leftDashes

	var b strings.Builder
	b.WriteString(st.border.Render(left + strings.Repeat(borderHorizontal, leftDashes)))
	if content != "" {
		b.WriteString(" ")
		b.WriteString(content)
		b.WriteString(" ")
	}
	b.WriteString(st.border.Render(strings.Repeat(borderHorizontal, rightDashes) + right))
	return b.String()
}

// padLine truncates or pads a line to exactly width cells.
func padLine(line string, width int) string {
	w := ansi.StringWidth(line)
	if w > width {
		return ansi.Truncate(line, width, ellipsis)
	}
	return line + strings.Repeat(" ", width-w)
}

func centerLine(line string, width int) string {
	w := ansi.StringWidth(line)
	if w >= width {
		return ansi.Truncate(line, width, ellipsis)
	}
	return strings.Repeat(" ", (width-w)/2) + line
}

func alignRight(line string, width int) string {
	w := ansi.StringWidth(line)
	if w >= width {
		return ansi.Truncate(line, width, ellipsis)
	}
	return strings.Repeat(" ", width-w) + line
}
