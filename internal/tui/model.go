// Copyright (c) 2026 vkoslar
// Recall - terminal cheat sheet for keybinds, shortcuts and commands
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vkoslar/recall/internal/i18n"
	"github.com/vkoslar/recall/internal/model"
)

// writeClipboard is swapped out in tests; headless CI has no clipboard.
var writeClipboard = clipboard.WriteAll

// configReloadedMsg carries a freshly validated config picked up from disk.
type configReloadedMsg struct {
	cfg model.Config
}

// configReloadFailedMsg reports a reload that did not survive validation.
// The model keeps the config it already has.
type configReloadFailedMsg struct {
	err error
}

type mainModel struct {
	cfg    model.Config
	styles styleSet
	keys   keyMap

	help   help.Model
	filter textinput.Model

	page      int // index into cfg.Pages
	selected  int // index into the visible entries, -1 for none
	filtering bool
	showHelp  bool
	status    string
	quitting  bool

	width  int
	height int
}

func newMainModel(cfg model.Config) mainModel {
	st := newStyleSet(cfg.PrimaryColor, cfg.HighlightColor)

	ti := textinput.New()
	ti.Placeholder = i18n.T("filter.placeholder")
	ti.Prompt = "/"
	ti.CharLimit = 64

	h := help.New()
	h.ShowAll = true
	h.Styles.FullKey = st.legendKey
	h.Styles.FullDesc = st.legendLabel

	return mainModel{
		cfg:      cfg,
		styles:   st,
		keys:     defaultKeyMap(),
		help:     h,
		filter:   ti,
		selected: -1,
	}
}

func (m mainModel) Init() tea.Cmd {
	return nil
}

func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case configReloadedMsg:
		return m.applyConfig(msg.cfg), nil
	case configReloadFailedMsg:
		m.status = i18n.T("status.reload_failed", msg.err)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m mainModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// any keypress clears a lingering status message
	m.status = ""

	if m.filtering {
		switch msg.Type {
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEscape:
			m.filtering = false
			m.filter.Blur()
			m.filter.SetValue("")
			m.selected = -1
			return m, nil
		case tea.KeyEnter:
			m.filtering = false
			m.filter.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.clampSelection()
		return m, cmd
	}

	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Clear):
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextPage):
		if n := len(m.cfg.Pages); n > 0 {
			m.page = (m.page + 1) % n
			m.resetPageState()
		}

	case key.Matches(msg, m.keys.PrevPage):
		if n := len(m.cfg.Pages); n > 0 {
			m.page = (m.page + n - 1) % n
			m.resetPageState()
		}

	case key.Matches(msg, m.keys.JumpPage):
		s := msg.String()
		if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			if idx := int(s[0] - '1'); idx < len(m.cfg.Pages) {
				m.page = idx
				m.resetPageState()
			}
		}

	case key.Matches(msg, m.keys.NextEntry):
		if n := len(m.visibleEntries()); n > 0 {
			switch {
			case m.selected < 0:
				m.selected = 0
			case m.selected < n-1:
				m.selected++
			}
		}

	case key.Matches(msg, m.keys.PrevEntry):
		if n := len(m.visibleEntries()); n > 0 {
			switch {
			case m.selected < 0:
				m.selected = n - 1
			case m.selected > 0:
				m.selected--
			}
		}

	case key.Matches(msg, m.keys.Copy):
		entries := m.visibleEntries()
		if m.selected >= 0 && m.selected < len(entries) {
			shortcut := entries[m.selected].Shortcut()
			if err := writeClipboard(shortcut); err != nil {
				m.status = i18n.T("status.copy_failed", err)
			} else {
				m.status = i18n.T("status.copied", shortcut)
			}
		}

	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		m.selected = -1
		return m, m.filter.Focus()

	case key.Matches(msg, m.keys.Clear):
		m.selected = -1
		m.filter.SetValue("")

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	}

	return m, nil
}

// applyConfig swaps in a reloaded config. A language change rebuilds the
// whole model so every translated string picks up the new locale.
func (m mainModel) applyConfig(cfg model.Config) mainModel {
	if cfg.Language != m.cfg.Language {
		i18n.SetLang(cfg.Language)
		fresh := newMainModel(cfg)
		fresh.width = m.width
		fresh.height = m.height
		fresh.help.Width = m.width
		if fresh.page = m.page; fresh.page >= len(cfg.Pages) {
			fresh.page = 0
		}
		fresh.status = i18n.T("status.reloaded")
		return fresh
	}

	m.cfg = cfg
	m.styles = newStyleSet(cfg.PrimaryColor, cfg.HighlightColor)
	m.help.Styles.FullKey = m.styles.legendKey
	m.help.Styles.FullDesc = m.styles.legendLabel
	if m.page >= len(cfg.Pages) {
		m.page = 0
	}
	m.resetPageState()
	m.status = i18n.T("status.reloaded")
	return m
}

// resetPageState drops selection and filter when the current page changes.
func (m *mainModel) resetPageState() {
	m.selected = -1
	m.filtering = false
	m.filter.Blur()
	m.filter.SetValue("")
}

// visibleEntries is the current page's entries, narrowed by the filter.
func (m *mainModel) visibleEntries() []model.Entry {
	if m.page < 0 || m.page >= len(m.cfg.Pages) {
		return nil
	}
	return filterEntries(m.cfg.Pages[m.page].Entries, m.filter.Value())
}

// clampSelection keeps the selection inside the filtered entry list.
func (m *mainModel) clampSelection() {
	n := len(m.visibleEntries())
	if n == 0 {
		m.selected = -1
		return
	}
	if m.selected >= n {
		m.selected = n - 1
	}
}
