// Copyright (c) 2026 vkoslar
// Recall - terminal cheat sheet for keybinds, shortcuts and commands
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/vkoslar/recall/internal/i18n"
)

type keyMap struct {
	NextPage  key.Binding
	PrevPage  key.Binding
	JumpPage  key.Binding
	NextEntry key.Binding
	PrevEntry key.Binding
	Copy      key.Binding
	Filter    key.Binding
	Clear     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var _ help.KeyMap = (*keyMap)(nil)

func defaultKeyMap() keyMap {
	return keyMap{
		NextPage: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→", i18n.T("help.next_page")),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←", i18n.T("help.prev_page")),
		),
		JumpPage: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", i18n.T("help.jump")),
		),
		NextEntry: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", i18n.T("help.next_entry")),
		),
		PrevEntry: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", i18n.T("help.prev_entry")),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", i18n.T("help.copy")),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", i18n.T("help.filter")),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", i18n.T("help.clear")),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", i18n.T("help.toggle")),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", i18n.T("help.quit")),
		),
	}
}

func (k *keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevPage, k.NextPage, k.Quit}
}

func (k *keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevPage, k.NextPage, k.JumpPage},
		{k.PrevEntry, k.NextEntry, k.Copy},
		{k.Filter, k.Clear, k.Help, k.Quit},
	}
}
