// Copyright (c) 2026 vkoslar
// Recall - terminal cheat sheet for keybinds, shortcuts and commands
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vkoslar/recall/internal/model"
)

// ReloadEvent is one result from a config watcher: either a validated
// replacement config or the error that kept the old one in place.
type ReloadEvent struct {
	Config model.Config
	Err    error
}

// Run starts the interactive viewer and blocks until the user quits. The
// bubbletea runtime puts the terminal into raw mode and the alternate
// screen, and restores both on every exit path, normal quit, interrupt or
// panic alike. A non-nil reloads channel feeds live config updates into
// the running UI.
func Run(cfg model.Config, reloads <-chan ReloadEvent, opts ...tea.ProgramOption) error {
	p := tea.NewProgram(newMainModel(cfg), append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...)

	if reloads != nil {
		go func() {
			for ev := range reloads {
				if ev.Err != nil {
					p.Send(configReloadFailedMsg{err: ev.Err})
					continue
				}
				p.Send(configReloadedMsg{cfg: ev.Config})
			}
		}()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
