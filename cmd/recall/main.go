// Copyright (c) 2026 vkoslar
// Recall - terminal cheat sheet for keybinds, shortcuts and commands
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface for recall using the Cobra
// library. It defines the root command, which opens the viewer, and the
// init and debug subcommands.

package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vkoslar/recall/buildvars"
	"github.com/vkoslar/recall/internal/config"
	"github.com/vkoslar/recall/internal/i18n"
	"github.com/vkoslar/recall/internal/logging"
	"github.com/vkoslar/recall/internal/model"
	"github.com/vkoslar/recall/internal/tui"
)

var version = "dev" // this will be set by the linker
var cfgFile string

// main is the entry point of the application.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		// The error is already printed by Cobra on failure.
		os.Exit(1)
	}
}

// newRootCmd creates and configures a new root cobra command. This function
// is used to create the main application command as well as fresh instances
// for isolated testing.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recall",
		Short: "Interactive cheat sheet for your keybinds, shortcuts and commands",
		Long: `Recall keeps the keybinds, shortcuts and commands you never quite
remember one keystroke away. Pages of entries come from a small YAML
file; recall renders them full-screen so you can flip through pages,
filter entries and copy shortcuts without leaving the terminal.

Running without a subcommand opens the viewer.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Resolve the language early so the subcommands and any error
			// output speak the configured language.
			if cfg, err := config.Load(cmd, cfgFile); err == nil {
				i18n.Init(cfg.Language)
			} else {
				i18n.Init(model.DefaultLanguage)
			}
		},
		RunE: runViewer,
	}

	cmd.Version = buildvars.VersionOrDefault(version)

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is recall.yaml in the user config directory)")
	cmd.PersistentFlags().String("lang", "", `interface language ("en", "de")`)
	cmd.Flags().Bool("watch", false, "apply configuration changes while the viewer is running")

	cmd.AddCommand(initCmd)
	cmd.AddCommand(debugCmd)

	return cmd
}

// runViewer loads the configuration and hands it to the interactive viewer.
func runViewer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd, cfgFile)
	if err != nil {
		return errors.New(i18n.T("cli.error_load", err))
	}
	if len(cfg.Pages) == 0 {
		return errors.New(i18n.T("cli.hint_init"))
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New(i18n.T("cli.tty_required"))
	}

	var reloads chan tui.ReloadEvent
	if watch, _ := cmd.Flags().GetBool("watch"); watch {
		reloads = make(chan tui.ReloadEvent, 1)
		err := config.Watch(cmd, cfgFile, func(c model.Config, err error) {
			reloads <- tui.ReloadEvent{Config: c, Err: err}
		})
		if errors.Is(err, config.ErrNothingToWatch) {
			logging.Warnf("%v", err)
			reloads = nil
		} else if err != nil {
			return err
		}
	}

	return tui.Run(cfg, reloads)
}
