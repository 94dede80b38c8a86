// Copyright (c) 2026 vkoslar
// Recall - terminal cheat sheet for keybinds, shortcuts and commands
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vkoslar/recall/internal/config"
	"github.com/vkoslar/recall/internal/i18n"
)

// initCmd writes an annotated example configuration to get a new setup
// started. It never overwrites an existing file.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write an annotated example configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		system, _ := cmd.Flags().GetBool("system")
		path, err := config.WriteExampleConfig(cfgFile, system)
		if err != nil {
			return errors.New(i18n.T("init.error_write", err))
		}
		fmt.Println(i18n.T("init.created", path))
		return nil
	},
}

func init() {
	initCmd.Flags().Bool("system", false, "write to the system-wide location instead of the user one")
}
