// Copyright (c) 2026 vkoslar
// Recall - terminal cheat sheet for keybinds, shortcuts and commands
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vkoslar/recall/internal/config"
	"github.com/vkoslar/recall/internal/i18n"
	"github.com/vkoslar/recall/internal/logging"
)

var debugCmd = &cobra.Command{
	Use:   "debug",
	Short: "Dump debug information about config, env, flags and locales",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("--- RECALL DEBUG ---")

		// Config file used and the merged settings
		file, settings, err := config.Describe(cmd, cfgFile)
		if err != nil {
			return err
		}
		fmt.Printf("Config file used: %s\n", file)

		b, err := json.MarshalIndent(settings, "", "  ")
		if err != nil {
			logging.Errorf("could not marshal settings: %v", err)
		} else {
			fmt.Println("-- settings --")
			fmt.Println(string(b))
		}

		// Flags
		fmt.Println("-- flags --")
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			fmt.Printf("%s = %s\n", f.Name, f.Value.String())
		})

		// Environment variables of interest
		fmt.Println("-- environment (RECALL_*) --")
		for _, e := range os.Environ() {
			if strings.HasPrefix(e, "RECALL_") {
				fmt.Println(e)
			}
		}

		// Embedded locales, the active one marked
		fmt.Println("-- locales --")
		locales := i18n.GetAvailableLocales()
		codes := make([]string, 0, len(locales))
		for code := range locales {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		for _, code := range codes {
			marker := " "
			if code == i18n.GetLang() {
				marker = "*"
			}
			fmt.Printf("%s %s: %s\n", marker, code, locales[code])
		}

		fmt.Println("--- END DEBUG ---")
		return nil
	},
}
