// Copyright (c) 2026 vkoslar
// Recall - terminal cheat sheet for keybinds, shortcuts and commands
// This source code is licensed under the MIT license found in the LICENSE file.

package config

import "github.com/spf13/cobra"

// Describe reports where the configuration came from: the resolved file
// (empty when none was found) and the effective settings after defaults,
// file, environment and flags have been merged.
func Describe(cmd *cobra.Command, explicitFile string) (string, map[string]interface{}, error) {
	v, err := newViper(cmd, explicitFile)
	if err != nil {
		return "", nil, err
	}
	return v.ConfigFileUsed(), v.AllSettings(), nil
}
