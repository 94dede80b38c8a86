// Copyright (c) 2026 vkoslar
// Recall - terminal cheat sheet for keybinds, shortcuts and commands
// This source code is licensed under the MIT license found in the LICENSE file.

// package config loads and writes the recall configuration file. Values are
// resolved through viper with the usual precedence: defaults, then the
// config file, then RECALL_* environment variables, then bound CLI flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vkoslar/recall/internal/model"
)

// fileConfig mirrors the on-disk YAML layout. Pages are a list so their
// declaration order survives decoding.
type fileConfig struct {
	Recall recallSection `mapstructure:"recall" yaml:"recall"`
	Pages  []filePage    `mapstructure:"pages" yaml:"pages"`
}

// recallSection holds the display settings shared by every page.
type recallSection struct {
	PrimaryColor   int    `mapstructure:"primary_color" yaml:"primary_color"`
	HighlightColor int    `mapstructure:"highlight_color" yaml:"highlight_color"`
	Language       string `mapstructure:"language" yaml:"language"`
}

type filePage struct {
	Name    string      `mapstructure:"name" yaml:"name"`
	Entries []fileEntry `mapstructure:"entries" yaml:"entries,omitempty"`
}

type fileEntry struct {
	ID          string   `mapstructure:"id" yaml:"id"`
	Keys        []string `mapstructure:"keys" yaml:"keys,flow"`
	Description string   `mapstructure:"description" yaml:"description,omitempty"`
}

// getConfigPath returns the full path for the configuration file.
func getConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		// System-wide configuration paths
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Recall")
		default: // Linux, macOS, etc.
			configDir = "/etc/recall"
		}
	} else {
		// User-specific configuration paths
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "recall")
	}

	return filepath.Join(configDir, "recall.yaml"), nil
}

// newViper builds the viper instance backing a Load or Watch call.
func newViper(cmd *cobra.Command, explicitFile string) (*viper.Viper, error) {
	v := viper.New()

	v.SetDefault("recall.primary_color", int(model.DefaultPrimaryColor))
	v.SetDefault("recall.highlight_color", int(model.DefaultHighlightColor))
	v.SetDefault("recall.language", model.DefaultLanguage)

	v.SetConfigName("recall")
	v.SetConfigType("yaml")

	// An explicit --config path has the highest precedence for file-based
	// configuration; a missing explicit file is an error, a missing file in
	// the search path is not.
	if explicitFile != "" {
		v.SetConfigFile(explicitFile)
	}

	if userConfigPath, err := getConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := getConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".") // Look for recall.yaml in current dir

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix("recall")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return nil, err
		}
		// --lang maps onto the config key, not a top-level "lang".
		if f := cmd.Flags().Lookup("lang"); f != nil {
			if err := v.BindPFlag("recall.language", f); err != nil {
				return nil, err
			}
		}
	}

	return v, nil
}

// Load resolves the configuration for a session. The returned Config may
// have zero pages when no config file exists yet; callers decide how to
// handle that. Pages that do exist are fully validated.
func Load(cmd *cobra.Command, explicitFile string) (model.Config, error) {
	v, err := newViper(cmd, explicitFile)
	if err != nil {
		return model.Config{}, err
	}
	cfg, err := decode(v)
	if err != nil {
		return model.Config{}, err
	}
	if len(cfg.Pages) > 0 {
		if err := cfg.Validate(); err != nil {
			return model.Config{}, err
		}
	}
	return cfg, nil
}

// decode unmarshals the viper state into the session model, checking the
// color range on the way.
func decode(v *viper.Viper) (model.Config, error) {
	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return model.Config{}, fmt.Errorf("parse configuration: %w", err)
	}
	return fc.toModel()
}

func (fc fileConfig) toModel() (model.Config, error) {
	if err := checkColor("recall.primary_color", fc.Recall.PrimaryColor); err != nil {
		return model.Config{}, err
	}
	if err := checkColor("recall.highlight_color", fc.Recall.HighlightColor); err != nil {
		return model.Config{}, err
	}

	cfg := model.Config{
		PrimaryColor:   uint8(fc.Recall.PrimaryColor),
		HighlightColor: uint8(fc.Recall.HighlightColor),
		Language:       fc.Recall.Language,
	}
	if cfg.Language == "" {
		cfg.Language = model.DefaultLanguage
	}

	for _, p := range fc.Pages {
		page := model.Page{Name: p.Name}
		for _, e := range p.Entries {
			page.Entries = append(page.Entries, model.Entry{
				ID:          e.ID,
				Keys:        append([]string(nil), e.Keys...),
				Description: e.Description,
			})
		}
		cfg.Pages = append(cfg.Pages, page)
	}

	return cfg, nil
}

// checkColor enforces the ANSI 256-color index range.
func checkColor(key string, value int) error {
	if value < 0 || value > 255 {
		return fmt.Errorf("%s: %d is not an ANSI color index (0-255)", key, value)
	}
	return nil
}
