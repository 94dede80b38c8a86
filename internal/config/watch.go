// Copyright (c) 2026 vkoslar
// Recall - terminal cheat sheet for keybinds, shortcuts and commands
// This source code is licensed under the MIT license found in the LICENSE file.

package config

import (
	"errors"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/vkoslar/recall/internal/logging"
	"github.com/vkoslar/recall/internal/model"
)

// ErrNothingToWatch is returned by Watch when no configuration file was
// resolved, so there is nothing on disk to observe.
var ErrNothingToWatch = errors.New("no configuration file to watch")

// Watch re-reads the configuration whenever the resolved file changes and
// hands the outcome to fn. A change that fails to parse or validate is
// reported with a non-nil error and must not replace the running
// configuration; fn is called from the watcher goroutine.
func Watch(cmd *cobra.Command, explicitFile string, fn func(model.Config, error)) error {
	v, err := newViper(cmd, explicitFile)
	if err != nil {
		return err
	}
	file := v.ConfigFileUsed()
	if file == "" {
		return ErrNothingToWatch
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		logging.Debugf("config change: %s (%s)", e.Name, e.Op)
		cfg, err := decode(v)
		if err == nil {
			err = cfg.Validate()
		}
		fn(cfg, err)
	})
	v.WatchConfig()
	logging.Debugf("watching %s", file)

	return nil
}
