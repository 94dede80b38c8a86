// Copyright (c) 2026 vkoslar
// Recall - terminal cheat sheet for keybinds, shortcuts and commands
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vkoslar/recall/internal/i18n"
)

// executeCommand runs a fresh root command with the given arguments and
// captures its stdout. The command error, if any, is returned for the test
// to inspect.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfgFile = "" // reset the global config file flag between runs

	oldOut := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	defer func() {
		os.Stdout = oldOut
	}()

	// Create a new root command for each test to ensure isolation
	root := newRootCmd()
	root.SetArgs(args)
	execErr := root.Execute()

	w.Close()
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read command output: %v", err)
	}

	return buf.String(), execErr
}

// writeTestConfig puts a small valid configuration into dir.
func writeTestConfig(t *testing.T, dir string) string {
	t.Helper()
	content := `recall:
  primary_color: 15
  highlight_color: 14
  language: en
pages:
  - name: general
    entries:
      - id: open
        keys: [Ctrl, Alt, R]
        description: Opens recall
`
	path := filepath.Join(dir, "recall.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestInitCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recall.yaml")

	output, err := executeCommand(t, "init", "--config", path)
	if err != nil {
		t.Fatalf("init failed: %v", err)
	}

	t.Run("should print the created path", func(t *testing.T) {
		if !strings.Contains(output, "Created example configuration at") || !strings.Contains(output, path) {
			t.Errorf("Expected output to name the created file, but it didn't. Output:\n%s", output)
		}
	})

	t.Run("should write the file", func(t *testing.T) {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("Expected the config file to exist: %v", err)
		}
	})

	t.Run("should refuse a second run", func(t *testing.T) {
		_, err := executeCommand(t, "init", "--config", path)
		if err == nil {
			t.Fatal("Expected the second init to fail, but it succeeded")
		}
		if !strings.Contains(err.Error(), "already exists") {
			t.Errorf("Expected the error to mention the existing file, got: %v", err)
		}
	})
}

func TestRootCmdHintsAtInitWithoutConfig(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "xdg"))
	oldWd, errWd := os.Getwd()
	if errWd != nil {
		t.Fatalf("getwd: %v", errWd)
	}
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWd) })

	_, err := executeCommand(t)
	if err == nil {
		t.Fatal("Expected an error without any configuration, but got none")
	}
	if !strings.Contains(err.Error(), "recall init") {
		t.Errorf("Expected the error to point at 'recall init', got: %v", err)
	}
}

func TestRootCmdRequiresTerminal(t *testing.T) {
	path := writeTestConfig(t, t.TempDir())

	// Stdout is a pipe during the test, so the viewer must refuse to start.
	_, err := executeCommand(t, "--config", path)
	if err == nil {
		t.Fatal("Expected an error without a terminal, but got none")
	}
	if !strings.Contains(err.Error(), "interactive terminal") {
		t.Errorf("Expected the error to mention the missing terminal, got: %v", err)
	}
}

func TestRootCmdSpeaksConfiguredLanguage(t *testing.T) {
	t.Cleanup(func() { i18n.SetLang("en") })
	path := writeTestConfig(t, t.TempDir())

	_, err := executeCommand(t, "--config", path, "--lang", "de")
	if err == nil {
		t.Fatal("Expected an error without a terminal, but got none")
	}
	if !strings.Contains(err.Error(), "interaktives Terminal") {
		t.Errorf("Expected the German terminal error, got: %v", err)
	}
}

func TestRootCmdReportsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	content := `recall:
  primary_color: 300
pages:
  - name: general
    entries:
      - id: open
        keys: [q]
`
	path := filepath.Join(dir, "recall.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	_, err := executeCommand(t, "--config", path)
	if err == nil {
		t.Fatal("Expected an error for an out-of-range color, but got none")
	}
	if !strings.Contains(err.Error(), "could not load configuration") || !strings.Contains(err.Error(), "primary_color") {
		t.Errorf("Expected the load error to name the bad color, got: %v", err)
	}
}

func TestVersionFlag(t *testing.T) {
	output, err := executeCommand(t, "--version")
	if err != nil {
		t.Fatalf("--version failed: %v", err)
	}
	if !strings.Contains(output, "recall version dev") {
		t.Errorf("Expected the default version string, got:\n%s", output)
	}
}

func TestDebugCmd(t *testing.T) {
	path := writeTestConfig(t, t.TempDir())

	output, err := executeCommand(t, "debug", "--config", path)
	if err != nil {
		t.Fatalf("debug failed: %v", err)
	}

	t.Run("should name the config file", func(t *testing.T) {
		if !strings.Contains(output, "Config file used: "+path) {
			t.Errorf("Expected the config file path in the output. Output:\n%s", output)
		}
	})

	t.Run("should dump the merged settings", func(t *testing.T) {
		if !strings.Contains(output, `"recall"`) || !strings.Contains(output, `"primary_color"`) {
			t.Errorf("Expected the settings dump in the output. Output:\n%s", output)
		}
	})

	t.Run("should list the embedded locales", func(t *testing.T) {
		if !strings.Contains(output, "en: English") || !strings.Contains(output, "de: Deutsch") {
			t.Errorf("Expected the locale list in the output. Output:\n%s", output)
		}
	})
}
