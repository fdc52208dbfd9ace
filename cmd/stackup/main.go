// Package main is the entry point for the stackup CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mtakeda/stackup/internal/app"
	"github.com/mtakeda/stackup/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	baseDir, err := launcherDir()
	if err != nil {
		return fmt.Errorf("failed to resolve launcher directory: %w", err)
	}

	container, err := app.New(baseDir)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}

// launcherDir returns the directory the launcher itself lives in. Child
// directories are resolved relative to it, not to the caller's cwd, so
// stackup behaves the same from wherever it is invoked. Falls back to
// the cwd when the executable path cannot be determined.
func launcherDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return os.Getwd()
	}
	if resolved, rErr := filepath.EvalSymlinks(exe); rErr == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}
