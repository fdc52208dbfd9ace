// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/mtakeda/stackup/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from an optional TOML file in the stack
// root. A missing file is not an error: the hard-coded defaults describe
// the stock stack layout, and the file only overrides them.
type Loader struct {
	baseDir string
}

// NewLoader creates a new Loader for the stack rooted at baseDir.
func NewLoader(baseDir string) *Loader {
	return &Loader{baseDir: baseDir}
}

// fileConfig mirrors the TOML file layout.
type fileConfig struct {
	Backend  childSection `toml:"backend"`
	Frontend childSection `toml:"frontend"`
	Log      logSection   `toml:"log"`
}

type childSection struct {
	Dir     string `toml:"dir"`
	Command string `toml:"command"`
}

type logSection struct {
	Level string `toml:"level"`
}

// Load returns the merged configuration (defaults <- file).
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	path := filepath.Join(l.baseDir, domain.ConfigFileName)
	data, err := os.ReadFile(path) //nolint:gosec // Path is derived from the stack root
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return base, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var file fileConfig
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	mergeChild(&base.Backend, file.Backend)
	mergeChild(&base.Frontend, file.Frontend)
	if file.Log.Level != "" {
		base.Log.Level = file.Log.Level
	}

	return base, nil
}

// mergeChild overrides non-empty fields from the file section.
func mergeChild(dst *domain.ChildConfig, src childSection) {
	if src.Dir != "" {
		dst.Dir = src.Dir
	}
	if src.Command != "" {
		dst.Command = src.Command
	}
}
