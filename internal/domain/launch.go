// Package domain contains the core types and ports for stackup.
package domain

import "path/filepath"

// Child names. The stack always consists of exactly these two children,
// launched in this order.
const (
	ChildBackend  = "backend"
	ChildFrontend = "frontend"
)

// LaunchSpec describes one child process to start.
// Two instances exist per run, constructed from config and never mutated.
// Fields are ordered to minimize memory padding.
type LaunchSpec struct {
	Name    string // Child name (backend or frontend)
	Dir     string // Absolute working directory for the child
	Command string // Shell command to run inside Dir
}

// ResolveStack builds the two launch specs for a stack rooted at baseDir.
// Relative child directories are resolved against baseDir; absolute
// directories are kept as-is. The backend spec always comes first.
func ResolveStack(baseDir string, cfg *Config) []LaunchSpec {
	return []LaunchSpec{
		{
			Name:    ChildBackend,
			Dir:     resolveDir(baseDir, cfg.Backend.Dir),
			Command: cfg.Backend.Command,
		},
		{
			Name:    ChildFrontend,
			Dir:     resolveDir(baseDir, cfg.Frontend.Dir),
			Command: cfg.Frontend.Command,
		},
	}
}

// resolveDir resolves dir against baseDir unless dir is already absolute.
// The result is cleaned so that parent navigation ("../frontend") collapses.
func resolveDir(baseDir, dir string) string {
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Join(baseDir, dir)
}
