// Package app provides the dependency injection container for the application.
package app

import (
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/mtakeda/stackup/internal/domain"
	"github.com/mtakeda/stackup/internal/infra/config"
	"github.com/mtakeda/stackup/internal/infra/logging"
	"github.com/mtakeda/stackup/internal/infra/spawn"
	"github.com/mtakeda/stackup/internal/infra/tmux"
	"github.com/mtakeda/stackup/internal/usecase"
)

// Config holds the application configuration paths.
type Config struct {
	BaseDir string // Stack root (the launcher's own directory)
	LogsDir string // Child log directory used in headless mode
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Spawner      domain.Spawner
	ConfigLoader domain.ConfigLoader
	Clock        domain.Clock

	// Pointer fields
	Logger *slog.Logger

	// Configuration
	Config Config

	// Terminal reports whether children run in tmux sessions (interactive
	// run with tmux available) rather than detached with log files.
	Terminal bool
}

// New creates a new Container for the stack rooted at baseDir.
func New(baseDir string) (*Container, error) {
	cfg := Config{
		BaseDir: baseDir,
		LogsDir: domain.LogsDir(baseDir),
	}

	configLoader := config.NewLoader(baseDir)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, err
	}

	logger := logging.New(os.Stderr, logging.ParseLevel(appConfig.Log.Level))

	clock := domain.RealClock{}

	// Interactive runs get one tmux session per child so the user can
	// watch each child's output; headless runs fall back to detached
	// processes with per-child log files.
	terminal := tmux.Available() && term.IsTerminal(int(os.Stdout.Fd()))

	var spawner domain.Spawner
	if terminal {
		spawner = tmux.NewClient(clock)
	} else {
		spawner = spawn.New(cfg.LogsDir)
	}

	return &Container{
		Spawner:      spawner,
		ConfigLoader: configLoader,
		Clock:        clock,
		Logger:       logger,
		Config:       cfg,
		Terminal:     terminal,
	}, nil
}

// LaunchStackUseCase creates a LaunchStack use case.
func (c *Container) LaunchStackUseCase() *usecase.LaunchStack {
	return usecase.NewLaunchStack(c.Spawner, c.ConfigLoader, c.Logger)
}
