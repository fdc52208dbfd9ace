// Package usecase contains application use cases.
package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/mtakeda/stackup/internal/domain"
)

// spawnTimeout bounds each session-creation call. It never waits on the
// child's own lifetime, only on the spawn returning control.
const spawnTimeout = 10 * time.Second

// LaunchStackInput contains the parameters for launching the stack.
type LaunchStackInput struct {
	BaseDir string // Stack root directory
}

// ChildResult describes one spawn attempt.
type ChildResult struct {
	Spec domain.LaunchSpec
	Err  error // nil when the child was handed off to the OS
}

// LaunchStackOutput contains the result of launching the stack.
type LaunchStackOutput struct {
	Results []ChildResult // In launch order: backend, then frontend
}

// AllFailed reports whether every spawn attempt failed.
func (o *LaunchStackOutput) AllFailed() bool {
	for _, r := range o.Results {
		if r.Err == nil {
			return false
		}
	}
	return len(o.Results) > 0
}

// LaunchStack is the use case for starting both halves of the stack.
// Spawns are strictly ordered (backend first) and fire-and-forget: a
// failed backend never blocks the frontend attempt, and no child is
// waited on after it has been handed off.
type LaunchStack struct {
	spawner      domain.Spawner
	configLoader domain.ConfigLoader
	logger       *slog.Logger
}

// NewLaunchStack creates a new LaunchStack use case.
func NewLaunchStack(spawner domain.Spawner, configLoader domain.ConfigLoader, logger *slog.Logger) *LaunchStack {
	return &LaunchStack{
		spawner:      spawner,
		configLoader: configLoader,
		logger:       logger,
	}
}

// Execute launches the stack rooted at in.BaseDir.
// It returns an error only when the configuration cannot be loaded;
// individual spawn failures are reported per child in the output so the
// caller decides how to surface them.
func (uc *LaunchStack) Execute(ctx context.Context, in LaunchStackInput) (*LaunchStackOutput, error) {
	cfg, err := uc.configLoader.Load()
	if err != nil {
		return nil, err
	}

	specs := domain.ResolveStack(in.BaseDir, cfg)

	out := &LaunchStackOutput{Results: make([]ChildResult, 0, len(specs))}
	for _, spec := range specs {
		uc.logger.Info("starting child", "name", spec.Name, "dir", spec.Dir, "command", spec.Command)

		spawnErr := uc.startOne(ctx, spec)
		if spawnErr != nil {
			// Keep going: one child failing to start must not block the other.
			uc.logger.Error("spawn failed", "name", spec.Name, "error", spawnErr)
		}
		out.Results = append(out.Results, ChildResult{Spec: spec, Err: spawnErr})
	}

	return out, nil
}

func (uc *LaunchStack) startOne(ctx context.Context, spec domain.LaunchSpec) error {
	ctx, cancel := context.WithTimeout(ctx, spawnTimeout)
	defer cancel()
	return uc.spawner.Start(ctx, spec)
}
