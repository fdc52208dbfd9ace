// Package spawn starts children as detached background processes.
// It is the headless fallback when no tmux server can host a session:
// each child runs in its own session/process group with stdout and
// stderr appended to a per-child log file.
package spawn

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/mtakeda/stackup/internal/domain"
)

// Spawner implements domain.Spawner without a terminal multiplexer.
type Spawner struct {
	logsDir string
}

// New creates a new Spawner writing child logs under logsDir.
func New(logsDir string) *Spawner {
	return &Spawner{logsDir: logsDir}
}

// Ensure Spawner implements domain.Spawner interface.
var _ domain.Spawner = (*Spawner)(nil)

// Start launches the spec's command detached from the launcher and
// returns as soon as the OS has taken over the child. The child is never
// waited on, so its lifetime is independent of ours.
func (s *Spawner) Start(ctx context.Context, spec domain.LaunchSpec) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(s.logsDir, 0o750); err != nil {
		return fmt.Errorf("create logs directory: %w", err)
	}

	logPath := domain.ChildLogPath(s.logsDir, spec.Name)
	// G302: Log files are append-only and need read access by stack users
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // Log file readable by owner and group
	if err != nil {
		return fmt.Errorf("open %s log file: %w", spec.Name, err)
	}

	// Deliberately not CommandContext: cancelling the spawn context must
	// never kill an already-started child.
	// #nosec G204 - spec.Command comes from trusted config defaults
	cmd := exec.Command(shellPath, shellFlag, spec.Command)
	cmd.Dir = spec.Dir
	cmd.Stdout = f
	cmd.Stderr = f
	cmd.SysProcAttr = detachAttr()

	if err := cmd.Start(); err != nil {
		_ = f.Close()
		return fmt.Errorf("start %s: %w", spec.Name, err)
	}

	// The child holds its own descriptor after Start.
	_ = f.Close()
	_ = cmd.Process.Release()

	return nil
}
