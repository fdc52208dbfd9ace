// Package tmux provides detached tmux sessions for launched children.
package tmux

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/mtakeda/stackup/internal/domain"
)

// Client starts each child in its own detached tmux session on the
// user's default tmux server, so its output stays observable via
// `tmux attach` while the child's lifetime is decoupled from ours.
type Client struct {
	clock domain.Clock
	pid   int
}

// NewClient creates a new tmux client.
func NewClient(clock domain.Clock) *Client {
	return &Client{
		clock: clock,
		pid:   os.Getpid(),
	}
}

// Ensure Client implements domain.Spawner interface.
var _ domain.Spawner = (*Client)(nil)

// Available reports whether tmux can be found on PATH.
func Available() bool {
	_, err := exec.LookPath("tmux")
	return err == nil
}

// Start creates a detached session running the spec's command.
// Session names are unique per launcher run, so repeated invocations
// start additional sessions rather than colliding with earlier ones.
// If the working directory is missing, tmux fails and its diagnostic is
// returned with the error.
func (c *Client) Start(ctx context.Context, spec domain.LaunchSpec) error {
	name := domain.SessionName(spec.Name, c.pid, c.clock.Now())

	// tmux new-session -d -s <name> -c <dir> <command>
	cmd := exec.CommandContext(ctx, "tmux", newSessionArgs(name, spec)...)

	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("start %s session: %w: %s", spec.Name, err, string(out))
	}

	return nil
}

// newSessionArgs builds the new-session argument list for a spec.
func newSessionArgs(name string, spec domain.LaunchSpec) []string {
	return []string{
		"new-session",
		"-d",        // Detached
		"-s", name, // Session name
		"-c", spec.Dir, // Working directory
		spec.Command,
	}
}
