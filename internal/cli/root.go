// Package cli provides the command-line interface for stackup.
package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mtakeda/stackup/internal/app"
	"github.com/mtakeda/stackup/internal/domain"
	"github.com/mtakeda/stackup/internal/usecase"
)

// Styles for the per-child status lines.
var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// waitForAckFunc is a function variable for the final acknowledgment
// pause, allowing it to be mocked in tests.
var waitForAckFunc = waitForAck

// isTerminalFunc is a function variable for stdin TTY detection,
// allowing it to be mocked in tests.
var isTerminalFunc = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// NewRootCommand creates the root command for stackup.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "stackup",
		Short: "Launch the backend and frontend of the local dev stack",
		Long: `stackup starts both halves of the local development stack:
the backend API server and the frontend dashboard. Each child runs
detached from stackup itself, in its own tmux session when run from a
terminal, or in the background with per-child log files otherwise.

stackup takes no arguments; invoking it is the entire interface.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		// Stray arguments and unknown flags change nothing; the launcher
		// has no flag surface of its own.
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.LaunchStackUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.LaunchStackInput{
				BaseDir: c.Config.BaseDir,
			})
			if err != nil {
				return err
			}

			renderResults(cmd, c, out)

			if isTerminalFunc() {
				waitForAckFunc(cmd)
			}

			if out.AllFailed() {
				return domain.ErrAllSpawnsFailed
			}
			return nil
		},
	}

	return root
}

// renderResults prints one status line per child, then the completion
// message. The completion message is printed regardless of per-child
// outcome; failures are reported on stderr above it.
func renderResults(cmd *cobra.Command, c *app.Container, out *usecase.LaunchStackOutput) {
	for _, r := range out.Results {
		if r.Err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s %s: %v\n",
				failStyle.Render("✗"), r.Spec.Name, r.Err)
			continue
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s started in %s\n",
			okStyle.Render("✓"), r.Spec.Name, r.Spec.Dir)
	}

	if !c.Terminal {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Child logs: %s\n", c.Config.LogsDir)
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Both Backend and Frontend are running.")
}

// waitForAck blocks until the user presses Enter. The children are
// already detached, so this only delays the launcher's own exit.
func waitForAck(cmd *cobra.Command) {
	_, _ = fmt.Fprint(cmd.OutOrStdout(), "Press Enter to exit...")
	_, _ = bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
}
