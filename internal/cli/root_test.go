package cli

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/spf13/cobra"

	"github.com/mtakeda/stackup/internal/app"
	"github.com/mtakeda/stackup/internal/domain"
	"github.com/mtakeda/stackup/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestContainer builds a container wired to mocks.
func newTestContainer(spawner *testutil.MockSpawner) *app.Container {
	return &app.Container{
		Spawner:      spawner,
		ConfigLoader: &testutil.MockConfigLoader{},
		Clock:        &testutil.MockClock{},
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		Config: app.Config{
			BaseDir: "/srv/stack",
			LogsDir: "/srv/stack/logs",
		},
		Terminal: true,
	}
}

// disableAck turns off the interactive pause for the duration of a test.
func disableAck(t *testing.T) {
	t.Helper()
	originalAck := waitForAckFunc
	originalTTY := isTerminalFunc
	t.Cleanup(func() {
		waitForAckFunc = originalAck
		isTerminalFunc = originalTTY
	})
	isTerminalFunc = func() bool { return false }
}

func TestNewRootCommand_NoArgs_LaunchesBothChildren(t *testing.T) {
	disableAck(t)
	spawner := testutil.NewMockSpawner()
	root := NewRootCommand(newTestContainer(spawner), "test-version")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs([]string{})

	err := root.Execute()

	require.NoError(t, err)
	require.Len(t, spawner.Calls, 2)
	assert.Equal(t, domain.ChildBackend, spawner.Calls[0].Name)
	assert.Equal(t, domain.ChildFrontend, spawner.Calls[1].Name)
	assert.Contains(t, out.String(), "Both Backend and Frontend are running.")
}

func TestNewRootCommand_UnknownFlagIgnored(t *testing.T) {
	disableAck(t)
	spawner := testutil.NewMockSpawner()
	root := NewRootCommand(newTestContainer(spawner), "test-version")
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"--bogus", "stray-arg"})

	err := root.Execute()

	require.NoError(t, err)
	assert.Len(t, spawner.Calls, 2, "stray arguments must not alter behavior")
}

func TestNewRootCommand_CompletionMessageUnconditional(t *testing.T) {
	// The completion line is printed even when a child failed to start;
	// the failure itself goes to stderr.
	disableAck(t)
	spawner := testutil.NewMockSpawner()
	spawner.Errs[domain.ChildBackend] = errors.New("chdir backend: no such file or directory")
	root := NewRootCommand(newTestContainer(spawner), "test-version")
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{})

	err := root.Execute()

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Both Backend and Frontend are running.")
	assert.Contains(t, errOut.String(), "backend")
	assert.Contains(t, errOut.String(), "no such file or directory")
}

func TestNewRootCommand_AllSpawnsFailed(t *testing.T) {
	disableAck(t)
	spawner := testutil.NewMockSpawner()
	spawner.Errs[domain.ChildBackend] = errors.New("boom")
	spawner.Errs[domain.ChildFrontend] = errors.New("boom")
	root := NewRootCommand(newTestContainer(spawner), "test-version")
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{})

	err := root.Execute()

	assert.ErrorIs(t, err, domain.ErrAllSpawnsFailed)
}

func TestNewRootCommand_InteractiveAck(t *testing.T) {
	originalAck := waitForAckFunc
	originalTTY := isTerminalFunc
	t.Cleanup(func() {
		waitForAckFunc = originalAck
		isTerminalFunc = originalTTY
	})
	isTerminalFunc = func() bool { return true }
	acked := false
	waitForAckFunc = func(_ *cobra.Command) { acked = true }

	spawner := testutil.NewMockSpawner()
	root := NewRootCommand(newTestContainer(spawner), "test-version")
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{})

	err := root.Execute()

	require.NoError(t, err)
	assert.True(t, acked, "interactive runs wait for acknowledgment before exiting")
}

func TestNewRootCommand_HeadlessShowsLogLocation(t *testing.T) {
	disableAck(t)
	spawner := testutil.NewMockSpawner()
	c := newTestContainer(spawner)
	c.Terminal = false
	root := NewRootCommand(c, "test-version")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs([]string{})

	err := root.Execute()

	require.NoError(t, err)
	assert.Contains(t, out.String(), c.Config.LogsDir)
}
