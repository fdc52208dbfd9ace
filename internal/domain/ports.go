package domain

import (
	"context"
	"time"
)

// Spawner starts a child process detached from the launcher.
type Spawner interface {
	// Start launches the spec's command in the spec's working directory
	// and returns once the child has been handed off to the OS. It must
	// not wait for the child to exit; the context only bounds session
	// creation itself.
	Start(ctx context.Context, spec LaunchSpec) error
}

// ConfigLoader loads launcher configuration.
type ConfigLoader interface {
	// Load returns the configuration, falling back to defaults when no
	// config file exists.
	Load() (*Config, error)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
