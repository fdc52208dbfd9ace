// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"time"

	"github.com/mtakeda/stackup/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockSpawner is a test double for domain.Spawner.
// It records every spec passed to Start in call order.
type MockSpawner struct {
	Calls []domain.LaunchSpec
	Errs  map[string]error // Error to return, keyed by child name
}

// NewMockSpawner creates a new MockSpawner.
func NewMockSpawner() *MockSpawner {
	return &MockSpawner{
		Errs: make(map[string]error),
	}
}

// Start records the spec and returns the configured error for its child.
func (m *MockSpawner) Start(_ context.Context, spec domain.LaunchSpec) error {
	m.Calls = append(m.Calls, spec)
	return m.Errs[spec.Name]
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Cfg     *domain.Config
	LoadErr error
}

// Load returns the configured config, defaulting when none is set.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Cfg == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Cfg, nil
}
