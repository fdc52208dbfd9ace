package tmux

import (
	"testing"

	"github.com/mtakeda/stackup/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNewSessionArgs(t *testing.T) {
	spec := domain.LaunchSpec{
		Name:    domain.ChildBackend,
		Dir:     "/srv/stack/backend",
		Command: "python app.py",
	}

	args := newSessionArgs("stackup-backend-1-20260830120000", spec)

	assert.Equal(t, []string{
		"new-session",
		"-d",
		"-s", "stackup-backend-1-20260830120000",
		"-c", "/srv/stack/backend",
		"python app.py",
	}, args)
}
