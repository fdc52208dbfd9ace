package domain

import "errors"

// Domain errors.
var (
	ErrAllSpawnsFailed = errors.New("no child process could be started")
)
