//go:build unix

package spawn

import "syscall"

const (
	shellPath = "/bin/sh"
	shellFlag = "-c"
)

// detachAttr places the child in a new session so it survives the
// launcher's exit and never receives its terminal signals.
func detachAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
