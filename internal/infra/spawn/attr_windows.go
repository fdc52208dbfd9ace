//go:build windows

package spawn

import "syscall"

const (
	shellPath = "cmd"
	shellFlag = "/c"
)

// detachAttr starts the child in its own process group so closing the
// launcher's console does not take the child down with it.
func detachAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP}
}
