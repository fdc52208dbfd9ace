package domain

import (
	"fmt"
	"path/filepath"
	"time"
)

// SessionName returns the tmux session name for a child launched at t by
// the launcher process pid. The pid and timestamp keep names unique across
// repeated invocations, so a second run never collides with the first.
// Format: stackup-<child>-<pid>-<timestamp>
func SessionName(child string, pid int, t time.Time) string {
	return fmt.Sprintf("stackup-%s-%d-%s", child, pid, t.Format("20060102150405"))
}

// LogsDir returns the directory for child log files under the stack root.
func LogsDir(baseDir string) string {
	return filepath.Join(baseDir, "logs")
}

// ChildLogPath returns the log file path for a child in headless mode.
func ChildLogPath(logsDir, child string) string {
	return filepath.Join(logsDir, child+".log")
}
