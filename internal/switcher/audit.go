package switcher

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	// LogFileName is the fixed audit log name inside the configured
	// log directory.
	LogFileName = "java-switcher.log"

	logTimeLayout = "2006-01-02 15:04:05"
)

// AppendAuditLog appends one line recording the switch, creating the log
// directory if needed. Callers treat a failure here as a warning; the
// switch itself already happened.
func AppendAuditLog(logDir string, selection string, now time.Time) error {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return fmt.Errorf("create log directory %s: %w", logDir, err)
	}

	logPath := filepath.Join(logDir, LogFileName)
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file %s: %w", logPath, err)
	}

	line := fmt.Sprintf("%s | %s set to %s\n", now.Format(logTimeLayout), HomeVariable, selection)
	if _, err := file.WriteString(line); err != nil {
		_ = file.Close()
		return fmt.Errorf("append to log file %s: %w", logPath, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("close log file %s: %w", logPath, err)
	}

	return nil
}
