package switcher

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestAppendAuditLog_CreatesDirectoryAndAppends(t *testing.T) {
	t.Parallel()

	logDir := filepath.Join(t.TempDir(), "nested", "logs")
	first := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	second := first.Add(26 * time.Hour)

	if err := AppendAuditLog(logDir, `C:\Java\jdk-17`, first); err != nil {
		t.Fatalf("first append: %v", err)
	}
	if err := AppendAuditLog(logDir, `C:\Java\jdk-21`, second); err != nil {
		t.Fatalf("second append: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(logDir, LogFileName))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), string(content))
	}
	if lines[0] != "2025-01-02 03:04:05 | JAVA_HOME set to C:\\Java\\jdk-17" {
		t.Fatalf("unexpected first line %q", lines[0])
	}
	if lines[1] != "2025-01-03 05:04:05 | JAVA_HOME set to C:\\Java\\jdk-21" {
		t.Fatalf("unexpected second line %q", lines[1])
	}
}
