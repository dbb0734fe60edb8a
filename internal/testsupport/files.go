// Package testsupport provides shared fixtures for booklint tests.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteMarkdown writes a markdown fixture at path, creating parent
// directories as needed.
func WriteMarkdown(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
