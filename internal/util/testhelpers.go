//nolint:revive // var-naming - package name is meaningful
package util

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes content to a file in the test directory
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
}

// ReadFile returns the content of a file, failing the test if it cannot be read
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	// #nosec G304 - path comes from the test itself
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file %s: %v", path, err)
	}
	return string(data)
}

// WriteStub writes a stub for the given file name under projectRoot/src/Stubs
func WriteStub(t *testing.T, projectRoot, name, content string) string {
	t.Helper()
	path := filepath.Join(projectRoot, "src", "Stubs", name)
	WriteFile(t, path, content)
	return path
}
