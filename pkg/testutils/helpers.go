package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateTestFilesWithContent creates test files with specific content.
// Names may contain slashes; parent directories are created as needed.
func CreateTestFilesWithContent(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

// CreateTestFilesWithDefault creates a.txt, ab.txt and the non-text b.bin
// in a fresh temp directory and returns it.
func CreateTestFilesWithDefault(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	CreateTestFilesWithContent(t, dir, map[string]string{
		"a.txt":  "alpha",
		"ab.txt": "alpha beta",
		"b.bin":  "\xff\x00\xfe",
	})
	return dir
}
