// Package testutil contains shared fixtures for package tests.
package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// CSV joins lines into file content with a trailing newline.
func CSV(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

// SeedDir writes each named file into dir and returns the paths sorted
// by name, the order directory discovery produces.
func SeedDir(tb testing.TB, dir string, files map[string]string) []string {
	tb.Helper()

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	paths := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		err := os.WriteFile(path, []byte(files[name]), 0o644)
		require.NoError(tb, err, "write %s", name)
		paths = append(paths, path)
	}
	return paths
}
