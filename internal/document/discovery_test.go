package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("A\n1\n"), 0o644))
	return path
}

func TestScanDir_SortedCSVOnly(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "zebra.csv")
	touch(t, dir, "apple.csv")
	touch(t, dir, "notes.txt")
	touch(t, dir, "mango.csv")

	files, err := ScanDir(dir)
	require.NoError(t, err)

	require.Len(t, files, 3)
	require.Equal(t, "apple.csv", filepath.Base(files[0]))
	require.Equal(t, "mango.csv", filepath.Base(files[1]))
	require.Equal(t, "zebra.csv", filepath.Base(files[2]))
}

func TestScanDir_IgnoresSubdirectories(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "root.csv")
	sub := filepath.Join(dir, "subdir")
	require.NoError(t, os.Mkdir(sub, 0o755))
	touch(t, sub, "nested.csv")

	files, err := ScanDir(dir)
	require.NoError(t, err)

	require.Len(t, files, 1)
	require.Equal(t, "root.csv", filepath.Base(files[0]))
}

func TestScanDir_ExtensionIsCaseSensitive(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "lower.csv")
	touch(t, dir, "upper.CSV")

	files, err := ScanDir(dir)
	require.NoError(t, err)

	require.Len(t, files, 1)
	require.Equal(t, "lower.csv", filepath.Base(files[0]))
}

func TestScanDir_Missing(t *testing.T) {
	_, err := ScanDir(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestScanSiblings_IncludesSelfWhenDirHasNoCSVs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ghost.csv")

	files, err := ScanSiblings(path)
	require.NoError(t, err)

	require.Equal(t, []string{path}, files)
}

func TestDiscover_File(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.csv")
	target := touch(t, dir, "b.csv")
	touch(t, dir, "c.csv")

	files, active, err := Discover(target)
	require.NoError(t, err)

	require.Len(t, files, 3)
	require.Equal(t, 1, active)
	require.Equal(t, "b.csv", filepath.Base(files[active]))
}

func TestDiscover_Directory(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "two.csv")
	touch(t, dir, "one.csv")

	files, active, err := Discover(dir)
	require.NoError(t, err)

	require.Len(t, files, 2)
	require.Equal(t, 0, active)
	require.Equal(t, "one.csv", filepath.Base(files[0]))
}

func TestDiscover_EmptyDirectory(t *testing.T) {
	_, _, err := Discover(t.TempDir())
	require.Error(t, err)
	require.Contains(t, err.Error(), "no CSV files found")
}

func TestDiscover_MissingPath(t *testing.T) {
	_, _, err := Discover(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "path not found")
}
