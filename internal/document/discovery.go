package document

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ScanDir returns the CSV files directly inside dir, sorted by path.
// Matching is on the lowercase ".csv" extension only.
func ScanDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if filepath.Ext(e.Name()) == ".csv" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// ScanSiblings returns the CSV files in the directory containing path, for
// building a multi-file session around one file. The file itself is always
// included even when the scan comes back empty.
func ScanSiblings(path string) ([]string, error) {
	dir := filepath.Dir(path)
	if dir == "" {
		dir = "."
	}

	files, err := ScanDir(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		files = []string{path}
	}
	return files, nil
}

// Discover resolves a CLI path argument, which may name a file or a
// directory, into the session file list and the index to open first.
func Discover(path string) (files []string, active int, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, 0, fmt.Errorf("path not found: %s", path)
	}

	if info.IsDir() {
		files, err = ScanDir(path)
		if err != nil {
			return nil, 0, err
		}
		if len(files) == 0 {
			return nil, 0, fmt.Errorf("no CSV files found in directory: %s", path)
		}
		return files, 0, nil
	}

	if !info.Mode().IsRegular() {
		return nil, 0, fmt.Errorf("invalid path: %s", path)
	}

	files, err = ScanSiblings(path)
	if err != nil {
		return nil, 0, err
	}
	active = 0
	abs, _ := filepath.Abs(path)
	for i, f := range files {
		fa, _ := filepath.Abs(f)
		if fa == abs {
			active = i
			break
		}
	}
	return files, active, nil
}
