// Package document loads CSV files into immutable in-memory documents.
package document

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/ianaindex"

	"github.com/funkybooboo/lazycsv/internal/grid"
)

// Options control how a CSV file is parsed.
type Options struct {
	// Delimiter is the field separator. Zero means comma.
	Delimiter rune

	// NoHeaders treats the first row as data and synthesizes column names.
	NoHeaders bool

	// Encoding is an IANA charset label. Empty means UTF-8.
	Encoding string
}

// Document is a parsed CSV file held in memory. It is never mutated after
// loading; reloads produce a fresh Document.
type Document struct {
	path     string
	filename string
	headers  []string
	rows     [][]string
}

// Load reads and parses the CSV file at path.
func Load(path string, opts Options) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	content, err := decode(raw, opts.Encoding)
	if err != nil {
		return nil, err
	}

	headers, rows, err := parse(content, opts)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}

	return &Document{
		path:     path,
		filename: filepath.Base(path),
		headers:  headers,
		rows:     rows,
	}, nil
}

// decode converts raw file bytes to UTF-8 text. An empty label means the
// file is already UTF-8; a leading byte order mark is dropped either way.
func decode(raw []byte, label string) (string, error) {
	if label == "" {
		return strings.TrimPrefix(string(raw), "\uFEFF"), nil
	}

	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil || enc == nil {
		return "", fmt.Errorf("unsupported encoding %q", label)
	}

	decoded, err := enc.NewDecoder().String(string(raw))
	if err != nil {
		return "", fmt.Errorf("decode as %s: %w", label, err)
	}
	return strings.TrimPrefix(decoded, "\uFEFF"), nil
}

func parse(content string, opts Options) ([]string, [][]string, error) {
	r := csv.NewReader(strings.NewReader(content))
	if opts.Delimiter != 0 {
		r.Comma = opts.Delimiter
	}

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if opts.NoHeaders {
		var headers []string
		if len(records) > 0 {
			headers = make([]string, len(records[0]))
			for i := range headers {
				headers[i] = fmt.Sprintf("Column %d", i+1)
			}
		}
		return headers, records, nil
	}

	if len(records) == 0 {
		return nil, nil, nil
	}
	return records[0], records[1:], nil
}

// Path returns the file path the document was loaded from.
func (d *Document) Path() string {
	return d.path
}

// Filename returns the base name for display.
func (d *Document) Filename() string {
	return d.filename
}

// Headers returns the column names.
func (d *Document) Headers() []string {
	return d.headers
}

// Header returns the name of a column, or "" when out of bounds.
func (d *Document) Header(col grid.ColIndex) string {
	if col < 0 || int(col) >= len(d.headers) {
		return ""
	}
	return d.headers[int(col)]
}

// RowCount returns the number of data rows, excluding the header row.
func (d *Document) RowCount() int {
	return len(d.rows)
}

// ColumnCount returns the number of columns.
func (d *Document) ColumnCount() int {
	return len(d.headers)
}

// CellText returns the text of a cell, or "" when out of bounds.
func (d *Document) CellText(row grid.RowIndex, col grid.ColIndex) string {
	if row < 0 || int(row) >= len(d.rows) {
		return ""
	}
	r := d.rows[int(row)]
	if col < 0 || int(col) >= len(r) {
		return ""
	}
	return r[int(col)]
}

// Row returns a copy of a data row, or nil when out of bounds.
func (d *Document) Row(row grid.RowIndex) []string {
	if row < 0 || int(row) >= len(d.rows) {
		return nil
	}
	out := make([]string, len(d.rows[int(row)]))
	copy(out, d.rows[int(row)])
	return out
}
