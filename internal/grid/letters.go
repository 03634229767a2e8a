package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// ColumnLetter returns the spreadsheet-style name for a column:
// 0 is A, 25 is Z, 26 is AA.
func ColumnLetter(c ColIndex) string {
	if c < 0 {
		return ""
	}
	num := int(c) + 1
	var b []byte
	for num > 0 {
		rem := (num - 1) % 26
		b = append([]byte{byte('A' + rem)}, b...)
		num = (num - 1) / 26
	}
	return string(b)
}

// ParseColumnRef reads a column reference typed by the user, either
// spreadsheet letters ("A", "bc") or a one-based number ("3"). It returns
// the one-based column number.
func ParseColumnRef(ref string) (int, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return 0, fmt.Errorf("empty column reference")
	}

	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 {
			return 0, fmt.Errorf("invalid column number: %d", n)
		}
		return n, nil
	}

	num := 0
	for _, r := range strings.ToUpper(ref) {
		if r < 'A' || r > 'Z' {
			return 0, fmt.Errorf("invalid column reference: %q", ref)
		}
		num = num*26 + int(r-'A') + 1
	}
	return num, nil
}
