package table

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funkybooboo/lazycsv/internal/document"
	"github.com/funkybooboo/lazycsv/internal/grid"
	"github.com/funkybooboo/lazycsv/internal/nav"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func loadDoc(t *testing.T, name, content string) *document.Document {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	doc, err := document.Load(path, document.Options{})
	require.NoError(t, err)
	return doc
}

// inner strips the frame edges and trailing padding from one rendered line.
func inner(line string) string {
	line = strings.TrimPrefix(line, "│")
	line = strings.TrimSuffix(line, "│")
	return strings.TrimRight(line, " ")
}

func TestRender_BasicGrid(t *testing.T) {
	doc := loadDoc(t, "data.csv", "name,age\nAlice,30\nBob,25\n")

	got := New(10, 20).Render(doc, nav.Viewport{}, 40, 10)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 10)

	assert.Contains(t, lines[0], "lazycsv: data.csv")
	assert.Equal(t, "      ►A     B", inner(lines[1]))
	assert.Equal(t, "    # name  age", inner(lines[2]))
	assert.Equal(t, "►   1 Alice 30", inner(lines[3]))
	assert.Equal(t, "    2 Bob   25", inner(lines[4]))
	assert.Equal(t, "", inner(lines[5]))
}

func TestRender_CursorMovesMarkers(t *testing.T) {
	doc := loadDoc(t, "data.csv", "name,age\nAlice,30\nBob,25\n")

	view := nav.Viewport{Cursor: grid.Position{Row: 1, Col: 1}}
	got := New(10, 20).Render(doc, view, 40, 10)
	lines := strings.Split(got, "\n")

	assert.Equal(t, "       A    ►B", inner(lines[1]))
	assert.Equal(t, "    1 Alice 30", inner(lines[3]))
	assert.Equal(t, "►   2 Bob   25", inner(lines[4]))
}

func TestRender_EmptyFile(t *testing.T) {
	doc := loadDoc(t, "zero.csv", "")

	got := New(10, 20).Render(doc, nav.Viewport{}, 30, 6)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 6)

	assert.Contains(t, lines[0], "lazycsv: zero.csv")
	assert.Equal(t, " (empty file)", inner(lines[1]))
}

func TestRender_HeaderOnlyFile(t *testing.T) {
	doc := loadDoc(t, "new.csv", "name,age\n")

	got := New(10, 20).Render(doc, nav.Viewport{}, 30, 8)
	lines := strings.Split(got, "\n")

	assert.Equal(t, "    # name  age", inner(lines[2]))
	assert.Equal(t, "", inner(lines[3]))
}

func TestRender_TruncatesLongCells(t *testing.T) {
	long := strings.Repeat("x", 30)
	doc := loadDoc(t, "wide.csv", "v\n"+long+"\n")

	got := New(10, 20).Render(doc, nav.Viewport{}, 40, 8)

	assert.Contains(t, got, strings.Repeat("x", 19)+"…")
	assert.NotContains(t, got, long)
}

func TestRender_SanitizesMultilineCells(t *testing.T) {
	doc := loadDoc(t, "multi.csv", "v\n\"a\nb\"\n")

	got := New(10, 20).Render(doc, nav.Viewport{}, 30, 8)
	lines := strings.Split(got, "\n")

	require.Len(t, lines, 8)
	assert.Contains(t, got, "a b")
}

func TestRender_ColumnWindow(t *testing.T) {
	headers := make([]string, 15)
	cells := make([]string, 15)
	for i := range headers {
		headers[i] = "h" + strings.Repeat("i", i+1)
		cells[i] = "v"
	}
	doc := loadDoc(t, "cols.csv", strings.Join(headers, ",")+"\n"+strings.Join(cells, ",")+"\n")

	view := nav.Viewport{Cursor: grid.Position{Col: 2}, ColOffset: 2}
	got := New(10, 20).Render(doc, view, 120, 8)
	lines := strings.Split(got, "\n")

	letters := inner(lines[1])
	assert.Contains(t, letters, "►C")
	assert.Contains(t, letters, " L")
	assert.NotContains(t, letters, "A")
	assert.NotContains(t, letters, "M")
}

func TestRender_RowWindowFollowsCursor(t *testing.T) {
	var b strings.Builder
	b.WriteString("n\n")
	for i := 1; i <= 50; i++ {
		b.WriteString("row\n")
	}
	doc := loadDoc(t, "tall.csv", b.String())

	view := nav.Viewport{Cursor: grid.Position{Row: 30}}
	got := New(10, 20).Render(doc, view, 30, 10)
	lines := strings.Split(got, "\n")

	// dataHeight is 6, so the auto-centered window starts at row 28.
	assert.True(t, strings.HasPrefix(inner(lines[3]), "   28"))
	assert.Contains(t, got, "►  31")
	assert.NotContains(t, got, "► 28")
}

func TestRender_TopAnchorPinsCursorRow(t *testing.T) {
	var b strings.Builder
	b.WriteString("n\n")
	for i := 1; i <= 50; i++ {
		b.WriteString("row\n")
	}
	doc := loadDoc(t, "tall.csv", b.String())

	view := nav.Viewport{Cursor: grid.Position{Row: 30}, Mode: nav.ModeTop}
	got := New(10, 20).Render(doc, view, 30, 10)
	lines := strings.Split(got, "\n")

	assert.True(t, strings.HasPrefix(inner(lines[3]), "►  31"))
}

func TestRender_TinyTerminalKeepsFrame(t *testing.T) {
	doc := loadDoc(t, "emoji.csv", "a,b\n😀😀,x\ny,z\n")

	got := New(10, 20).Render(doc, nav.Viewport{}, 12, 5)
	lines := strings.Split(got, "\n")

	require.Len(t, lines, 5)
	for _, line := range lines {
		assert.Equal(t, 12, lipgloss.Width(line))
	}
}

func TestDataHeight(t *testing.T) {
	assert.Equal(t, 6, DataHeight(10))
	assert.Equal(t, 1, DataHeight(4))
	assert.Equal(t, 1, DataHeight(0))
}

func TestGutterWidth(t *testing.T) {
	assert.Equal(t, 3, gutterWidth(0))
	assert.Equal(t, 3, gutterWidth(5))
	assert.Equal(t, 3, gutterWidth(999))
	assert.Equal(t, 4, gutterWidth(1000))
}
