package plotgrid

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testFigure(t *testing.T) *Figure {
	t.Helper()
	rec := &recorder{}
	fig, err := rec.renderer().Boxplots(pairFrame(t), BoxplotOptions{})
	require.NoError(t, err)
	return fig
}

func TestFileDisplayFormat(t *testing.T) {
	tests := []struct {
		path, format, want string
	}{
		{"", "", "png"},
		{"out.svg", "", "svg"},
		{"out.PDF", "", "pdf"},
		{"out.svg", "png", "png"},
		{"out", "", "png"},
		{"", "EPS", "eps"},
	}
	for _, tt := range tests {
		d := &FileDisplay{Path: tt.path, Format: tt.format}
		assert.Equal(t, tt.want, d.format(), "path=%q format=%q", tt.path, tt.format)
	}
}

func TestFileDisplayPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "box.svg")
	var logs bytes.Buffer
	d := &FileDisplay{Path: path, Logger: slog.New(slog.NewTextHandler(&logs, nil))}

	require.NoError(t, d.Show(testFigure(t)))
	assert.Equal(t, path, d.Written)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
	assert.Contains(t, logs.String(), "figure written")
	assert.Contains(t, logs.String(), path)
}

func TestFileDisplayTemp(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())
	d := &FileDisplay{Logger: quietLogger()}

	require.NoError(t, d.Show(testFigure(t)))
	defer os.Remove(d.Written)

	base := filepath.Base(d.Written)
	assert.True(t, strings.HasPrefix(base, "plotgrid-boxplots-"), base)
	assert.True(t, strings.HasSuffix(base, ".png"), base)

	data, err := os.ReadFile(d.Written)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}

func TestFileDisplayUnknownFormat(t *testing.T) {
	d := &FileDisplay{Path: filepath.Join(t.TempDir(), "out.bmp"), Logger: quietLogger()}
	assert.Error(t, d.Show(testFigure(t)))
}

func TestWriterDisplay(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriterDisplay{W: &buf, Format: "eps"}.Show(testFigure(t)))
	assert.Contains(t, buf.String(), "PS-Adobe")
}

func TestFigureSize(t *testing.T) {
	fig := testFigure(t)
	w, h := fig.Size()
	assert.Equal(t, 2*DefaultTheme.CellWidth, w)
	assert.Equal(t, DefaultTheme.CellHeight, h)

	rec := &recorder{}
	fig, err := rec.renderer().Boxplots(mixedFrame(t), BoxplotOptions{})
	require.NoError(t, err)
	_, h = fig.Size()
	assert.Equal(t, 2*DefaultTheme.CellHeight, h)
}
