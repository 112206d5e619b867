package plotgrid

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Display shows a finished figure.
type Display interface {
	Show(fig *Figure) error
}

// DisplayFunc adapts an ordinary function to a Display.
type DisplayFunc func(fig *Figure) error

func (f DisplayFunc) Show(fig *Figure) error { return f(fig) }

// WriterDisplay encodes figures in Format (default "png") to W.
type WriterDisplay struct {
	W      io.Writer
	Format string
}

func (d WriterDisplay) Show(fig *Figure) error {
	format := d.Format
	if format == "" {
		format = "png"
	}
	return fig.Encode(d.W, format)
}

// FileDisplay writes figures to a file.
//
// The format is taken from Format, else from the extension of Path, else
// it is "png". An empty Path writes to a new temporary file. The name of
// the written file is logged at info level.
type FileDisplay struct {
	Path   string
	Format string
	Logger *slog.Logger

	// Written is the path of the last file written.
	Written string
}

func (d *FileDisplay) format() string {
	if d.Format != "" {
		return strings.ToLower(d.Format)
	}
	if ext := strings.TrimPrefix(filepath.Ext(d.Path), "."); ext != "" {
		return strings.ToLower(ext)
	}
	return "png"
}

func (d *FileDisplay) Show(fig *Figure) (err error) {
	format := d.format()

	var file *os.File
	if d.Path == "" {
		file, err = os.CreateTemp("", fmt.Sprintf("plotgrid-%s-*.%s", fig.Name, format))
	} else {
		file, err = os.Create(d.Path)
	}
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	if err = fig.Encode(file, format); err != nil {
		return err
	}
	d.Written = file.Name()

	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("figure written", "figure", fig.Name, "path", d.Written, "format", format)
	return nil
}
