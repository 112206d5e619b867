// Package source loads data frames from files: CSV and Parquet through
// DuckDB, SQLite tables and Excel sheets.
package source

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vdobler/plotgrid"
)

// ErrUnsupportedFormat is returned for files whose extension names no
// known format.
var ErrUnsupportedFormat = errors.New("source: unsupported format")

// LoadError records the file which failed to load.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string { return "load " + e.Path + ": " + e.Err.Error() }

func (e *LoadError) Unwrap() error { return e.Err }

// Options select the part of a file to load.
type Options struct {
	// Table of a SQLite database. Empty selects the first table.
	Table string

	// Sheet of an Excel workbook. Empty selects the first sheet.
	Sheet string
}

// Format returns the format name of path derived from its extension:
// "csv", "parquet", "sqlite" or "xlsx".
func Format(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", ".tsv", ".txt":
		return "csv", nil
	case ".parquet", ".pq":
		return "parquet", nil
	case ".db", ".sqlite", ".sqlite3":
		return "sqlite", nil
	case ".xlsx", ".xlsm":
		return "xlsx", nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnsupportedFormat, ext)
	}
}

// Load reads the file at path into a data frame named after the file.
func Load(ctx context.Context, path string, o Options) (*plotgrid.DataFrame, error) {
	format, err := Format(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	switch format {
	case "csv":
		return LoadCSV(ctx, path)
	case "parquet":
		return LoadParquet(ctx, path)
	case "sqlite":
		return LoadSQLite(ctx, path, o.Table)
	default:
		return LoadXLSX(path, o.Sheet)
	}
}

func frameName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
