package source

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/marcboeker/go-duckdb" // duckdb driver

	"github.com/vdobler/plotgrid"
)

// LoadCSV reads a delimited text file. Delimiter, header and column types
// are detected by DuckDB's read_csv_auto.
func LoadCSV(ctx context.Context, path string) (*plotgrid.DataFrame, error) {
	return queryDuckDB(ctx, path, "SELECT * FROM read_csv_auto("+quoteString(path)+")")
}

// LoadParquet reads a Parquet file.
func LoadParquet(ctx context.Context, path string) (*plotgrid.DataFrame, error) {
	return queryDuckDB(ctx, path, "SELECT * FROM read_parquet("+quoteString(path)+")")
}

func queryDuckDB(ctx context.Context, path, query string) (*plotgrid.DataFrame, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("open duckdb: %w", err)}
	}
	defer func() { _ = db.Close() }()

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer func() { _ = rows.Close() }()

	df, err := FromRows(frameName(path), rows)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return df, nil
}

// quoteString quotes s as a SQL string literal.
func quoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// quoteIdent quotes s as a SQL identifier.
func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
