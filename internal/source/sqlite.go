package source

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // sqlite driver

	"github.com/vdobler/plotgrid"
)

// LoadSQLite reads table from the SQLite database at path. An empty table
// selects the first table of the schema in name order. The database is
// opened read-only.
func LoadSQLite(ctx context.Context, path, table string) (*plotgrid.DataFrame, error) {
	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("open sqlite: %w", err)}
	}
	defer func() { _ = db.Close() }()

	if table == "" {
		err := db.QueryRowContext(ctx,
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name LIMIT 1",
		).Scan(&table)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &LoadError{Path: path, Err: errors.New("database has no tables")}
		}
		if err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}
	}

	rows, err := db.QueryContext(ctx, "SELECT * FROM "+quoteIdent(table))
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer func() { _ = rows.Close() }()

	df, err := FromRows(table, rows)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return df, nil
}
