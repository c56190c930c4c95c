package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/marshallshelly/shopforge/pkg/csvio"
)

// TableCount reports how many rows were loaded into one table.
type TableCount struct {
	Table string
	Rows  int
}

// Load ingests the five CSV files from dir inside a single transaction:
// tables are dropped in reverse dependency order, recreated, filled, and
// each one's row count verified against its CSV before commit. Any
// failure rolls the whole run back, leaving no partially-loaded state.
func Load(ctx context.Context, db *sql.DB, dir string) ([]TableCount, error) {
	// Verify every input exists before touching the schema.
	for _, t := range Tables {
		path := filepath.Join(dir, t.CSVFile)
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingInput, path)
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning load transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i := len(Tables) - 1; i >= 0; i-- {
		if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+Tables[i].Name); err != nil {
			return nil, &LoadError{Table: Tables[i].Name, Err: err}
		}
	}
	for _, t := range Tables {
		if _, err := tx.ExecContext(ctx, t.Schema); err != nil {
			return nil, &LoadError{Table: t.Name, Err: err}
		}
	}

	counts := make([]TableCount, 0, len(Tables))
	for _, t := range Tables {
		rows, err := loadTable(ctx, tx, t, filepath.Join(dir, t.CSVFile))
		if err != nil {
			return nil, err
		}
		counts = append(counts, TableCount{Table: t.Name, Rows: rows})
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing load: %w", err)
	}
	return counts, nil
}

func loadTable(ctx context.Context, tx *sql.Tx, t Table, path string) (int, error) {
	header, records, err := csvio.ReadFile(path)
	if err != nil {
		return 0, &LoadError{Table: t.Name, Err: err}
	}
	if len(header) != t.Columns {
		return 0, &LoadError{Table: t.Name, Err: fmt.Errorf("expected %d columns, got %d", t.Columns, len(header))}
	}

	stmt, err := tx.PrepareContext(ctx, t.Insert)
	if err != nil {
		return 0, &LoadError{Table: t.Name, Err: err}
	}
	defer stmt.Close()

	for _, record := range records {
		args := make([]any, len(record))
		for i, field := range record {
			args[i] = field
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return 0, &LoadError{Table: t.Name, Err: err}
		}
	}

	var got int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+t.Name).Scan(&got); err != nil {
		return 0, &LoadError{Table: t.Name, Err: err}
	}
	if got != len(records) {
		return 0, fmt.Errorf("%w: table %s expected %d rows, counted %d",
			ErrRowCountMismatch, t.Name, len(records), got)
	}
	return got, nil
}
