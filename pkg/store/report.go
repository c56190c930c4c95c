package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Result holds a report query's column names and stringified rows.
type Result struct {
	Columns []string
	Rows    [][]string
}

// Empty reports whether the query returned no rows.
func (r *Result) Empty() bool {
	return len(r.Rows) == 0
}

// RunReport executes the supplied query and scans every column as text,
// so callers can render or persist arbitrary result shapes.
func RunReport(ctx context.Context, db *sql.DB, query string) (*Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("executing report query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading report columns: %w", err)
	}

	result := &Result{Columns: columns}
	for rows.Next() {
		values := make([]sql.NullString, len(columns))
		scanArgs := make([]any, len(columns))
		for i := range values {
			scanArgs[i] = &values[i]
		}
		if err := rows.Scan(scanArgs...); err != nil {
			return nil, fmt.Errorf("scanning report row: %w", err)
		}

		record := make([]string, len(columns))
		for i, v := range values {
			if v.Valid {
				record[i] = v.String
			}
		}
		result.Rows = append(result.Rows, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating report rows: %w", err)
	}
	return result, nil
}
