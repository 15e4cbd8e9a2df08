package catalog

import (
	"context"
	"database/sql"
	"fmt"
)

// LoadDB builds a catalog from the riddles and hints tables.
// Hints are stored comma-joined, in the same shape as the hint file.
// The caller owns db and registers the driver.
func LoadDB(ctx context.Context, db *sql.DB) (*Catalog, error) {
	c := newCatalog()
	if err := loadTable(ctx, db, "riddles", `SELECT answer, body FROM riddles ORDER BY id`, c.addRiddle); err != nil {
		return nil, err
	}
	if err := loadTable(ctx, db, "hints", `SELECT answer, hints FROM hints ORDER BY id`, c.addHints); err != nil {
		return nil, err
	}
	return c, nil
}

func loadTable(ctx context.Context, db *sql.DB, table, query string, add func(key, value string)) error {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return &SourceError{Source: table, Err: err}
	}
	defer rows.Close()

	n := 0
	for rows.Next() {
		n++
		var key, value sql.NullString
		if err := rows.Scan(&key, &value); err != nil {
			return &DataFormatError{Source: table, Line: n, Msg: fmt.Sprintf("scan: %v", err)}
		}
		if !key.Valid || !value.Valid {
			continue
		}
		add(key.String, value.String)
	}
	if err := rows.Err(); err != nil {
		return &SourceError{Source: table, Err: err}
	}
	return nil
}
