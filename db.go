// db.go
//
// SQLite helpers for the "sqlite" riddle source.
// Responsibilities:
//   - Opening the SQLite database with safe defaults (WAL, busy timeout).
//   - Applying the embedded migrations (idempotent, recorded in _migrations).
//   - Seeding an empty catalog from the bundled riddle and hint files.
//   - Loading the catalog from the riddles/hints tables.

package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/riddleme/assets"
	"github.com/robalobadob/riddleme/internal/catalog"
)

// openDB opens (and creates if missing) a SQLite database file.
// The parent directory of relative paths such as ./data/riddles.db is created.
func openDB(dsn string) (*sql.DB, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// migrate applies the embedded migrations in lexical order, each inside its
// own transaction, skipping those already recorded in _migrations.
func migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	migs, err := assets.Migrations()
	if err != nil {
		return fmt.Errorf("read migrations: %w", err)
	}

	for _, m := range migs {
		var done int
		err := db.QueryRowContext(ctx, `SELECT 1 FROM _migrations WHERE name=?`, m.Name).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", m.Name).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", m.Name, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO _migrations(name) VALUES (?)`, m.Name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", m.Name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", m.Name, err)
		}
		log.Info().Str("migration", m.Name).Msg("applied")
	}
	return nil
}

// seedCatalog fills an empty riddles table from the bundled data.
func seedCatalog(ctx context.Context, db *sql.DB) error {
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(1) FROM riddles`).Scan(&n); err != nil {
		return fmt.Errorf("count riddles: %w", err)
	}
	if n > 0 {
		return nil
	}

	c, err := catalog.Parse(strings.NewReader(string(assets.Riddles())), strings.NewReader(string(assets.Hints())))
	if err != nil {
		return fmt.Errorf("parse bundled riddles: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, r := range c.Riddles() {
		if _, err := tx.ExecContext(ctx, `INSERT INTO riddles(answer, body) VALUES (?, ?)`, string(r.Answer), r.Text); err != nil {
			return fmt.Errorf("insert riddle %s: %w", r.Answer, err)
		}
		if hints := c.Hints(r.Answer); len(hints) > 0 {
			if _, err := tx.ExecContext(ctx, `INSERT INTO hints(answer, hints) VALUES (?, ?)`, string(r.Answer), strings.Join(hints, ",")); err != nil {
				return fmt.Errorf("insert hints %s: %w", r.Answer, err)
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	log.Info().Int("riddles", c.Len()).Msg("seeded riddle database")
	return nil
}

// loadSQLiteCatalog opens, migrates and seeds the database at path, then
// reads the catalog from it.
func loadSQLiteCatalog(ctx context.Context, path string) (*catalog.Catalog, error) {
	db, err := openDB(path)
	if err != nil {
		return nil, &catalog.SourceError{Source: path, Err: err}
	}
	defer db.Close()

	if err := migrate(ctx, db); err != nil {
		return nil, err
	}
	if err := seedCatalog(ctx, db); err != nil {
		return nil, err
	}
	return catalog.LoadDB(ctx, db)
}
