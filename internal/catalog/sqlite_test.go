package catalog

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/robalobadob/riddleme/assets"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	migs, err := assets.Migrations()
	if err != nil {
		t.Fatalf("migrations: %v", err)
	}
	for _, m := range migs {
		if _, err := db.Exec(m.SQL); err != nil {
			t.Fatalf("apply %s: %v", m.Name, err)
		}
	}
	return db
}

func TestLoadDB(t *testing.T) {
	db := openTestDB(t)
	stmts := []string{
		`INSERT INTO riddles(answer, body) VALUES ('ANCHOR', 'what can be dropped but never breaks?')`,
		`INSERT INTO riddles(answer, body) VALUES ('ECHO', 'what speaks without a mouth?')`,
		`INSERT INTO riddles(answer, body) VALUES ('  ', 'blank answers are skipped')`,
		`INSERT INTO hints(answer, hints) VALUES ('anchor', 'it is used on boats,it is heavy')`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			t.Fatalf("exec %q: %v", s, err)
		}
	}

	c, err := LoadDB(context.Background(), db)
	if err != nil {
		t.Fatalf("load db: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 riddles, got %d", c.Len())
	}
	if got, ok := c.Hint("ANCHOR", 0); !ok || got != "it is used on boats" {
		t.Fatalf("expected first anchor hint, got %q (%v)", got, ok)
	}
	if c.Hints("ECHO") != nil {
		t.Fatal("expected no echo hints")
	}
}

func TestLoadDBMissingTables(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if _, err := LoadDB(context.Background(), db); err == nil {
		t.Fatal("expected error for missing tables")
	}
}
