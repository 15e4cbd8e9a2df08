package main

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/robalobadob/riddleme/internal/catalog"
	"github.com/robalobadob/riddleme/internal/config"
	"github.com/robalobadob/riddleme/internal/game"
)

func TestLoadCatalogEmbedded(t *testing.T) {
	c, err := loadCatalog(context.Background(), &config.Config{Source: config.SourceEmbedded})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Len() < game.QueueSize {
		t.Fatalf("expected at least %d bundled riddles, got %d", game.QueueSize, c.Len())
	}
	if h, ok := c.Hint("ANCHOR", 0); !ok || h != "it is used on boats" {
		t.Fatalf("expected bundled anchor hint, got %q (%v)", h, ok)
	}
}

func TestLoadCatalogMissingFiles(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		Source:     config.SourceFiles,
		RiddleFile: filepath.Join(dir, "riddles.txt"),
		HintFile:   filepath.Join(dir, "hints.txt"),
	}
	_, err := loadCatalog(context.Background(), cfg)
	if !errors.Is(err, catalog.ErrSourceUnavailable) {
		t.Fatalf("expected unavailable source, got %v", err)
	}
}

func TestLoadSQLiteCatalogSeedsOnce(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "riddles.db")

	first, err := loadSQLiteCatalog(ctx, path)
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	second, err := loadSQLiteCatalog(ctx, path)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if first.Len() == 0 || first.Len() != second.Len() {
		t.Fatalf("expected stable seeded catalog, got %d then %d", first.Len(), second.Len())
	}

	embedded, err := loadCatalog(ctx, &config.Config{Source: config.SourceEmbedded})
	if err != nil {
		t.Fatalf("load embedded: %v", err)
	}
	if first.Len() != embedded.Len() {
		t.Fatalf("expected %d riddles, got %d", embedded.Len(), first.Len())
	}
	for _, r := range embedded.Riddles() {
		got, ok := second.Lookup(string(r.Answer))
		if !ok || got.Text != r.Text {
			t.Fatalf("riddle %q not seeded correctly", r.Answer)
		}
		if len(second.Hints(r.Answer)) != len(embedded.Hints(r.Answer)) {
			t.Fatalf("hints for %q not seeded correctly", r.Answer)
		}
	}
}

func TestRandSourceFixedSeed(t *testing.T) {
	next := randSource(&config.Config{Seed: 99})
	a, b := next(), next()
	for i := 0; i < 10; i++ {
		if a.Uint64() != b.Uint64() {
			t.Fatal("expected identical streams for a fixed seed")
		}
	}
}

func TestRandSourceDaily(t *testing.T) {
	next := randSource(&config.Config{Daily: true, DailySalt: "salt"})
	if next().Uint64() != next().Uint64() {
		t.Fatal("expected identical streams within a day")
	}
}
