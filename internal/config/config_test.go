package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Source != SourceFiles {
		t.Fatalf("expected files source, got %q", cfg.Source)
	}
	if cfg.RiddleFile != "riddles.txt" || cfg.HintFile != "hints.txt" {
		t.Fatalf("unexpected default files: %q %q", cfg.RiddleFile, cfg.HintFile)
	}
	if cfg.Seed != 0 || cfg.Daily {
		t.Fatalf("expected random seeding by default, got seed=%d daily=%v", cfg.Seed, cfg.Daily)
	}
	if !cfg.Color {
		t.Fatal("expected color enabled by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("RIDDLE_SOURCE", " SQLite ")
	t.Setenv("RIDDLE_DB", "/tmp/r.db")
	t.Setenv("RIDDLE_SEED", "42")
	t.Setenv("RIDDLE_DAILY", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Source != SourceSQLite || cfg.DBPath != "/tmp/r.db" {
		t.Fatalf("unexpected source config: %+v", cfg)
	}
	if cfg.Seed != 42 || !cfg.Daily {
		t.Fatalf("unexpected seed config: %+v", cfg)
	}
}

func TestLoadRejectsUnknownSource(t *testing.T) {
	t.Setenv("RIDDLE_SOURCE", "ftp")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown source")
	}
}

func TestLoadRejectsBadSeed(t *testing.T) {
	t.Setenv("RIDDLE_SEED", "not-a-number")
	if _, err := Load(); err == nil {
		t.Fatal("expected parse error")
	}
}
