package store

import (
	"context"
	"errors"
	"fmt"
	mrand "math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/robalobadob/riddleme/internal/catalog"
	"github.com/robalobadob/riddleme/internal/game"
)

func newGame(t *testing.T) *game.Game {
	t.Helper()
	var src strings.Builder
	for i := 0; i < game.QueueSize; i++ {
		fmt.Fprintf(&src, "W%d:riddle %d\n", i, i)
	}
	c, err := catalog.Parse(strings.NewReader(src.String()), strings.NewReader(""))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	g, err := game.New(c, mrand.New(mrand.NewPCG(1, 2)))
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	return g
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	g := newGame(t)

	if err := s.Save(ctx, g); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.Get(ctx, g.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != g {
		t.Fatal("expected the stored game pointer")
	}

	if err := s.Delete(ctx, g.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Get(ctx, g.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStorePruneIdle(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s := newMemory(func() time.Time { return now })

	stale, fresh := newGame(t), newGame(t)
	if err := s.Save(ctx, stale); err != nil {
		t.Fatalf("save: %v", err)
	}
	now = now.Add(20 * time.Minute)
	if err := s.Save(ctx, fresh); err != nil {
		t.Fatalf("save: %v", err)
	}
	now = now.Add(20 * time.Minute)

	n, err := s.Prune(ctx, 30*time.Minute)
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 pruned game, got %d", n)
	}
	if _, err := s.Get(ctx, stale.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected stale game gone, got %v", err)
	}
	if _, err := s.Get(ctx, fresh.ID); err != nil {
		t.Fatalf("expected fresh game kept: %v", err)
	}
}

func TestMemoryStoreGetRefreshesAccess(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s := newMemory(func() time.Time { return now })

	g := newGame(t)
	if err := s.Save(ctx, g); err != nil {
		t.Fatalf("save: %v", err)
	}
	now = now.Add(25 * time.Minute)
	if _, err := s.Get(ctx, g.ID); err != nil {
		t.Fatalf("get: %v", err)
	}
	now = now.Add(25 * time.Minute)

	if n, _ := s.Prune(ctx, 30*time.Minute); n != 0 {
		t.Fatalf("expected recently read game to survive, pruned %d", n)
	}
}
