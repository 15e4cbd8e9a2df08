// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// Holds in-progress games for the HTTP surface.
//
// Characteristics:
//   - Stores *game.Game objects keyed by ID in a map.
//   - Every Save/Get refreshes the entry's last-access time; Prune drops
//     entries idle for longer than a given duration.
//   - Concurrency-safe via a mutex.
//   - State is lost when the process restarts.
//   - Get returns ErrNotFound for unknown IDs.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/riddleme/internal/game"
)

var ErrNotFound = errors.New("game not found")

// Store defines the lookup interface for game runs.
type Store interface {
	// Save adds or replaces a game.
	Save(ctx context.Context, g *game.Game) error

	// Get retrieves a game by ID.
	Get(ctx context.Context, id string) (*game.Game, error)

	// Delete forgets a game. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error

	// Prune forgets games not accessed within idle and reports how many.
	Prune(ctx context.Context, idle time.Duration) (int, error)
}

type entry struct {
	g        *game.Game
	lastSeen time.Time
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.Mutex
	games map[string]*entry // keyed by Game.ID
	now   func() time.Time
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return newMemory(time.Now)
}

func newMemory(now func() time.Time) *memory {
	return &memory{games: make(map[string]*entry), now: now}
}

func (m *memory) Save(ctx context.Context, g *game.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = &entry{g: g, lastSeen: m.now()}
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*game.Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	e.lastSeen = m.now()
	return e.g, nil
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, id)
	return nil
}

func (m *memory) Prune(ctx context.Context, idle time.Duration) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cutoff := m.now().Add(-idle)
	n := 0
	for id, e := range m.games {
		if e.lastSeen.Before(cutoff) {
			delete(m.games, id)
			n++
		}
	}
	return n, nil
}
