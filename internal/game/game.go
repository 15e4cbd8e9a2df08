// internal/game/game.go
//
// Game is one full run: a queue of QueueSize riddles played strictly in order,
// one Session at a time.
//
// Status transitions:
//   - playing → lost as soon as any session fails (remaining riddles are dropped).
//   - playing → won once the last queued riddle is solved.
//
// Game is safe for concurrent use; the HTTP store may hand the same game to
// overlapping requests.

package game

import (
	"crypto/rand"
	"encoding/hex"
	mrand "math/rand/v2"
	"sync"

	"github.com/robalobadob/riddleme/internal/catalog"
)

// Game holds the session queue and the active session.
type Game struct {
	ID string // Unique game identifier (random hex string).

	mu      sync.Mutex
	cat     *catalog.Catalog
	queue   []catalog.Riddle
	pos     int
	current *Session
	status  Status
}

// Progress is a read-only snapshot of a game.
type Progress struct {
	Status    Status `json:"state"`
	Index     int    `json:"index"` // 0-based position of the active riddle
	Total     int    `json:"total"`
	Riddle    string `json:"riddle,omitempty"`
	Attempts  int    `json:"attempts"`
	HintsUsed int    `json:"hintsUsed"`
}

// New samples a queue from c and opens a session on its first riddle.
func New(c *catalog.Catalog, rng *mrand.Rand) (*Game, error) {
	queue, err := Select(c, QueueSize, rng)
	if err != nil {
		return nil, err
	}
	g := &Game{
		ID:     randomID(),
		cat:    c,
		queue:  queue,
		status: StatusPlaying,
	}
	g.open()
	return g, nil
}

func (g *Game) open() {
	r := g.queue[g.pos]
	g.current = NewSession(r, g.cat.Hints(r.Answer))
}

// Status reports whether the run is still playing, won or lost.
func (g *Game) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status
}

// Current returns the riddle being solved, if the run is still playing.
func (g *Game) Current() (catalog.Riddle, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.status != StatusPlaying {
		return catalog.Riddle{}, false
	}
	return g.current.Riddle(), true
}

// Solved returns how many riddles have been solved so far.
func (g *Game) Solved() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.status == StatusWon {
		return len(g.queue)
	}
	return g.pos
}

// Progress returns a snapshot of the run.
func (g *Game) Progress() Progress {
	g.mu.Lock()
	defer g.mu.Unlock()
	p := Progress{Status: g.status, Index: g.pos, Total: len(g.queue)}
	if g.status == StatusPlaying {
		p.Riddle = g.current.Riddle().Text
		p.Attempts = g.current.Attempts()
		p.HintsUsed = g.current.HintsUsed()
	}
	return p
}

// Guess applies a guess to the active session and advances the queue.
func (g *Game) Guess(guess string) (GuessResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.status != StatusPlaying {
		return GuessResult{}, ErrGameOver
	}
	res, err := g.current.Guess(guess)
	if err != nil {
		return res, err
	}
	switch res.State {
	case StateSolved:
		g.pos++
		if g.pos == len(g.queue) {
			g.status = StatusWon
			g.current = nil
		} else {
			g.open()
		}
	case StateFailed:
		g.status = StatusLost
		g.current = nil
	}
	return res, nil
}

// RespondHint answers the active session's pending hint prompt.
func (g *Game) RespondHint(reply string) (HintResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.status != StatusPlaying {
		return HintResult{}, ErrGameOver
	}
	return g.current.RespondHint(reply)
}

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
