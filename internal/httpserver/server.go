// internal/httpserver/server.go
//
// HTTP server wiring for the riddle game ("serve" mode).
// Responsibilities:
//   - Router + middleware (JSON, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health".
//   - Game endpoints: POST /game/new, POST /game/guess, POST /game/hint,
//     GET /game/{id}.
//
// Notes:
//   - Every game is the same state machine the console controller drives;
//     the client replays the console event sequence from the responses.
//   - Answers are never sent to the client.
//   - Games live in the in-memory store and vanish on restart.
//   - A game is forgotten once its final guess is answered; games left
//     idle for idleGameTTL are pruned whenever a new game starts.

package httpserver

import (
	"encoding/json"
	"errors"
	mrand "math/rand/v2"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/riddleme/internal/catalog"
	"github.com/robalobadob/riddleme/internal/game"
	"github.com/robalobadob/riddleme/internal/store"
)

// Server bundles router, game store and the shared catalog.
type Server struct {
	r       *chi.Mux
	store   store.Store
	cat     *catalog.Catalog
	newRand func() *mrand.Rand
}

// New constructs a Server, installs middleware, and registers routes.
// newRand is called once per game; each game owns its generator.
func New(st store.Store, cat *catalog.Catalog, newRand func() *mrand.Rand) *Server {
	s := &Server{r: chi.NewRouter(), store: st, cat: cat, newRand: newRand}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"riddleme","endpoints":["/health","POST /game/new","POST /game/guess","POST /game/hint","GET /game/{id}"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "riddles": s.cat.Len()})
	})

	s.r.Post("/game/new", s.handleNewGame)
	s.r.Post("/game/guess", s.handleGuess)
	s.r.Post("/game/hint", s.handleHint)
	s.r.Get("/game/{id}", s.handleGetGame)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

func writeError(w http.ResponseWriter, status int, code string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}

// gameError maps engine errors to HTTP responses.
func gameError(w http.ResponseWriter, err error) {
	var ide *game.InsufficientDataError
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	case errors.Is(err, game.ErrGameOver):
		writeError(w, http.StatusConflict, "game_over")
	case errors.Is(err, game.ErrNoHintOffer):
		writeError(w, http.StatusConflict, "no_hint_offer")
	case errors.As(err, &ide):
		writeError(w, http.StatusServiceUnavailable, "insufficient_riddles")
	default:
		writeError(w, http.StatusInternalServerError, "internal")
	}
}

// ------------------------------ GAME ---------------------------------------

type newGameRes struct {
	GameID string `json:"gameId"`
	game.Progress
}

// idleGameTTL bounds how long an abandoned game stays in the store.
const idleGameTTL = 30 * time.Minute

// handleNewGame samples a fresh queue and stores the game.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	if n, err := s.store.Prune(r.Context(), idleGameTTL); err != nil {
		log.Warn().Err(err).Msg("prune games")
	} else if n > 0 {
		log.Debug().Int("count", n).Msg("pruned idle games")
	}
	g, err := game.New(s.cat, s.newRand())
	if err != nil {
		log.Error().Err(err).Msg("new game")
		gameError(w, err)
		return
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	log.Info().Str("gameId", g.ID).Msg("game started")
	_ = json.NewEncoder(w).Encode(newGameRes{GameID: g.ID, Progress: g.Progress()})
}

type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}
type guessRes struct {
	game.GuessResult
	Game game.Progress `json:"game"`
}

// handleGuess applies a guess to the active riddle of a game.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	g, err := s.store.Get(r.Context(), req.GameID)
	if err != nil {
		gameError(w, err)
		return
	}
	res, err := g.Guess(req.Guess)
	if err != nil {
		gameError(w, err)
		return
	}
	p := g.Progress()
	_ = json.NewEncoder(w).Encode(guessRes{GuessResult: res, Game: p})
	if p.Status == game.StatusPlaying {
		return
	}
	log.Info().Str("gameId", g.ID).Str("status", string(p.Status)).Msg("game finished")
	if err := s.store.Delete(r.Context(), g.ID); err != nil {
		log.Warn().Err(err).Str("gameId", g.ID).Msg("evict game")
	}
}

type hintReq struct {
	GameID   string `json:"gameId"`
	Response string `json:"response"` // "y" | "n"
}
type hintRes struct {
	game.HintResult
	Game game.Progress `json:"game"`
}

// handleHint answers a pending hint offer.
func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	var req hintReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	g, err := s.store.Get(r.Context(), req.GameID)
	if err != nil {
		gameError(w, err)
		return
	}
	res, err := g.RespondHint(req.Response)
	if err != nil {
		gameError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(hintRes{HintResult: res, Game: g.Progress()})
}

// handleGetGame reports the progress of a game.
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	g, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		gameError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(g.Progress())
}
