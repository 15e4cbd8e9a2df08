// internal/game/types.go
//
// Core type definitions for the riddle game engine.
// Defines:
//   - State: per-riddle session state (awaiting guess / solved / failed).
//   - HintOffer: what a wrong guess unlocks (nothing / a y-n prompt / "no hints left").
//   - HintOutcome: how a reply to the hint prompt was handled.
//   - Status: coarse run status (playing / won / lost).
//   - Rule constants shared by the session and the controller.

package game

import (
	"errors"
	"fmt"
)

const (
	// QueueSize is how many riddles one run samples.
	QueueSize = 5
	// MaxAttempts is the wrong-guess count that loses the riddle (and the run).
	MaxAttempts = 10
	// HintThreshold is the wrong-guess count from which hints are offered.
	HintThreshold = 3
)

// State is the lifecycle of one riddle session.
type State string

const (
	StateAwaitingGuess State = "awaiting_guess"
	StateSolved        State = "solved"
	StateFailed        State = "failed"
)

// HintOffer tells the driver what to do after a wrong guess.
type HintOffer string

const (
	OfferNone      HintOffer = ""          // too early for hints, or the riddle just ended
	OfferPrompt    HintOffer = "prompt"    // ask the player y/n
	OfferExhausted HintOffer = "exhausted" // every hint has been used
)

// HintOutcome is the result of answering a hint prompt.
type HintOutcome string

const (
	HintRevealed HintOutcome = "revealed"
	HintDeclined HintOutcome = "declined"
	HintInvalid  HintOutcome = "invalid"
)

// Status is the overall state of a run.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

var (
	ErrInputClosed = errors.New("input closed")
	ErrGameOver    = errors.New("game finished")
	ErrNoHintOffer = errors.New("no hint offer pending")
)

// InsufficientDataError reports a catalog too small to fill a queue.
type InsufficientDataError struct {
	Have int
	Need int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient riddles: have %d, need %d", e.Have, e.Need)
}
