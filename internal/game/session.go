// internal/game/session.go
//
// Session is the state machine for solving a single riddle.
//
// Transitions on Guess(g):
//   - g matches the answer (case-insensitive) → Solved.
//   - otherwise attempts++, then:
//       attempts == MaxAttempts → Failed (no hint offer on this guess).
//       attempts >= HintThreshold → OfferPrompt while hints remain,
//                                   OfferExhausted once all are used.
//
// RespondHint answers a pending OfferPrompt:
//   "y" → reveal hint[hintsUsed], hintsUsed++
//   "n" → nothing changes
//   anything else → invalid, nothing changes; the next wrong guess offers again.
//
// A guess submitted while an offer is pending discards the offer.

package game

import (
	"strings"

	"github.com/robalobadob/riddleme/internal/catalog"
)

// Session tracks attempts and hints for one riddle.
type Session struct {
	riddle    catalog.Riddle
	hints     catalog.HintList
	state     State
	attempts  int
	hintsUsed int
	offered   bool
}

// GuessResult describes the effect of one guess.
type GuessResult struct {
	Correct  bool      `json:"correct"`
	State    State     `json:"state"`
	Attempts int       `json:"attempts"`
	Offer    HintOffer `json:"hintOffer,omitempty"`
}

// HintResult describes the effect of one reply to a hint prompt.
// Hint is empty when the riddle has fewer hints than the slot consumed.
type HintResult struct {
	Outcome   HintOutcome `json:"outcome"`
	Hint      string      `json:"hint,omitempty"`
	HintsUsed int         `json:"hintsUsed"`
}

// NewSession starts a fresh session in StateAwaitingGuess.
func NewSession(r catalog.Riddle, hints catalog.HintList) *Session {
	return &Session{riddle: r, hints: hints, state: StateAwaitingGuess}
}

func (s *Session) Riddle() catalog.Riddle { return s.riddle }
func (s *Session) State() State { return s.state }
func (s *Session) Attempts() int { return s.attempts }
func (s *Session) HintsUsed() int { return s.hintsUsed }

// HintPending reports whether a y/n hint prompt awaits a reply.
func (s *Session) HintPending() bool { return s.offered }

// Guess applies one attempt.
func (s *Session) Guess(guess string) (GuessResult, error) {
	if s.state != StateAwaitingGuess {
		return s.result(false, OfferNone), ErrGameOver
	}
	s.offered = false

	if s.riddle.Answer.Matches(guess) {
		s.state = StateSolved
		return s.result(true, OfferNone), nil
	}

	s.attempts++
	if s.attempts == MaxAttempts {
		s.state = StateFailed
		return s.result(false, OfferNone), nil
	}

	offer := OfferNone
	if s.attempts >= HintThreshold {
		if s.hintsUsed < catalog.MaxHints {
			s.offered = true
			offer = OfferPrompt
		} else {
			offer = OfferExhausted
		}
	}
	return s.result(false, offer), nil
}

// RespondHint answers the pending hint prompt.
func (s *Session) RespondHint(reply string) (HintResult, error) {
	if s.state != StateAwaitingGuess {
		return HintResult{HintsUsed: s.hintsUsed}, ErrGameOver
	}
	if !s.offered {
		return HintResult{HintsUsed: s.hintsUsed}, ErrNoHintOffer
	}
	s.offered = false

	switch strings.ToLower(strings.TrimSpace(reply)) {
	case "y":
		var text string
		if s.hintsUsed < len(s.hints) {
			text = s.hints[s.hintsUsed]
		}
		s.hintsUsed++
		return HintResult{Outcome: HintRevealed, Hint: text, HintsUsed: s.hintsUsed}, nil
	case "n":
		return HintResult{Outcome: HintDeclined, HintsUsed: s.hintsUsed}, nil
	default:
		return HintResult{Outcome: HintInvalid, HintsUsed: s.hintsUsed}, nil
	}
}

func (s *Session) result(correct bool, offer HintOffer) GuessResult {
	return GuessResult{Correct: correct, State: s.state, Attempts: s.attempts, Offer: offer}
}
