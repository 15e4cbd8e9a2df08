package game

import (
	"bufio"
	"context"
	"io"
	mrand "math/rand/v2"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/riddleme/internal/catalog"
)

// View renders controller events. Implementations decide the wording; the
// controller only fixes the order in which events happen.
type View interface {
	Rules()
	Riddle(text string)
	GuessPrompt()
	Correct()
	Wrong()
	HintPrompt()
	Hint(text string)
	HintDeclined()
	HintInvalid()
	HintsExhausted()
	Loss()
	Win()
}

// Controller plays a whole run against a line-oriented input.
type Controller struct {
	cat  *catalog.Catalog
	rng  *mrand.Rand
	in   *bufio.Scanner
	view View
}

// NewController wires a catalog, random source, input and view together.
func NewController(c *catalog.Catalog, rng *mrand.Rand, in io.Reader, view View) *Controller {
	return &Controller{cat: c, rng: rng, in: bufio.NewScanner(in), view: view}
}

// Run plays one game to completion and returns StatusWon or StatusLost.
// Running out of input is fatal and returns ErrInputClosed.
func (c *Controller) Run(ctx context.Context) (Status, error) {
	c.view.Rules()

	g, err := New(c.cat, c.rng)
	if err != nil {
		return StatusLost, err
	}
	log.Debug().Str("gameId", g.ID).Msg("game started")

	for {
		r, ok := g.Current()
		if !ok {
			break
		}
		c.view.Riddle(r.Text)
		c.view.GuessPrompt()
		guess, err := c.readLine(ctx)
		if err != nil {
			return StatusPlaying, err
		}

		res, err := g.Guess(guess)
		if err != nil {
			return StatusPlaying, err
		}
		if res.Correct {
			log.Debug().Str("gameId", g.ID).Int("attempts", res.Attempts).Msg("riddle solved")
			c.view.Correct()
			continue
		}
		if res.State == StateFailed {
			break
		}
		c.view.Wrong()

		switch res.Offer {
		case OfferPrompt:
			if err := c.offerHint(ctx, g); err != nil {
				return StatusPlaying, err
			}
		case OfferExhausted:
			c.view.HintsExhausted()
		}
	}

	status := g.Status()
	log.Debug().Str("gameId", g.ID).Str("status", string(status)).Int("solved", g.Solved()).Msg("game finished")
	if status == StatusWon {
		c.view.Win()
	} else {
		c.view.Loss()
	}
	return status, nil
}

func (c *Controller) offerHint(ctx context.Context, g *Game) error {
	c.view.HintPrompt()
	reply, err := c.readLine(ctx)
	if err != nil {
		return err
	}
	hr, err := g.RespondHint(reply)
	if err != nil {
		return err
	}
	switch hr.Outcome {
	case HintRevealed:
		if hr.Hint != "" {
			c.view.Hint(hr.Hint)
		}
	case HintDeclined:
		c.view.HintDeclined()
	default:
		c.view.HintInvalid()
	}
	return nil
}

func (c *Controller) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", ErrInputClosed
	}
	return c.in.Text(), nil
}
