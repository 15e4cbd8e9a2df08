package game

import (
	"math/rand/v2"

	"github.com/robalobadob/riddleme/internal/catalog"
)

// Select draws count distinct riddles uniformly at random. The returned
// order is the presentation order.
func Select(c *catalog.Catalog, count int, rng *rand.Rand) ([]catalog.Riddle, error) {
	if count <= 0 {
		return nil, nil
	}
	if c == nil || c.Len() < count {
		have := 0
		if c != nil {
			have = c.Len()
		}
		return nil, &InsufficientDataError{Have: have, Need: count}
	}
	pool := c.Riddles()
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	return pool[:count:count], nil
}
