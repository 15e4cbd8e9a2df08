// internal/catalog/catalog.go
//
// Riddle catalog: the read-only set of riddles and their hints.
//
// Record format (one per line, both sources):
//   riddles: ANSWER:riddle body text
//   hints:   ANSWER:hint one,hint two,hint three
//
// Loading rules:
//   • A line is kept only if it splits on ':' into exactly two fields.
//     Anything else (blank lines, stray text, bodies containing ':') is skipped.
//   • Answer case is preserved for display; lookups use the case-folded key.
//   • A repeated answer replaces the earlier body but keeps its position.
//   • Hints beyond MaxHints are dropped; an empty hint keeps its position.
//   • Answers differing only in case name the same riddle.
//   • A riddle without a hint record is legal and simply has no hints.
//
// The catalog is built once and never mutated afterwards, so it can be
// shared freely between goroutines.

package catalog

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
)

// MaxHints is the most hints a riddle can carry.
const MaxHints = 3

// Answer is the one-word solution of a riddle.
type Answer string

// Key returns the case-folded comparison key.
func (a Answer) Key() string { return strings.ToLower(string(a)) }

// Matches reports whether guess names this answer, ignoring case only.
// No trimming, plural or fuzzy normalization is applied.
func (a Answer) Matches(guess string) bool {
	return strings.EqualFold(guess, string(a))
}

// Riddle is an immutable riddle body carried together with its answer.
type Riddle struct {
	Answer Answer
	Text   string
}

// HintList holds up to MaxHints hints, revealed strictly in order.
type HintList []string

// Catalog maps answers to riddles and hint lists.
type Catalog struct {
	riddles []Riddle
	index   map[string]int // Answer.Key() -> position in riddles
	hints   map[string]HintList
}

func newCatalog() *Catalog {
	return &Catalog{
		index: make(map[string]int),
		hints: make(map[string]HintList),
	}
}

func (c *Catalog) addRiddle(answer, body string) {
	a := Answer(strings.TrimSpace(answer))
	body = strings.TrimSpace(body)
	if a == "" || body == "" {
		return
	}
	if i, ok := c.index[a.Key()]; ok {
		c.riddles[i] = Riddle{Answer: a, Text: body}
		return
	}
	c.index[a.Key()] = len(c.riddles)
	c.riddles = append(c.riddles, Riddle{Answer: a, Text: body})
}

func (c *Catalog) addHints(answer, raw string) {
	a := Answer(strings.TrimSpace(answer))
	if a == "" {
		return
	}
	// Empty fields keep their slot so later hints stay at their index.
	fields := trimTrailingEmpty(strings.Split(raw, ","))
	if len(fields) > MaxHints {
		fields = fields[:MaxHints]
	}
	var list HintList
	for _, h := range fields {
		list = append(list, strings.TrimSpace(h))
	}
	c.hints[a.Key()] = list
}

// Len returns the number of riddles.
func (c *Catalog) Len() int { return len(c.riddles) }

// Riddles returns a copy of all riddles in load order.
func (c *Catalog) Riddles() []Riddle {
	out := make([]Riddle, len(c.riddles))
	copy(out, c.riddles)
	return out
}

// Lookup finds the riddle for an answer (case-insensitive).
func (c *Catalog) Lookup(answer string) (Riddle, bool) {
	i, ok := c.index[Answer(strings.TrimSpace(answer)).Key()]
	if !ok {
		return Riddle{}, false
	}
	return c.riddles[i], true
}

// Hints returns a copy of the hints recorded for answer, or nil.
func (c *Catalog) Hints(answer Answer) HintList {
	h := c.hints[answer.Key()]
	if h == nil {
		return nil
	}
	return append(HintList(nil), h...)
}

// Hint returns the hint at index i for answer, if one exists.
func (c *Catalog) Hint(answer Answer, i int) (string, bool) {
	h := c.hints[answer.Key()]
	if i < 0 || i >= len(h) {
		return "", false
	}
	return h[i], true
}

// Parse builds a catalog from a riddle source and a hint source.
func Parse(riddles, hints io.Reader) (*Catalog, error) {
	c := newCatalog()
	if err := scanRecords("riddles", riddles, c.addRiddle); err != nil {
		return nil, err
	}
	if err := scanRecords("hints", hints, c.addHints); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFiles reads the riddle and hint files. A missing or unreadable file
// yields a *SourceError.
func LoadFiles(riddlePath, hintPath string) (*Catalog, error) {
	rf, err := os.Open(riddlePath)
	if err != nil {
		return nil, &SourceError{Source: riddlePath, Err: err}
	}
	defer rf.Close()

	hf, err := os.Open(hintPath)
	if err != nil {
		return nil, &SourceError{Source: hintPath, Err: err}
	}
	defer hf.Close()

	c := newCatalog()
	if err := scanRecords(riddlePath, rf, c.addRiddle); err != nil {
		return nil, err
	}
	if err := scanRecords(hintPath, hf, c.addHints); err != nil {
		return nil, err
	}
	return c, nil
}

// scanRecords feeds every well-formed "key:value" line of r to add.
func scanRecords(name string, r io.Reader, add func(key, value string)) error {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		key, value, ok := splitRecord(sc.Text())
		if !ok {
			continue
		}
		add(key, value)
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return &DataFormatError{Source: name, Line: line + 1, Msg: "line too long"}
		}
		return &SourceError{Source: name, Err: err}
	}
	return nil
}

// splitRecord splits a line into exactly two colon-separated fields.
// Trailing empty fields are ignored, so "ANSWER:body:" is still a record.
func splitRecord(s string) (key, value string, ok bool) {
	parts := trimTrailingEmpty(strings.Split(s, ":"))
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}

func trimTrailingEmpty(parts []string) []string {
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}
