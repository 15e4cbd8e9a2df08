// internal/console/view.go
//
// Terminal presentation for the riddle game.
// Implements game.View by printing fixed lines to an io.Writer:
//   - the rules banner at start,
//   - the riddle and a guess prompt for every attempt,
//   - wrong/right feedback and the y/n hint exchange,
//   - a loss message, or a win message plus a yellow ASCII trophy.
//
// Write errors are ignored: a broken terminal surfaces as EOF on input.

package console

import (
	"fmt"
	"io"
	"strings"
)

// ANSI foreground escapes.
const (
	Yellow = "\033[33m"
	Reset  = "\033[0m"
)

const Rules = `welcome to Riddle Me This!

you will be given five random riddles to solve
all answers will be one word answers, other kinds of answers will not be accepted
after three guesses you will be offered a hint
there are three hints for every riddle
solve all five riddles to win the game
if you exceed ten guesses on one riddle, you will automatically lose the game
if you are confident in your guess but it says that it's wrong, try again
with or without an 's' (ex. boat and boats)`

const (
	LossMessage = "wow you suck at this...\nbetter luck next time I guess"
	WinMessage  = "congrats you actually managed to solve all the riddles!\ntoo bad even a 3rd grader could do that..."
)

// Trophy is the prize shown on a win, one line per row.
var Trophy = []string{
	" .  .  .  .",
	`/\_/\_/\_/\`,
	"|          |",
	"|          |",
	"------------",
}

// View writes game events as plain text.
type View struct {
	w     io.Writer
	color bool
}

// New returns a View writing to w. color controls the trophy escape codes.
func New(w io.Writer, color bool) *View {
	return &View{w: w, color: color}
}

func (v *View) println(s string) { _, _ = fmt.Fprintln(v.w, s) }

func (v *View) Rules() { v.println(Rules + "\n") }
func (v *View) Riddle(text string) { v.println(text) }
func (v *View) GuessPrompt() { v.println("enter your guess: ") }
func (v *View) Correct() { v.println("good job! you actually got one!") }
func (v *View) Wrong() { v.println("wrong! how can you not get it?") }
func (v *View) HintPrompt() { v.println("would you like a hint? (y/n): ") }
func (v *View) HintDeclined() { v.println("really? okay... try again I guess") }
func (v *View) HintInvalid() { v.println("that wasn't either option... try again") }
func (v *View) Loss() { v.println(LossMessage) }

func (v *View) HintsExhausted() {
	v.println("you have used all your hints for this riddle, try again!")
}

func (v *View) Hint(text string) {
	v.println("here is your hint: ")
	v.println(text)
}

func (v *View) Win() {
	v.println(WinMessage)
	v.println("congratulations! you have solved all the riddles!")
	v.println("here is your prize:")
	v.println(v.trophy())
}

func (v *View) trophy() string {
	body := strings.Join(Trophy, "\n")
	if !v.color {
		return body
	}
	return Yellow + body + Reset
}
