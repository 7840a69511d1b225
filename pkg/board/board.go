package board

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

const (
	Rows  = 6
	Cols  = 6
	Size  = Rows * Cols
	Pairs = Size / 2
)

var (
	ErrMalformedBoard  = errors.New("board: malformed card layout")
	ErrCardUnavailable = errors.New("board: card already revealed or matched")
)

// Outcome is what a single reveal did to the board.
type Outcome int

const (
	OutcomeRejected Outcome = iota
	OutcomeFirst
	OutcomeMatch
	OutcomeMismatch
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRejected:
		return "Rejected"
	case OutcomeFirst:
		return "First"
	case OutcomeMatch:
		return "Match"
	case OutcomeMismatch:
		return "Mismatch"
	default:
		return "Unknown"
	}
}

// Board holds the 36 cards of a game and its counters. It is not safe for
// concurrent use; game.Session serializes access.
type Board struct {
	Cards        [Size]Card
	Pending      []int
	MatchedPairs int
	Moves        int
	GameOver     bool
	StartTime    time.Time
	EndTime      time.Time

	randomizer *rand.Rand
	now        func() time.Time
}

func NewBoard(seed int64) *Board {
	b := &Board{
		randomizer: rand.New(rand.NewSource(seed)),
		now:        time.Now,
	}
	b.Reset()

	return b
}

// NewBoardFromValues lays out the given values in slot order. Every value in
// 0..Pairs-1 must appear exactly twice.
func NewBoardFromValues(values []int) (*Board, error) {
	if err := validate(values); err != nil {
		return nil, err
	}

	b := &Board{
		randomizer: rand.New(rand.NewSource(time.Now().UnixNano())),
		now:        time.Now,
	}
	b.layout(values)
	b.restart()

	return b, nil
}

func validate(values []int) error {
	if len(values) != Size {
		return fmt.Errorf("%w: %d slots, want %d", ErrMalformedBoard, len(values), Size)
	}

	var seen [Pairs]int
	for i, v := range values {
		if v < 0 || v >= Pairs {
			return fmt.Errorf("%w: slot %d holds value %d", ErrMalformedBoard, i, v)
		}
		seen[v]++
	}
	for v, n := range seen {
		if n != 2 {
			return fmt.Errorf("%w: value %d appears %d times", ErrMalformedBoard, v, n)
		}
	}

	return nil
}

// SetClock replaces the time source. Used by tests.
func (b *Board) SetClock(now func() time.Time) {
	b.now = now
	b.StartTime = now()
}

// Reset reshuffles the values and zeroes every counter and flag.
func (b *Board) Reset() {
	values := make([]int, Size)
	for i := range values {
		values[i] = i % Pairs
	}
	b.randomizer.Shuffle(len(values), func(i, j int) { values[i], values[j] = values[j], values[i] })

	b.layout(values)
	b.restart()
}

func (b *Board) layout(values []int) {
	for i, v := range values {
		b.Cards[i] = Card{Value: v, Index: i}
	}
}

func (b *Board) restart() {
	b.Pending = nil
	b.MatchedPairs = 0
	b.Moves = 0
	b.GameOver = false
	b.StartTime = b.now()
	b.EndTime = time.Time{}
}

// Values returns the card values in slot order.
func (b *Board) Values() []int {
	values := make([]int, Size)
	for i, c := range b.Cards {
		values[i] = c.Value
	}

	return values
}

// MatchedMask has bit i set when slot i is matched.
func (b *Board) MatchedMask() uint64 {
	var mask uint64
	for i, c := range b.Cards {
		if c.Matched {
			mask |= 1 << uint(i)
		}
	}

	return mask
}

func InBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

func Index(row, col int) int {
	return row*Cols + col
}

// Reveal flips the card at row, col for manual play. A mismatched pair still
// face up is hidden before the new card is turned.
func (b *Board) Reveal(row, col int) Outcome {
	if b.GameOver || !InBounds(row, col) {
		return OutcomeRejected
	}

	idx := Index(row, col)
	card := &b.Cards[idx]
	if card.Revealed || card.Matched {
		return OutcomeRejected
	}

	if len(b.Pending) == 2 {
		b.Hide()
	}

	card.Revealed = true
	b.Pending = append(b.Pending, idx)
	if len(b.Pending) < 2 {
		return OutcomeFirst
	}

	return b.compare(b.Pending[0], b.Pending[1])
}

// ApplyPair reveals two cards at once and compares them, as one turn of the
// agent. Both cards must be face down.
func (b *Board) ApplyPair(i, j int) (Outcome, error) {
	if i < 0 || i >= Size || j < 0 || j >= Size || i == j {
		return OutcomeRejected, fmt.Errorf("%w: slots (%d,%d)", ErrMalformedBoard, i, j)
	}
	if b.GameOver {
		return OutcomeRejected, fmt.Errorf("%w: game is over", ErrCardUnavailable)
	}
	for _, idx := range [2]int{i, j} {
		if b.Cards[idx].Revealed || b.Cards[idx].Matched {
			return OutcomeRejected, fmt.Errorf("%w: slot %d", ErrCardUnavailable, idx)
		}
	}

	b.Cards[i].Revealed = true
	b.Cards[j].Revealed = true
	b.Pending = []int{i, j}

	return b.compare(i, j), nil
}

func (b *Board) compare(i, j int) Outcome {
	b.Moves++

	if b.Cards[i].Value != b.Cards[j].Value {
		return OutcomeMismatch
	}

	b.Cards[i].Matched = true
	b.Cards[j].Matched = true
	b.MatchedPairs++
	b.Pending = nil

	if b.MatchedPairs == Pairs {
		b.finish()
	}

	return OutcomeMatch
}

func (b *Board) finish() {
	b.GameOver = true
	b.EndTime = b.now()
}

// HasMismatch reports whether two unmatched cards are waiting to be hidden.
func (b *Board) HasMismatch() bool {
	return len(b.Pending) == 2
}

// Hide turns every pending unmatched card face down again.
func (b *Board) Hide() {
	for _, idx := range b.Pending {
		if !b.Cards[idx].Matched {
			b.Cards[idx].Revealed = false
		}
	}
	b.Pending = nil
}

func (b *Board) Elapsed() time.Duration {
	if b.GameOver {
		return b.EndTime.Sub(b.StartTime)
	}

	return b.now().Sub(b.StartTime)
}
