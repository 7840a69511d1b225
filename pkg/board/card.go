package board

import "fmt"

type CardState int

const (
	Hidden CardState = iota
	Revealed
	Matched
)

func (cs CardState) String() string {
	switch cs {
	case Hidden:
		return "Hidden"
	case Revealed:
		return "Revealed"
	case Matched:
		return "Matched"
	default:
		return "Unknown"
	}
}

// Card is one slot of the board. Value and Index never change during a game.
type Card struct {
	Value    int
	Index    int
	Revealed bool
	Matched  bool
}

func (c Card) Row() int { return c.Index / Cols }
func (c Card) Col() int { return c.Index % Cols }

// State collapses the two flags for rendering. Matched implies Revealed.
func (c Card) State() CardState {
	switch {
	case c.Matched:
		return Matched
	case c.Revealed:
		return Revealed
	default:
		return Hidden
	}
}

func (c Card) String() string {
	return fmt.Sprintf("%d(%d,%d)=%d", c.Index, c.Row(), c.Col(), c.Value)
}
