package agent

import (
	"errors"
	"fmt"
	"time"

	"github.com/qnkhuat/memorice/pkg/board"
)

var ErrInconsistentPlan = errors.New("agent: plan does not fit the board")

type Info struct {
	Active         bool
	TotalSteps     int
	CurrentStep    int
	SearchDuration time.Duration
}

// Stepper replays a plan one move per Advance.
type Stepper struct {
	plan           Plan
	cursor         int
	active         bool
	searchDuration time.Duration
}

func (s *Stepper) Start(plan Plan, searchDuration time.Duration) {
	s.plan = plan
	s.cursor = 0
	s.active = true
	s.searchDuration = searchDuration
}

func (s *Stepper) Stop() {
	s.active = false
}

func (s *Stepper) Active() bool {
	return s.active
}

// Advance applies the next move to b. It returns false without touching the
// board when there is no active plan or the plan is used up. A move that
// points at a card already face up or matched means the plan is stale; the
// stepper stops and ErrInconsistentPlan is returned.
func (s *Stepper) Advance(b *board.Board) (bool, error) {
	if !s.active || s.cursor >= len(s.plan) {
		s.active = false
		return false, nil
	}

	m := s.plan[s.cursor]
	if err := fits(b, m); err != nil {
		s.active = false
		return false, fmt.Errorf("%w: step %d %s: %w", ErrInconsistentPlan, s.cursor, m, err)
	}

	// A mismatch from the previous turn may still be face up.
	b.Hide()

	if _, err := b.ApplyPair(m.I, m.J); err != nil {
		s.active = false
		return false, fmt.Errorf("%w: step %d %s: %w", ErrInconsistentPlan, s.cursor, m, err)
	}

	s.cursor++
	if b.GameOver {
		s.active = false
	}

	return true, nil
}

// fits rejects moves the board cannot take even after pending cards are
// hidden again.
func fits(b *board.Board, m Move) error {
	if m.I < 0 || m.I >= board.Size || m.J < 0 || m.J >= board.Size || m.I == m.J {
		return fmt.Errorf("%w: slots out of range", board.ErrMalformedBoard)
	}
	if b.GameOver {
		return fmt.Errorf("%w: game is over", board.ErrCardUnavailable)
	}
	for _, idx := range [2]int{m.I, m.J} {
		if b.Cards[idx].Matched {
			return fmt.Errorf("%w: slot %d", board.ErrCardUnavailable, idx)
		}
		if b.Cards[idx].Revealed && !pending(b, idx) {
			return fmt.Errorf("%w: slot %d", board.ErrCardUnavailable, idx)
		}
	}

	return nil
}

func pending(b *board.Board, idx int) bool {
	for _, p := range b.Pending {
		if p == idx {
			return true
		}
	}

	return false
}

func (s *Stepper) Info() Info {
	return Info{
		Active:         s.active,
		TotalSteps:     len(s.plan),
		CurrentStep:    s.cursor,
		SearchDuration: s.searchDuration,
	}
}
