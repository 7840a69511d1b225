// Package agent solves a memorice board with a breadth-first search and
// replays the resulting plan against the live board one move at a time.
package agent

import (
	"github.com/rs/zerolog/log"

	"github.com/qnkhuat/memorice/pkg/board"
)

// Agent couples a solve with the stepper that plays it back on one board.
type Agent struct {
	Stepper
	last Result
}

func New() *Agent {
	return &Agent{}
}

// Solve plans the pairs that are still unmatched on b and starts stepping.
// On failure the stepper stays inactive.
func (a *Agent) Solve(b *board.Board) (Result, error) {
	res, err := SolveFrom(b.Values(), MatchState(b.MatchedMask()))
	if err != nil {
		log.Warn().Err(err).Dur("duration", res.Duration).Int("expanded", res.Expanded).Msg("no solution")
		a.Stop()
		return res, err
	}

	a.Start(res)

	return res, nil
}

// Start begins stepping through an already computed result.
func (a *Agent) Start(res Result) {
	a.last = res
	a.Stepper.Start(res.Plan, res.Duration)
	log.Info().
		Int("moves", len(res.Plan)).
		Int("expanded", res.Expanded).
		Dur("duration", res.Duration).
		Msg("solution found")
}

func (a *Agent) Step(b *board.Board) (bool, error) {
	return a.Advance(b)
}

func (a *Agent) Plan() Plan {
	return a.last.Plan
}
