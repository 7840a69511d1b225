// Package game owns one board and its agent and serializes every turn made
// on them, whether it comes from a click, the step button or the clock.
package game

import (
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/qnkhuat/memorice/pkg/agent"
	"github.com/qnkhuat/memorice/pkg/board"
)

const (
	DefaultMoveDelay = 500 * time.Millisecond
	DefaultHideDelay = 1000 * time.Millisecond
	EventQueueSize   = 20
)

var (
	ErrBusy       = errors.New("game: agent is already solving or playing")
	ErrGameOver   = errors.New("game: game is over")
	ErrStaleSolve = errors.New("game: board was reset during the search")
)

type Options struct {
	Seed      int64
	MoveDelay time.Duration
	HideDelay time.Duration
	AutoPlay  bool
}

func DefaultOptions() Options {
	return Options{
		Seed:      time.Now().UnixNano(),
		MoveDelay: DefaultMoveDelay,
		HideDelay: DefaultHideDelay,
		AutoPlay:  true,
	}
}

// View is a copy of everything the presentation draws.
type View struct {
	Cards        [board.Size]board.Card
	MatchedPairs int
	Moves        int
	GameOver     bool
	Elapsed      time.Duration
	Agent        agent.Info
	Solving      bool
}

type solveFunc func(values []int, start agent.MatchState) (agent.Result, error)

type Session struct {
	opts  Options
	board *board.Board
	agent *agent.Agent

	solving    bool
	generation int
	shownAt    time.Time
	lastStep   time.Time

	events chan Event
	now    func() time.Time
	solve  solveFunc

	sync.Mutex
}

func NewSession(opts Options) *Session {
	if opts.MoveDelay <= 0 {
		opts.MoveDelay = DefaultMoveDelay
	}
	if opts.HideDelay <= 0 {
		opts.HideDelay = DefaultHideDelay
	}

	return newSession(opts, board.NewBoard(opts.Seed))
}

func newSession(opts Options, b *board.Board) *Session {
	log.Info().Int64("seed", opts.Seed).Msg("new session")

	return &Session{
		opts:   opts,
		board:  b,
		agent:  agent.New(),
		events: make(chan Event, EventQueueSize),
		now:    time.Now,
		solve:  agent.SolveFrom,
	}
}

func (s *Session) Events() <-chan Event {
	return s.events
}

func (s *Session) emit(e Event) {
	select {
	case s.events <- e:
	default:
		log.Debug().Str("event", e.Type().String()).Msg("event queue full, dropped")
	}
}

// Click reveals a card for manual play. Clicks are ignored while the agent
// is solving or playing.
func (s *Session) Click(row, col int) board.Outcome {
	s.Lock()
	defer s.Unlock()

	if s.solving || s.agent.Active() {
		return board.OutcomeRejected
	}

	var first int
	if len(s.board.Pending) == 1 {
		first = s.board.Pending[0]
	}

	out := s.board.Reveal(row, col)
	switch out {
	case board.OutcomeMatch, board.OutcomeMismatch:
		if out == board.OutcomeMismatch {
			s.shownAt = s.now()
		}
		m := agent.Move{I: first, J: board.Index(row, col)}
		if m.I > m.J {
			m.I, m.J = m.J, m.I
		}
		s.emit(EventMove{Move: m, Match: out == board.OutcomeMatch})
		s.checkGameOver()
	}

	return out
}

// Solve plans the remaining pairs and starts the agent. The search runs
// without holding the lock; a reset in the meantime discards the result.
func (s *Session) Solve() error {
	s.Lock()
	if s.solving || s.agent.Active() {
		s.Unlock()
		return ErrBusy
	}
	if s.board.GameOver {
		s.Unlock()
		return ErrGameOver
	}

	s.board.Hide()
	values := s.board.Values()
	start := agent.MatchState(s.board.MatchedMask())
	generation := s.generation
	s.solving = true
	s.Unlock()

	res, err := s.solve(values, start)

	s.Lock()
	defer s.Unlock()

	if generation != s.generation {
		log.Info().Msg("discarding search result for a reset board")
		return ErrStaleSolve
	}
	s.solving = false

	if err != nil {
		log.Warn().Err(err).Dur("duration", res.Duration).Msg("no solution")
		s.emit(EventNoSolution{Err: err})
		return err
	}

	s.agent.Start(res)
	s.lastStep = s.now()
	s.emit(EventSolved{Moves: len(res.Plan), Duration: res.Duration})

	return nil
}

// Step advances the agent by one move.
func (s *Session) Step() (bool, error) {
	s.Lock()
	defer s.Unlock()

	return s.advance(s.now())
}

func (s *Session) advance(now time.Time) (bool, error) {
	ok, err := s.agent.Step(s.board)
	if err != nil {
		log.Error().Err(err).Msg("agent step failed")
		return false, err
	}
	if !ok {
		return false, nil
	}

	s.lastStep = now
	info := s.agent.Info()
	m := s.agent.Plan()[info.CurrentStep-1]
	match := s.board.Cards[m.I].Matched && s.board.Cards[m.J].Matched
	if !match {
		s.shownAt = now
	}
	s.emit(EventMove{Move: m, Match: match, Agent: true})
	s.checkGameOver()

	return true, nil
}

func (s *Session) checkGameOver() {
	if !s.board.GameOver {
		return
	}

	log.Info().Int("moves", s.board.Moves).Dur("elapsed", s.board.Elapsed()).Msg("game over")
	s.emit(EventGameOver{Moves: s.board.Moves, Elapsed: s.board.Elapsed()})
}

// Tick runs the pacing rules: a mismatch stays visible for HideDelay, and
// with AutoPlay the agent moves every MoveDelay once nothing is pending.
func (s *Session) Tick(now time.Time) (bool, error) {
	s.Lock()
	defer s.Unlock()

	changed := false
	if s.board.HasMismatch() && now.Sub(s.shownAt) >= s.opts.HideDelay {
		s.board.Hide()
		s.emit(EventHidden{})
		changed = true
	}

	if s.opts.AutoPlay && s.agent.Active() && !s.board.HasMismatch() &&
		now.Sub(s.lastStep) >= s.opts.MoveDelay {
		ok, err := s.advance(now)
		if err != nil {
			return changed, err
		}
		changed = changed || ok
	}

	return changed, nil
}

// Reset deals a new board and invalidates any plan or running search.
func (s *Session) Reset() {
	s.Lock()
	defer s.Unlock()

	s.generation++
	s.solving = false
	s.agent.Stop()
	s.board.Reset()
	s.shownAt = time.Time{}
	s.lastStep = time.Time{}

	log.Info().Int("generation", s.generation).Msg("board reset")
	s.emit(EventReset{Seed: s.opts.Seed})
}

func (s *Session) Snapshot() View {
	s.Lock()
	defer s.Unlock()

	return View{
		Cards:        s.board.Cards,
		MatchedPairs: s.board.MatchedPairs,
		Moves:        s.board.Moves,
		GameOver:     s.board.GameOver,
		Elapsed:      s.board.Elapsed(),
		Agent:        s.agent.Info(),
		Solving:      s.solving,
	}
}
