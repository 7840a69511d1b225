package game

import (
	"fmt"
	"time"

	"github.com/qnkhuat/memorice/pkg/agent"
)

type EventType int

const (
	TypeEventReset EventType = iota
	TypeEventSolved
	TypeEventNoSolution
	TypeEventMove
	TypeEventHidden
	TypeEventGameOver
)

func (t EventType) String() string {
	switch t {
	case TypeEventReset:
		return "TypeEventReset"
	case TypeEventSolved:
		return "TypeEventSolved"
	case TypeEventNoSolution:
		return "TypeEventNoSolution"
	case TypeEventMove:
		return "TypeEventMove"
	case TypeEventHidden:
		return "TypeEventHidden"
	case TypeEventGameOver:
		return "TypeEventGameOver"
	default:
		return "Unknown EventType"
	}
}

type Event interface {
	Type() EventType
	String() string
}

type EventReset struct {
	Seed int64
}

func (e EventReset) Type() EventType { return TypeEventReset }
func (e EventReset) String() string  { return "New board" }

type EventSolved struct {
	Moves    int
	Duration time.Duration
}

func (e EventSolved) Type() EventType { return TypeEventSolved }
func (e EventSolved) String() string {
	return fmt.Sprintf("Solution found: %d moves in %.2fs", e.Moves, e.Duration.Seconds())
}

type EventNoSolution struct {
	Err error
}

func (e EventNoSolution) Type() EventType { return TypeEventNoSolution }
func (e EventNoSolution) String() string  { return "No solution" }

// EventMove is published after each turn, manual or agent.
type EventMove struct {
	Move  agent.Move
	Match bool
	Agent bool
}

func (e EventMove) Type() EventType { return TypeEventMove }
func (e EventMove) String() string {
	who := "Player"
	if e.Agent {
		who = "Agent"
	}
	if e.Match {
		return fmt.Sprintf("%s matched %s", who, e.Move)
	}
	return fmt.Sprintf("%s missed %s", who, e.Move)
}

type EventHidden struct{}

func (e EventHidden) Type() EventType { return TypeEventHidden }
func (e EventHidden) String() string  { return "" }

type EventGameOver struct {
	Moves   int
	Elapsed time.Duration
}

func (e EventGameOver) Type() EventType { return TypeEventGameOver }
func (e EventGameOver) String() string {
	return fmt.Sprintf("Game over! %d moves in %s", e.Moves, FormatElapsed(e.Elapsed))
}
