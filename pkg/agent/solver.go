package agent

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const maxSlots = 64

var (
	ErrMalformedBoard = errors.New("agent: malformed board")
	ErrNoSolution     = errors.New("agent: no solution")
)

// Move matches the cards at slots I and J, I < J.
type Move struct {
	I, J int
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.I, m.J)
}

type Plan []Move

func (p Plan) String() string {
	var b strings.Builder
	for i, m := range p {
		if i > 0 {
			b.WriteRune(' ')
		}
		b.WriteString(m.String())
	}

	return b.String()
}

// MatchState has bit i set once slot i is matched. It only tracks pairing
// progress, never which cards are face up.
type MatchState uint64

func (s MatchState) Matched(i int) bool {
	return s&(1<<uint(i)) != 0
}

func (s MatchState) With(m Move) MatchState {
	return s | 1<<uint(m.I) | 1<<uint(m.J)
}

func complete(n int) MatchState {
	if n == maxSlots {
		return ^MatchState(0)
	}

	return MatchState(1)<<uint(n) - 1
}

type Result struct {
	Plan     Plan
	Duration time.Duration
	Expanded int
}

// Solve searches from the all-unmatched state.
func Solve(values []int) (Result, error) {
	return SolveFrom(values, 0)
}

type node struct {
	state  MatchState
	parent int
	move   Move
}

// SolveFrom runs a breadth-first search over match states starting at
// start. Successors are generated with i ascending, then j ascending, and
// the first goal state dequeued wins.
func SolveFrom(values []int, start MatchState) (Result, error) {
	n := len(values)
	if n == 0 || n%2 != 0 || n > maxSlots {
		return Result{}, fmt.Errorf("%w: %d slots", ErrMalformedBoard, n)
	}

	began := time.Now()
	goal := complete(n)
	start &= goal
	partners := partnerTable(values)

	// The queue doubles as the predecessor table: parent is an index into it.
	queue := []node{{state: start, parent: -1}}
	visited := map[MatchState]struct{}{start: {}}

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if cur.state == goal {
			return Result{
				Plan:     unwind(queue, head),
				Duration: time.Since(began),
				Expanded: head + 1,
			}, nil
		}

		for i := 0; i < n; i++ {
			if cur.state.Matched(i) {
				continue
			}
			for _, j := range partners[i] {
				if cur.state.Matched(j) {
					continue
				}
				m := Move{I: i, J: j}
				next := cur.state.With(m)
				if _, ok := visited[next]; ok {
					continue
				}
				visited[next] = struct{}{}
				queue = append(queue, node{state: next, parent: head, move: m})
			}
		}
	}

	return Result{Duration: time.Since(began), Expanded: len(queue)}, ErrNoSolution
}

// partnerTable lists, for every slot i, the slots j > i holding the same
// value in ascending order.
func partnerTable(values []int) [][]int {
	partners := make([][]int, len(values))
	for i := range values {
		for j := i + 1; j < len(values); j++ {
			if values[i] == values[j] {
				partners[i] = append(partners[i], j)
			}
		}
	}

	return partners
}

func unwind(queue []node, idx int) Plan {
	depth := 0
	for i := idx; queue[i].parent >= 0; i = queue[i].parent {
		depth++
	}

	plan := make(Plan, depth)
	for i := idx; queue[i].parent >= 0; i = queue[i].parent {
		depth--
		plan[depth] = queue[i].move
	}

	return plan
}
