package agent

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qnkhuat/memorice/pkg/board"
)

func checkPartition(t *testing.T, values []int, plan Plan) {
	t.Helper()

	seen := make(map[int]bool)
	for _, m := range plan {
		assert.Less(t, m.I, m.J, "move %s", m)
		assert.Equal(t, values[m.I], values[m.J], "move %s", m)
		assert.False(t, seen[m.I], "slot %d used twice", m.I)
		assert.False(t, seen[m.J], "slot %d used twice", m.J)
		seen[m.I] = true
		seen[m.J] = true
	}
	assert.Len(t, seen, len(values))
}

func TestSolveRandomBoards(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		values := board.NewBoard(seed).Values()

		res, err := Solve(values)
		require.NoError(t, err, "seed %d", seed)
		require.Len(t, res.Plan, board.Pairs, "seed %d", seed)
		checkPartition(t, values, res.Plan)
		assert.Positive(t, res.Expanded)

		t.Logf("seed %d: expanded=%d duration=%v", seed, res.Expanded, res.Duration)
	}
}

func TestSolveDeterministic(t *testing.T) {
	values := board.NewBoard(42).Values()

	first, err := Solve(values)
	require.NoError(t, err)
	second, err := Solve(values)
	require.NoError(t, err)

	assert.Equal(t, first.Plan, second.Plan)
	assert.Equal(t, first.Expanded, second.Expanded)
}

func TestSolveOrdersPairsByLowerSlot(t *testing.T) {
	values := board.NewBoard(9).Values()

	res, err := Solve(values)
	require.NoError(t, err)

	assert.True(t, sort.SliceIsSorted(res.Plan, func(a, b int) bool {
		return res.Plan[a].I < res.Plan[b].I
	}), "plan %s", res.Plan)
	assert.Equal(t, 0, res.Plan[0].I)
}

func TestSolveAdjacentPair(t *testing.T) {
	// Value 5 sits only at slots 0 and 1; the rest are pairs mirrored across
	// the board.
	values := make([]int, board.Size)
	values[0], values[1] = 5, 5
	next := 0
	for i := 2; i < 2+(board.Size-2)/2; i++ {
		if next == 5 {
			next++
		}
		values[i] = next
		values[board.Size-1-(i-2)] = next
		next++
	}

	b, err := board.NewBoardFromValues(values)
	require.NoError(t, err)

	res, err := Solve(values)
	require.NoError(t, err)
	assert.Contains(t, res.Plan, Move{I: 0, J: 1})

	var s Stepper
	s.Start(res.Plan, res.Duration)
	for i := 0; i < len(res.Plan); i++ {
		ok, err := s.Advance(b)
		require.NoError(t, err)
		require.True(t, ok)
	}
	assert.True(t, b.Cards[0].Matched)
	assert.True(t, b.Cards[1].Matched)
}

func TestSolveSmallBoards(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		plan   Plan
	}{
		{"one pair", []int{3, 3}, Plan{{0, 1}}},
		{"crossed", []int{1, 0, 0, 1}, Plan{{0, 3}, {1, 2}}},
		{"nested", []int{0, 1, 2, 2, 1, 0}, Plan{{0, 5}, {1, 4}, {2, 3}}},
		{"four of a kind", []int{7, 7, 7, 7}, Plan{{0, 1}, {2, 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Solve(tt.values)
			require.NoError(t, err)
			assert.Equal(t, tt.plan, res.Plan)
		})
	}
}

func TestSolveFrom(t *testing.T) {
	values := []int{0, 1, 0, 2, 1, 2}

	res, err := SolveFrom(values, MatchState(0).With(Move{I: 0, J: 2}))
	require.NoError(t, err)
	assert.Equal(t, Plan{{1, 4}, {3, 5}}, res.Plan)

	res, err = SolveFrom(values, complete(len(values)))
	require.NoError(t, err)
	assert.Empty(t, res.Plan)
}

func TestSolveFailures(t *testing.T) {
	_, err := Solve(nil)
	assert.ErrorIs(t, err, ErrMalformedBoard)

	_, err = Solve([]int{0, 0, 1})
	assert.ErrorIs(t, err, ErrMalformedBoard)

	_, err = Solve(make([]int, 66))
	assert.ErrorIs(t, err, ErrMalformedBoard)

	// Every value appears an odd number of times, so no perfect pairing.
	_, err = Solve([]int{0, 0, 0, 1})
	assert.ErrorIs(t, err, ErrNoSolution)

	_, err = Solve([]int{0, 1, 2, 3})
	assert.ErrorIs(t, err, ErrNoSolution)
}

func TestPlanString(t *testing.T) {
	assert.Equal(t, "(0,3) (1,2)", Plan{{0, 3}, {1, 2}}.String())
}
