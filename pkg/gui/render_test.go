package gui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/qnkhuat/memorice/pkg/agent"
	"github.com/qnkhuat/memorice/pkg/board"
	"github.com/qnkhuat/memorice/pkg/game"
)

func TestCardText(t *testing.T) {
	c := board.Card{Value: 11, Index: 4}
	assert.Equal(t, "  ?  ", cardText(c))

	c.Revealed = true
	assert.Equal(t, " 12  ", cardText(c))
}

func TestCardStyle(t *testing.T) {
	c := board.Card{Value: 2}
	bg, fg := cardStyle(c, ThemeBasic)
	assert.Equal(t, ThemeBasic.Hidden, bg)
	assert.Equal(t, ThemeBasic.HiddenText, fg)

	c.Revealed, c.Matched = true, true
	bg, _ = cardStyle(c, ThemeBasic)
	assert.Equal(t, ThemeBasic.Cards[2], bg)
}

func TestStatusText(t *testing.T) {
	v := game.View{Agent: agent.Info{Active: true, TotalSteps: 18, CurrentStep: 4, SearchDuration: 250 * time.Millisecond}}
	s := statusText(v, "", ThemeBasic)
	assert.Contains(t, s, "Step 4/18")
	assert.Contains(t, s, "Search: 0.25s")

	v = game.View{GameOver: true}
	assert.Contains(t, statusText(v, "No solution", ThemeBasic), "GAME OVER!")
	assert.Contains(t, statusText(v, "No solution", ThemeBasic), "No solution")

	assert.Empty(t, statusText(game.View{}, "", ThemeBasic))
}

func TestHeaderText(t *testing.T) {
	v := game.View{Elapsed: 75 * time.Second, Moves: 9, MatchedPairs: 4}
	h := headerText(v, ThemeBasic)
	assert.Contains(t, h, title)
	assert.Contains(t, h, "Time: 1:15")
	assert.Contains(t, h, "Moves: 9")
	assert.Contains(t, h, "Pairs: 4/18")
}

func TestActionEnabled(t *testing.T) {
	idle := game.View{}
	playing := game.View{Agent: agent.Info{Active: true}}
	over := game.View{GameOver: true}

	assert.True(t, actionEnabled(ActionSolve, idle))
	assert.False(t, actionEnabled(ActionSolve, playing))
	assert.False(t, actionEnabled(ActionSolve, over))
	assert.False(t, actionEnabled(ActionSolve, game.View{Solving: true}))

	assert.False(t, actionEnabled(ActionStep, idle))
	assert.True(t, actionEnabled(ActionStep, playing))

	assert.True(t, actionEnabled(ActionReset, over))
}

func TestActionLabel(t *testing.T) {
	assert.Equal(t, "Solve (BFS) [s]", ActionSolve.Label())
	assert.Equal(t, rune(0), Action("other").Key())
}
