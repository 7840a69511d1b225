package gui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/qnkhuat/memorice/pkg/board"
	"github.com/qnkhuat/memorice/pkg/game"
)

const title = "MEMORICE - SEARCH AGENT"

// colorTag turns a color into a tview dynamic color tag
func colorTag(c tcell.Color) string {
	if c == tcell.ColorDefault || c.Hex() == -1 {
		return "[-]"
	}
	return fmt.Sprintf("[#%06x]", c.Hex())
}

// cardText is the label drawn on a card: the pair number once face up
func cardText(c board.Card) string {
	if c.State() == board.Hidden {
		return "  ?  "
	}
	return fmt.Sprintf(" %2d  ", c.Value+1)
}

// cardStyle returns the background and text colors of a card
func cardStyle(c board.Card, t Theme) (tcell.Color, tcell.Color) {
	switch c.State() {
	case board.Matched, board.Revealed:
		bg := t.Cards[c.Value%board.Pairs]
		return bg, TextOn(bg)
	default:
		return t.Hidden, t.HiddenText
	}
}

func cardCell(c board.Card, t Theme) *tview.TableCell {
	bg, fg := cardStyle(c, t)
	cell := tview.NewTableCell(cardText(c)).
		SetAlign(tview.AlignCenter).
		SetBackgroundColor(bg).
		SetTextColor(fg)
	if c.State() == board.Matched {
		cell.SetAttributes(tcell.AttrBold)
	}
	return cell
}

// headerText shows time, moves and pairs above the board
func headerText(v game.View, t Theme) string {
	return fmt.Sprintf("%s%s[-]\n\n%sTime: %s    Moves: %d    Pairs: %d/%d[-]",
		colorTag(t.Title), title,
		colorTag(t.Info), game.FormatElapsed(v.Elapsed), v.Moves, v.MatchedPairs, board.Pairs)
}

// statusText describes what the agent is doing, plus the last message
func statusText(v game.View, message string, t Theme) string {
	var lines []string

	switch {
	case v.GameOver:
		lines = append(lines, colorTag(t.GameOver)+"GAME OVER![-]")
	case v.Solving:
		lines = append(lines, colorTag(t.Status)+"Searching for a solution...[-]")
	case v.Agent.Active:
		lines = append(lines, fmt.Sprintf("%sAgent solving... Step %d/%d[-]",
			colorTag(t.Status), v.Agent.CurrentStep, v.Agent.TotalSteps))
	}

	if v.Agent.SearchDuration > 0 && (v.Agent.Active || v.GameOver) {
		lines = append(lines, fmt.Sprintf("%sSearch: %.2fs[-]", colorTag(t.Info), v.Agent.SearchDuration.Seconds()))
	}

	if message != "" {
		lines = append(lines, colorTag(t.Info)+message+"[-]")
	}

	return strings.Join(lines, "\n")
}

// actionEnabled mirrors the rules the session enforces
func actionEnabled(a Action, v game.View) bool {
	switch a {
	case ActionSolve:
		return !v.Solving && !v.Agent.Active && !v.GameOver
	case ActionStep:
		return v.Agent.Active && !v.GameOver
	default:
		return true
	}
}
