package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/qnkhuat/memorice/pkg/agent"
	"github.com/qnkhuat/memorice/pkg/board"
)

var pairColors = []color.Attribute{
	color.FgRed, color.FgGreen, color.FgYellow, color.FgBlue, color.FgMagenta, color.FgCyan,
	color.FgHiRed, color.FgHiGreen, color.FgHiYellow, color.FgHiBlue, color.FgHiMagenta, color.FgHiCyan,
}

func pairColor(value int) *color.Color {
	c := color.New(pairColors[value%len(pairColors)])
	if value >= len(pairColors) {
		c.Add(color.Underline)
	}
	return c
}

// printSolution writes the board for seed and the agent's plan to w.
func printSolution(w io.Writer, seed int64) error {
	b := board.NewBoard(seed)

	res, err := agent.Solve(b.Values())
	if err != nil {
		return fmt.Errorf("seed %d: %w", seed, err)
	}

	header := color.New(color.FgHiBlack)
	header.Fprintf(w, "seed %d\n", seed)
	for row := 0; row < board.Rows; row++ {
		for col := 0; col < board.Cols; col++ {
			c := b.Cards[board.Index(row, col)]
			pairColor(c.Value).Fprintf(w, " %2d", c.Value+1)
		}
		fmt.Fprintln(w)
	}

	header.Fprintf(w, "\n%d moves, %d states, %.3fs\n", len(res.Plan), res.Expanded, res.Duration.Seconds())
	for i, m := range res.Plan {
		v := b.Cards[m.I].Value
		fmt.Fprintf(w, "%2d. ", i+1)
		pairColor(v).Fprintf(w, "%2d", v+1)
		fmt.Fprintf(w, "  (%d,%d) (%d,%d)\n",
			b.Cards[m.I].Row(), b.Cards[m.I].Col(), b.Cards[m.J].Row(), b.Cards[m.J].Col())
	}

	return nil
}
