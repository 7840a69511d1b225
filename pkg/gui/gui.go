// Package gui draws a memorice session with tview and turns key presses,
// clicks and clock ticks into session calls.
package gui

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"

	"github.com/qnkhuat/memorice/pkg/board"
	"github.com/qnkhuat/memorice/pkg/game"
)

const TickInterval = 100 * time.Millisecond

type UI struct {
	App     *tview.Application
	Board   *tview.Table
	Header  *tview.TextView
	Status  *tview.TextView
	Layout  *tview.Grid
	buttons map[Action]*tview.Button

	session *game.Session
	theme   Theme
	message string
	fatal   error
}

func New(session *game.Session, theme Theme) *UI {
	ui := &UI{
		App:     tview.NewApplication(),
		Board:   tview.NewTable(),
		Header:  tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignCenter),
		Status:  tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignCenter),
		buttons: make(map[Action]*tview.Button),
		session: session,
		theme:   theme,
	}

	controls := tview.NewGrid().SetColumns(-1, 18, 2, 18, 2, 18, 2, 10, -1)
	for i, a := range []Action{ActionSolve, ActionReset, ActionStep, ActionQuit} {
		a := a
		btn := tview.NewButton(a.Label()).SetSelectedFunc(func() { ui.do(a) })
		ui.buttons[a] = btn
		controls.AddItem(btn, 0, 1+2*i, 1, 1, 0, 0, false)
	}

	ui.Board.SetSelectable(true, true)
	ui.Board.Select(0, 0).SetSelectedFunc(func(row, col int) {
		out := ui.session.Click(row, col)
		log.Debug().Int("row", row).Int("col", col).Str("outcome", out.String()).Msg("click")
		ui.render()
	})

	ui.Layout = tview.NewGrid().
		SetRows(3, -1, 2*board.Rows+1, 4, 1, -1).
		SetColumns(-1, 6*board.Cols+board.Cols+1, -1).
		AddItem(ui.Header, 0, 0, 1, 3, 0, 0, false).
		AddItem(ui.Board, 2, 1, 1, 1, 0, 0, true).
		AddItem(ui.Status, 3, 0, 1, 3, 0, 0, false).
		AddItem(controls, 4, 0, 1, 3, 0, 0, false)
	ui.Board.SetBorders(true)

	ui.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape {
			ui.do(ActionQuit)
			return nil
		}
		for a := range ui.buttons {
			if event.Rune() == a.Key() {
				ui.do(a)
				return nil
			}
		}
		return event
	})

	ui.render()

	return ui
}

// do runs a control. Solving happens off the UI goroutine.
func (ui *UI) do(a Action) {
	switch a {
	case ActionQuit:
		ui.App.Stop()
	case ActionReset:
		ui.session.Reset()
		ui.render()
	case ActionStep:
		if _, err := ui.session.Step(); err != nil {
			ui.fail(err)
			return
		}
		ui.render()
	case ActionSolve:
		go func() {
			if err := ui.session.Solve(); err != nil && !errors.Is(err, game.ErrBusy) {
				log.Info().Err(err).Msg("solve did not start")
			}
			ui.App.QueueUpdateDraw(ui.render)
		}()
	}
}

// fail stops the application on an invariant violation.
func (ui *UI) fail(err error) {
	log.Error().Err(err).Msg("fatal")
	ui.fatal = err
	ui.App.Stop()
}

func (ui *UI) render() {
	v := ui.session.Snapshot()

	for _, c := range v.Cards {
		ui.Board.SetCell(c.Row(), c.Col(), cardCell(c, ui.theme))
	}
	ui.Header.SetText(headerText(v, ui.theme))
	ui.Status.SetText(statusText(v, ui.message, ui.theme))

	for a, btn := range ui.buttons {
		color := tcell.ColorWhite
		if !actionEnabled(a, v) {
			color = tcell.ColorGray
		}
		btn.SetLabelColor(color)
	}
}

// handleEvents turns session events into the message line.
func (ui *UI) handleEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case e := <-ui.session.Events():
			log.Debug().Str("event", e.Type().String()).Msg(e.String())
			if e.Type() == game.TypeEventHidden {
				continue
			}
			msg := e.String()
			ui.App.QueueUpdateDraw(func() {
				ui.message = msg
				ui.render()
			})
		}
	}
}

// Run blocks until the user quits or a fatal error stops the application.
func (ui *UI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go ui.handleEvents(ctx)
	go game.NewClock(TickInterval).Run(ctx, func(now time.Time) {
		if _, err := ui.session.Tick(now); err != nil {
			ui.App.QueueUpdate(func() { ui.fail(err) })
			return
		}
		ui.App.QueueUpdateDraw(ui.render)
	})

	if err := ui.App.SetRoot(ui.Layout, true).EnableMouse(true).Run(); err != nil {
		return err
	}

	return ui.fatal
}
