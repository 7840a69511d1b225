package gui

// Action labels the controls under the board.
type Action string

const (
	ActionReset Action = "Reset"
	ActionSolve Action = "Solve (BFS)"
	ActionStep  Action = "Step"
	ActionQuit  Action = "Quit"
)

// Key returns the shortcut bound to the action.
func (a Action) Key() rune {
	switch a {
	case ActionReset:
		return 'r'
	case ActionSolve:
		return 's'
	case ActionStep:
		return 'n'
	case ActionQuit:
		return 'q'
	default:
		return 0
	}
}

func (a Action) Label() string {
	return string(a) + " [" + string(a.Key()) + "]"
}
