// Package input decodes terminal key events into discrete game
// actions through a declarative key table. Polling is non-blocking:
// the game loop drains at most one event per frame.
package input

// Action is one discrete command decoded from a key event.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionTogglePause
	ActionIncreaseSpeed
	ActionDecreaseSpeed
	ActionZoomIn
	ActionZoomOut
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	// ActionEnter is reserved for entering the entity under the
	// viewpoint. It needs map data that does not exist yet, so
	// dispatch treats it as a no-op.
	ActionEnter
	ActionToggleHelp
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionQuit:
		return "Quit"
	case ActionTogglePause:
		return "TogglePause"
	case ActionIncreaseSpeed:
		return "IncreaseSpeed"
	case ActionDecreaseSpeed:
		return "DecreaseSpeed"
	case ActionZoomIn:
		return "ZoomIn"
	case ActionZoomOut:
		return "ZoomOut"
	case ActionMoveUp:
		return "MoveUp"
	case ActionMoveDown:
		return "MoveDown"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionEnter:
		return "Enter"
	case ActionToggleHelp:
		return "ToggleHelp"
	}
	return "Unknown"
}
