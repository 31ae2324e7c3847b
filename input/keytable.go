package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to actions without function pointers. Special
// (non-rune) keys and rune keys are looked up separately.
type KeyTable struct {
	Special map[tcell.Key]Action
	Runes   map[rune]Action
}

// DefaultKeyTable returns the default key bindings.
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Special: map[tcell.Key]Action{
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyUp:     ActionMoveUp,
			tcell.KeyDown:   ActionMoveDown,
			tcell.KeyLeft:   ActionMoveLeft,
			tcell.KeyRight:  ActionMoveRight,
			tcell.KeyEnter:  ActionEnter,
		},
		Runes: map[rune]Action{
			' ': ActionTogglePause,
			'+': ActionIncreaseSpeed,
			'=': ActionIncreaseSpeed,
			'-': ActionDecreaseSpeed,
			'_': ActionDecreaseSpeed,
			'z': ActionZoomIn,
			'Z': ActionZoomIn,
			'x': ActionZoomOut,
			'X': ActionZoomOut,
			'h': ActionToggleHelp,
			'H': ActionToggleHelp,
			'?': ActionToggleHelp,
			'q': ActionQuit,
			'Q': ActionQuit,
		},
	}
}

// Lookup translates a key event into an action. Unbound keys decode
// to ActionNone.
func (t *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		if a, ok := t.Runes[ev.Rune()]; ok {
			return a
		}
		return ActionNone
	}
	if a, ok := t.Special[ev.Key()]; ok {
		return a
	}
	return ActionNone
}
