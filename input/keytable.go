package input

import (
	"github.com/gdamore/tcell/v2"
)

// KeyTable maps terminal keys to semantic intents. Separate maps for
// special keys and printable runes mirror how tcell reports events.
type KeyTable struct {
	SpecialKeys map[tcell.Key]IntentType
	Runes       map[rune]IntentType
}

// DefaultKeyTable returns the default bindings: arrows like the badge
// original, hjkl aliases, F1-F4 or r to restart
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyLeft:   IntentMoveLeft,
			tcell.KeyRight:  IntentMoveRight,
			tcell.KeyDown:   IntentMoveDown,
			tcell.KeyUp:     IntentRotate,
			tcell.KeyF1:     IntentRestart,
			tcell.KeyF2:     IntentRestart,
			tcell.KeyF3:     IntentRestart,
			tcell.KeyF4:     IntentRestart,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'm': IntentToggleMute,
			'h': IntentMoveLeft,
			'l': IntentMoveRight,
			'j': IntentMoveDown,
			'k': IntentRotate,
			'r': IntentRestart,
		},
	}
}

// Translate resolves a tcell event to an intent. Unknown events and
// unbound keys yield IntentNone.
func (kt *KeyTable) Translate(ev tcell.Event) IntentType {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return IntentNone
	}
	if key.Key() == tcell.KeyRune {
		return kt.Runes[key.Rune()]
	}
	return kt.SpecialKeys[key.Key()]
}
