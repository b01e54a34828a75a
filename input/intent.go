package input

import (
	"github.com/lixenwraith/blockfall/engine"
)

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents, handled by the host loop
	IntentQuit       // q, ESC, Ctrl+C
	IntentToggleMute // m

	// Game intents, forwarded to the engine as commands
	IntentMoveLeft  // left arrow, h
	IntentMoveRight // right arrow, l
	IntentMoveDown  // down arrow, j
	IntentRotate    // up arrow, k
	IntentRestart   // r, F1-F4
)

// Command maps a game intent to its engine command. System intents
// map to CommandNone; the host consumes those before ticking.
func (i IntentType) Command() engine.Command {
	switch i {
	case IntentMoveLeft:
		return engine.CommandMoveLeft
	case IntentMoveRight:
		return engine.CommandMoveRight
	case IntentMoveDown:
		return engine.CommandMoveDown
	case IntentRotate:
		return engine.CommandRotate
	case IntentRestart:
		return engine.CommandRestart
	default:
		return engine.CommandNone
	}
}
