package parameter

import "time"

// Board Geometry
const (
	// DefaultBoardWidth and DefaultBoardHeight match the badge play
	// field this game was written for; both are config-overridable
	// and fixed for the lifetime of an engine once constructed
	DefaultBoardWidth  = 40
	DefaultBoardHeight = 9
)

// Gravity Timing
const (
	// DefaultFallInterval is the descent period before gravity forces
	// the active piece down one row
	DefaultFallInterval = 500 * time.Millisecond

	// FrameInterval is the host poll cadence; the engine accepts any
	// elapsed quantum, this only sets input responsiveness
	FrameInterval = 50 * time.Millisecond
)

// Scoring
const (
	// LineBonus is flat per cleared row; clearing k rows in one lock
	// scores exactly k*LineBonus, no multi-line multiplier
	LineBonus = 100
)
