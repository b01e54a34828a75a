package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/lixenwraith/blockfall/core"
	"github.com/lixenwraith/blockfall/parameter"
)

// Command is one discrete input applied during a tick. Inputs are
// mutually exclusive per tick; the host picks at most one per frame.
type Command uint8

const (
	CommandNone Command = iota
	CommandMoveLeft
	CommandMoveRight
	CommandMoveDown
	CommandRotate
	CommandRestart
)

// Engine is the synchronous game state machine. The host loop owns it
// exclusively: it calls Tick once per frame with the elapsed time and
// at most one command, and reads a Snapshot for rendering. The engine
// never reads the wall clock, so piece sequences and gravity are fully
// reproducible from the injected random source and the supplied
// elapsed quanta.
type Engine struct {
	board *Board
	piece *activePiece

	score    int
	gameOver bool

	fallTimer    time.Duration
	fallInterval time.Duration

	// colors starts from the variant defaults; config may override
	// entries at startup, after which they stay fixed
	colors [kindCount]core.RGB

	rng *rand.Rand
}

// NewEngine constructs a playing engine with an empty board and a
// freshly spawned piece. Construction is the only place errors can
// occur; once running, all invalid attempts are ordinary boolean
// outcomes.
func NewEngine(width, height int, fallInterval time.Duration, rng *rand.Rand) (*Engine, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("engine: board size %dx%d, both dimensions must be positive", width, height)
	}
	if fallInterval <= 0 {
		return nil, fmt.Errorf("engine: fall interval %v must be positive", fallInterval)
	}
	if rng == nil {
		return nil, fmt.Errorf("engine: random source is required")
	}

	e := &Engine{
		board:        newBoard(width, height),
		fallInterval: fallInterval,
		colors:       kindColors,
		rng:          rng,
	}
	e.spawnPiece()
	return e, nil
}

// SetKindColor overrides one variant's presentation color. Locked
// cells keep the color they were committed with.
func (e *Engine) SetKindColor(k Kind, c core.RGB) {
	if k < kindCount {
		e.colors[k] = c
	}
}

// Tick is the per-frame state transition. While game over, only
// CommandRestart is honored; nothing else mutates the board or piece.
// Otherwise one command is applied through the collision gates, then
// gravity accumulates elapsed time independently of input.
func (e *Engine) Tick(elapsed time.Duration, cmd Command) {
	if e.gameOver {
		if cmd == CommandRestart {
			e.Reset()
		}
		return
	}

	switch cmd {
	case CommandMoveLeft:
		e.translate(-1, 0)
	case CommandMoveRight:
		e.translate(1, 0)
	case CommandMoveDown:
		// Successful manual descent delays the next automatic drop
		if e.translate(0, 1) {
			e.fallTimer = 0
		}
	case CommandRotate:
		e.rotate()
	}

	e.fallTimer += elapsed
	if e.fallTimer >= e.fallInterval {
		if !e.translate(0, 1) {
			e.lockAndClear()
		}
		e.fallTimer = 0
	}
}

// Reset restores the initial playing state: empty board, zero score,
// fresh piece. This is the only path back from game over.
func (e *Engine) Reset() {
	e.board.reset()
	e.score = 0
	e.gameOver = false
	e.fallTimer = 0
	e.spawnPiece()
}

// spawnPiece selects a variant uniformly at random and places it at
// the fixed spawn position: horizontal center, top row, rotation 0.
// A spawn that immediately collides is the board-full end condition.
func (e *Engine) spawnPiece() {
	e.piece = &activePiece{
		kind: Kind(e.rng.Intn(int(kindCount))),
		x:    e.board.width / 2,
		y:    0,
	}
	if e.collides(0, 0, 0) {
		e.gameOver = true
		e.piece = nil
	}
}

// collides reports whether the active piece, shifted by (dx, dy) at
// the given rotation index, violates the left/right/bottom walls or
// overlaps a locked cell. Rows above the visible top are exempt from
// the occupancy check (pieces may spawn partially above the board)
// but never from wall bounds.
func (e *Engine) collides(dx, dy, rotation int) bool {
	if e.piece == nil {
		return true
	}
	states := e.piece.kind.rotations()
	shape := states[rotation%len(states)]

	for _, off := range shape {
		x := e.piece.x + dx + off.dx
		y := e.piece.y + dy + off.dy

		if x < 0 || x >= e.board.width {
			return true
		}
		if y >= e.board.height {
			return true
		}
		if y >= 0 && e.board.occupied(x, y) {
			return true
		}
	}
	return false
}

// translate moves the active piece by one cell if the target position
// is clear. This is the single mutation gate for positions: every
// change passes a collision pre-check, so the piece can never end a
// tick overlapping a locked cell or outside the walls.
func (e *Engine) translate(dx, dy int) bool {
	if e.collides(dx, dy, e.pieceRotation()) {
		return false
	}
	e.piece.x += dx
	e.piece.y += dy
	return true
}

// rotate advances to the next rotation state if it fits in place.
// No wall kick is attempted: a colliding rotation is rejected
// outright and the piece keeps its current state.
func (e *Engine) rotate() bool {
	if e.piece == nil {
		return false
	}
	next := (e.piece.rotation + 1) % len(e.piece.kind.rotations())
	if e.collides(0, 0, next) {
		return false
	}
	e.piece.rotation = next
	return true
}

// pieceRotation returns the current rotation index, 0 when no piece
func (e *Engine) pieceRotation() int {
	if e.piece == nil {
		return 0
	}
	return e.piece.rotation
}

// cellPositions returns the active piece's absolute board coordinates,
// dropping cells above the visible top so callers only see on-board
// or below-top cells
func (e *Engine) cellPositions() []core.Point {
	if e.piece == nil {
		return nil
	}
	cells := make([]core.Point, 0, 4)
	for _, off := range e.piece.shape() {
		x := e.piece.x + off.dx
		y := e.piece.y + off.dy
		if y >= 0 {
			cells = append(cells, core.Point{X: x, Y: y})
		}
	}
	return cells
}

// lockAndClear commits the resting piece's color into the board,
// clears full rows, applies the flat per-line bonus and spawns the
// next piece. Cells still above the top never touch the board array.
func (e *Engine) lockAndClear() {
	color := e.colors[e.piece.kind]
	for _, p := range e.cellPositions() {
		e.board.set(p.X, p.Y, color)
	}
	cleared := e.board.clearFullRows()
	e.score += cleared * parameter.LineBonus
	e.spawnPiece()
}
