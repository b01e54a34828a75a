package engine

import (
	"github.com/lixenwraith/blockfall/core"
)

// Snapshot is a read-only copy of everything a renderer needs for one
// frame. The engine emits state only; presentation concerns like
// widget caching stay on the renderer side.
type Snapshot struct {
	Width  int
	Height int

	// Cells is the locked-cell grid, row-major: Cells[y][x]
	Cells [][]Cell

	Score    int
	GameOver bool

	// Active holds the falling piece's absolute on-board cells and
	// its color; Active is nil while no piece exists (game over)
	Active      []core.Point
	ActiveColor core.RGB
}

// Snapshot copies the current state. The copy shares nothing with the
// engine, so the host may retain it across ticks.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Width:    e.board.width,
		Height:   e.board.height,
		Cells:    make([][]Cell, e.board.height),
		Score:    e.score,
		GameOver: e.gameOver,
	}
	for y := range s.Cells {
		s.Cells[y] = make([]Cell, e.board.width)
		copy(s.Cells[y], e.board.cells[y])
	}
	if e.piece != nil {
		s.Active = e.cellPositions()
		s.ActiveColor = e.colors[e.piece.kind]
	}
	return s
}

// Score returns the current score
func (e *Engine) Score() int { return e.score }

// GameOver reports whether spawning has halted
func (e *Engine) GameOver() bool { return e.gameOver }
