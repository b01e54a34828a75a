package engine

import (
	"github.com/lixenwraith/blockfall/core"
)

// Cell is a single board position, either empty or locked with the
// color of the piece that landed there
type Cell struct {
	Occupied bool
	Color    core.RGB
}

// Board is the persistent occupancy record. Dimensions never change
// after construction; every access stays in bounds.
type Board struct {
	width  int
	height int
	cells  [][]Cell // row-major: cells[y][x]
}

// newBoard allocates an all-empty grid
func newBoard(width, height int) *Board {
	b := &Board{width: width, height: height}
	b.cells = make([][]Cell, height)
	for y := range b.cells {
		b.cells[y] = make([]Cell, width)
	}
	return b
}

// Width returns the column count
func (b *Board) Width() int { return b.width }

// Height returns the row count
func (b *Board) Height() int { return b.height }

// At returns the cell at (x, y); callers pass in-bounds coordinates
func (b *Board) At(x, y int) Cell {
	return b.cells[y][x]
}

// occupied reports whether a locked cell sits at (x, y)
func (b *Board) occupied(x, y int) bool {
	return b.cells[y][x].Occupied
}

// set locks a color into (x, y)
func (b *Board) set(x, y int, color core.RGB) {
	b.cells[y][x] = Cell{Occupied: true, Color: color}
}

// reset empties every cell
func (b *Board) reset() {
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = Cell{}
		}
	}
}

// rowFull reports whether every column of row y is occupied
func (b *Board) rowFull(y int) bool {
	for x := 0; x < b.width; x++ {
		if !b.cells[y][x].Occupied {
			return false
		}
	}
	return true
}

// clearFullRows removes every fully-occupied row, inserting an empty
// row at the top for each, and returns how many were removed. Rows
// shift down whole; gaps above a cleared line are not collapsed
// per-column. Scan runs bottom-to-top so stacked full rows clear in
// one pass.
func (b *Board) clearFullRows() int {
	cleared := 0
	y := b.height - 1
	for y >= 0 {
		if b.rowFull(y) {
			b.cells = append(b.cells[:y], b.cells[y+1:]...)
			b.cells = append([][]Cell{make([]Cell, b.width)}, b.cells...)
			cleared++
			// Rows above shifted down into y; do not decrement
		} else {
			y--
		}
	}
	return cleared
}
