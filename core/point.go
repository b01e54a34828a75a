package core

// Point represents a 2D board coordinate
type Point struct {
	X, Y int
}
