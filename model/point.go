package model

import "fmt"

// Point is a cell on the board. Up grows downwards, Right grows to the right.
type Point struct {
	Up    int `json:"up"`
	Right int `json:"right"`
}

// Equals checks if 2 points are the same up,right coordinate
func (p Point) Equals(other Point) bool {
	return p.Up == other.Up && p.Right == other.Right
}

// Add returns the point offset by the delta of the given direction.
func (p Point) Add(d Direction) Point {
	du, dr := d.Delta()
	return Point{Up: p.Up + du, Right: p.Right + dr}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.Up, p.Right)
}
