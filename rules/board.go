package rules

import "time"

// Board geometry. The canvas is wider than the walls to leave room for the
// score panel on the right.
const (
	CanvasWidth  = 140
	CanvasHeight = 31

	WallWidth  = 91
	WallHeight = 31
)

// Starting snake.
const (
	SnakeStartUp    = 5
	SnakeStartRight = 7
	SnakeLength     = 4
)

// Pacing. The interval shrinks by TickStep on every pickup until it reaches
// DefaultMinTickInterval (or whatever floor the caller picks).
const (
	InitialTickInterval    = 150 * time.Millisecond
	TickStep               = 5 * time.Millisecond
	DefaultMinTickInterval = 40 * time.Millisecond
)

// NextTickInterval returns the interval after a pickup, never going below floor.
func NextTickInterval(current, floor time.Duration) time.Duration {
	next := current - TickStep
	if next < floor {
		return floor
	}
	return next
}
