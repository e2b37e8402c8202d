package model

// Direction is the heading of the snake.
type Direction int

// The four headings. The zero value is Right so a freshly made snake heads right.
const (
	Right Direction = iota
	Left
	Up
	Down
)

// Horizontal steps are twice as wide as vertical ones because a terminal cell
// is roughly twice as tall as it is wide.
const (
	HorizontalStep = 2
	VerticalStep   = 1
)

// Delta returns the (up, right) offset of a single step in direction d.
func (d Direction) Delta() (int, int) {
	switch d {
	case Right:
		return 0, HorizontalStep
	case Left:
		return 0, -HorizontalStep
	case Up:
		return -VerticalStep, 0
	case Down:
		return VerticalStep, 0
	}
	return 0, 0
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Right:
		return Left
	case Left:
		return Right
	case Up:
		return Down
	default:
		return Up
	}
}

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Left:
		return "left"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "unknown"
}
