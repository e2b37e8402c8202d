package model

// Snake is the player. The body is stored tail first, so the head is always
// the last element.
type Snake struct {
	body      []Point
	direction Direction
}

// NewSnake lays out a straight snake of the given length heading right, with
// its head at (startUp, startRight).
func NewSnake(startUp, startRight, length int) *Snake {
	if length < 1 {
		length = 1
	}
	s := &Snake{
		body:      make([]Point, 0, length),
		direction: Right,
	}
	for i := length - 1; i >= 0; i-- {
		s.body = append(s.body, Point{Up: startUp, Right: startRight - i*HorizontalStep})
	}
	return s
}

// Head returns the last point in the body
func (s *Snake) Head() Point {
	return s.body[len(s.body)-1]
}

// Tail returns the first point in the body
func (s *Snake) Tail() Point {
	return s.body[0]
}

// Body returns a copy of the body, tail first.
func (s *Snake) Body() []Point {
	out := make([]Point, len(s.body))
	copy(out, s.body)
	return out
}

// Len is the number of cells the snake occupies.
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction is the heading used by the next Move.
func (s *Snake) Direction() Direction {
	return s.direction
}

// Move advances the snake one step and returns the cell its tail vacated.
func (s *Snake) Move() Point {
	removed := s.body[0]
	s.body = append(s.body[1:], s.Head().Add(s.direction))
	return removed
}

// ChangeDirection sets the heading for the next move. Reversing onto the neck
// is ignored.
func (s *Snake) ChangeDirection(d Direction) {
	if d == s.direction.Opposite() {
		return
	}
	s.direction = d
}

// IncreaseLength grows the snake by n cells at the head, keeping the tail.
func (s *Snake) IncreaseLength(n int) {
	for i := 0; i < n; i++ {
		s.body = append(s.body, s.Head().Add(s.direction))
	}
}

// Occupies reports whether any body cell is at p.
func (s *Snake) Occupies(p Point) bool {
	for _, b := range s.body {
		if b.Equals(p) {
			return true
		}
	}
	return false
}
