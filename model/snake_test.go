package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSnake(t *testing.T) {
	s := NewSnake(5, 7, 4)
	require.Equal(t, 4, s.Len())
	require.Equal(t, Point{Up: 5, Right: 7}, s.Head())
	require.Equal(t, Point{Up: 5, Right: 1}, s.Tail())
	require.Equal(t, Right, s.Direction())
	requireContiguous(t, s.Body())
}

func TestSnakeMoveConservesLength(t *testing.T) {
	s := NewSnake(5, 7, 4)
	turns := []Direction{Down, Down, Left, Up, Up, Right, Down, Left}
	for _, d := range turns {
		before := s.Head()
		tail := s.Tail()
		s.ChangeDirection(d)
		removed := s.Move()

		require.Equal(t, tail, removed)
		require.Equal(t, 4, s.Len())
		require.Equal(t, before.Add(s.Direction()), s.Head())
		requireContiguous(t, s.Body())
	}
}

func TestSnakeReversalRejected(t *testing.T) {
	s := NewSnake(5, 7, 4)
	s.ChangeDirection(Left)
	require.Equal(t, Right, s.Direction())
	s.Move()
	require.Equal(t, Point{Up: 5, Right: 9}, s.Head())

	s.ChangeDirection(Up)
	require.Equal(t, Up, s.Direction())
	s.ChangeDirection(Down)
	require.Equal(t, Up, s.Direction())

	s = NewSnake(5, 7, 4)
	s.ChangeDirection(Down)
	require.Equal(t, Down, s.Direction())
	s.ChangeDirection(Down)
	require.Equal(t, Down, s.Direction())
}

func TestSnakeIncreaseLength(t *testing.T) {
	s := NewSnake(5, 7, 4)
	s.IncreaseLength(2)
	require.Equal(t, 6, s.Len())
	require.Equal(t, Point{Up: 5, Right: 11}, s.Head())
	require.Equal(t, Point{Up: 5, Right: 1}, s.Tail())
	requireContiguous(t, s.Body())

	s.Move()
	require.Equal(t, 6, s.Len())
	s.IncreaseLength(0)
	require.Equal(t, 6, s.Len())
}

func TestSnakeBodyIsCopy(t *testing.T) {
	s := NewSnake(5, 7, 4)
	body := s.Body()
	body[0] = Point{Up: 99, Right: 99}
	require.Equal(t, Point{Up: 5, Right: 1}, s.Tail())
}

func TestSnakeOccupies(t *testing.T) {
	s := NewSnake(5, 7, 4)
	require.True(t, s.Occupies(Point{Up: 5, Right: 3}))
	require.False(t, s.Occupies(Point{Up: 5, Right: 4}))
}

func TestDirectionOpposite(t *testing.T) {
	require.Equal(t, Left, Right.Opposite())
	require.Equal(t, Right, Left.Opposite())
	require.Equal(t, Down, Up.Opposite())
	require.Equal(t, Up, Down.Opposite())
}

func requireContiguous(t *testing.T, body []Point) {
	t.Helper()
	for i := 1; i < len(body); i++ {
		du := body[i].Up - body[i-1].Up
		dr := body[i].Right - body[i-1].Right
		if du == 0 {
			require.Contains(t, []int{HorizontalStep, -HorizontalStep}, dr, "cells %d and %d", i-1, i)
		} else {
			require.Equal(t, 0, dr, "cells %d and %d", i-1, i)
			require.Contains(t, []int{VerticalStep, -VerticalStep}, du, "cells %d and %d", i-1, i)
		}
	}
}
