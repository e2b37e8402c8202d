package engine

import "github.com/battlesnakeio/arcade/model"

// Renderer draws the game. Every call is a side effect; the engine never
// reads anything back.
type Renderer interface {
	PrepareCanvas(width, height int)
	RenderWalls(width, height int)
	// RenderSnake draws the snake. clear is the cell the tail just left, or nil
	// to draw the snake from scratch.
	RenderSnake(snake *model.Snake, clear *model.Point)
	RenderFood(food model.Food)
	RenderScore(score int)
	RenderHighScore(score int, highlighted bool)
	RenderGameOver()
}

// InputSource reads the player's keys.
type InputSource interface {
	// PollDirection returns a pressed direction, if any. It never blocks.
	PollDirection() (model.Direction, bool)
	// WaitForRestartChoice blocks until the player picks restart (true) or
	// quit (false).
	WaitForRestartChoice() bool
}
