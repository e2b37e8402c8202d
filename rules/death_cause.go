package rules

const (
	// DeathCauseWallCollision is when a snake runs into the wall
	DeathCauseWallCollision = "wall-collision"
	// DeathCauseSnakeSelfCollision is when the head runs into the snake's own body
	DeathCauseSnakeSelfCollision = "self-collision"
	// DeathCauseBoardFull is when no free cell is left for food
	DeathCauseBoardFull = "board-full"
)
