package rules

import "github.com/battlesnakeio/arcade/model"

// CheckCollision looks through the body of the snake and returns the cause of
// death, or an empty string when the position is valid. A body cell on or past
// the wall is a wall collision; more than one body cell on the head is a self
// collision.
func CheckCollision(body []model.Point, head model.Point) string {
	headCount := 0
	for _, p := range body {
		if deathByOutOfBounds(p, WallWidth, WallHeight) {
			return DeathCauseWallCollision
		}
		if p.Equals(head) {
			headCount++
		}
	}
	if headCount > 1 {
		return DeathCauseSnakeSelfCollision
	}
	return ""
}

// The outer ring of the wall rectangle holds the wall glyphs.
func deathByOutOfBounds(p model.Point, width, height int) bool {
	return p.Right < 1 || p.Right >= width-1 || p.Up < 1 || p.Up >= height-1
}
