package rules

import (
	"github.com/battlesnakeio/arcade/model"
	"github.com/pkg/errors"
)

// DefaultMaxAttempts bounds the random draws before falling back to a scan.
const DefaultMaxAttempts = 10000

// ErrBoardFull is returned when the snake covers every cell food may use.
var ErrBoardFull = errors.New("rules: no free cell for food")

// FoodSpawner places food on a free cell inside the walls.
type FoodSpawner struct {
	Random      RandomSource
	Width       int
	Height      int
	MaxAttempts int
}

// NewFoodSpawner returns a spawner for the standard walls.
func NewFoodSpawner(random RandomSource) *FoodSpawner {
	return &FoodSpawner{
		Random:      random,
		Width:       WallWidth,
		Height:      WallHeight,
		MaxAttempts: DefaultMaxAttempts,
	}
}

// Spawn picks a random cell two cells inside the walls that the body does not
// cover, with an odd horizontal coordinate so it lines up with the snake's
// stride. If random draws keep hitting the body it scans the area instead.
func (fs *FoodSpawner) Spawn(body []model.Point) (model.Food, error) {
	occupied := occupiedPoints(body)

	attempts := fs.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}
	for i := 0; i < attempts; i++ {
		p := model.Point{
			Right: oddRight(fs.Random.Next(2, fs.Width-2)),
			Up:    fs.Random.Next(2, fs.Height-2),
		}
		if _, ok := occupied[p]; !ok {
			return fs.food(p), nil
		}
	}

	candidates := fs.unoccupiedPoints(occupied)
	if len(candidates) == 0 {
		return model.Food{}, ErrBoardFull
	}
	return fs.food(candidates[fs.Random.Next(0, len(candidates))]), nil
}

func (fs *FoodSpawner) food(p model.Point) model.Food {
	return model.Food{
		Kind:     model.FoodKind(fs.Random.Next(0, len(model.FoodKinds))),
		Position: p,
	}
}

// unoccupiedPoints lists every cell that a random draw could have produced and
// that the snake does not cover.
func (fs *FoodSpawner) unoccupiedPoints(occupied map[model.Point]struct{}) []model.Point {
	var candidates []model.Point
	for up := 2; up < fs.Height-2; up++ {
		for right := oddRight(2); right <= oddRight(fs.Width-3); right += 2 {
			p := model.Point{Up: up, Right: right}
			if _, ok := occupied[p]; !ok {
				candidates = append(candidates, p)
			}
		}
	}
	return candidates
}

func occupiedPoints(body []model.Point) map[model.Point]struct{} {
	occupied := make(map[model.Point]struct{}, len(body))
	for _, b := range body {
		occupied[b] = struct{}{}
	}
	return occupied
}

func oddRight(right int) int {
	if right%2 == 0 {
		return right + 1
	}
	return right
}
