package model

import "github.com/pkg/errors"

// ErrUnknownFood is returned for a food kind outside the known set. It means a
// broken invariant, not a runtime condition.
var ErrUnknownFood = errors.New("model: unknown food kind")

// FoodKind is the variant of a piece of food.
type FoodKind int

// Known food kinds. FoodKinds lists them in spawn order.
const (
	Asterisk FoodKind = iota
	Star
	Sun
)

// FoodKinds holds every spawnable kind.
var FoodKinds = []FoodKind{Asterisk, Star, Sun}

// Points returns the score (and growth) the kind is worth.
func (k FoodKind) Points() (int, error) {
	switch k {
	case Asterisk:
		return 1, nil
	case Star:
		return 1, nil
	case Sun:
		return 2, nil
	}
	return 0, errors.Wrapf(ErrUnknownFood, "kind %d", int(k))
}

func (k FoodKind) String() string {
	switch k {
	case Asterisk:
		return "asterisk"
	case Star:
		return "star"
	case Sun:
		return "sun"
	}
	return "unknown"
}

// Food is the single collectible on the board.
type Food struct {
	Kind     FoodKind `json:"kind"`
	Position Point    `json:"position"`
}
