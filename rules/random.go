package rules

import (
	"math/rand"
	"sync"
)

// RandomSource draws uniform integers from the half-open range [min, max).
type RandomSource interface {
	Next(min, max int) int
}

// NewRandom returns a RandomSource backed by math/rand with the given seed.
func NewRandom(seed int64) RandomSource {
	return &mathRandom{r: rand.New(rand.NewSource(seed))}
}

type mathRandom struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (m *mathRandom) Next(min, max int) int {
	if max <= min {
		return min
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return min + m.r.Intn(max-min)
}
