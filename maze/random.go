package maze

import (
	"math/rand"
	"time"
)

// RandomSource returns a uniformly distributed integer in [0, n) for n >= 1.
// *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// NewRandomSource returns a deterministic source for the given seed.
func NewRandomSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}

func newTimeSeededSource() RandomSource {
	return NewRandomSource(time.Now().UnixNano())
}
