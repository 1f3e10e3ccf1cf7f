package searcher

import "golang.org/x/exp/rand"

// RandomSource is the only source of randomness used during move selection.
// Tests inject scripted sources; games use NewRandom.
type RandomSource interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// NewRandom returns a seedable source. Equal seeds produce equal games.
func NewRandom(seed uint64) RandomSource {
	return rand.New(rand.NewSource(seed))
}
