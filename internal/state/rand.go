package state

import "math/rand/v2"

// Rand is the source of randomness of a game: the growers' findings and the entrance
// chosen by each invading bee. It is implemented by *rand.Rand (math/rand/v2).
//
// Tests can provide a scripted implementation, see statetest.ScriptedRand.
type Rand interface {
	// Float64 returns a number in [0, 1).
	Float64() float64

	// IntN returns a number in [0, n).
	IntN(n int) int
}

// NewRand returns a Rand seeded with seed. If seed is 0, a random seed is used.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
}
