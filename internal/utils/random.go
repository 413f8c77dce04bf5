package utils

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"time"
)

// Rand is the source of randomness for the simulation. Implementations are not
// required to be safe for concurrent use; callers serialise access.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// NewSeededRand returns a deterministic PCG generator for the given seed
func NewSeededRand(seed int64) *rand.Rand {
	// Non-cryptographic PRNG is intentional for reproducible simulations.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

// NewRand returns a PCG generator seeded from the wall clock
func NewRand() *rand.Rand {
	return NewSeededRand(time.Now().UnixNano())
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// RandomInt returns a random integer between min and max (inclusive)
func RandomInt(r Rand, min, max int) int {
	if min >= max {
		return min
	}
	return r.IntN(max-min+1) + min
}

// Chance reports true with probability p
func Chance(r Rand, p float64) bool {
	return r.Float64() < p
}

// Pick returns a uniformly chosen element. items must not be empty.
func Pick[T any](r Rand, items []T) T {
	return items[r.IntN(len(items))]
}
