package game

import (
	"math/rand"
	"time"
)

// Rand is the seeded random source owned by a World. Every random decision in a
// round goes through it so a fixed seed replays the same round.
type Rand struct {
	r    *rand.Rand
	seed int64
}

// NewRand creates a source from seed. A zero seed picks one from the clock.
func NewRand(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{r: rand.New(rand.NewSource(seed)), seed: seed}
}

// Seed returns the seed the source was created with.
func (r *Rand) Seed() int64 {
	return r.seed
}

// Intn returns a value in [0, n). n <= 0 yields 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.Intn(n)
}

// IntRange returns a value in [lo, hi], both ends inclusive.
func (r *Rand) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.r.Intn(hi-lo+1)
}

// Float64 returns a value in [0, 1).
func (r *Rand) Float64() float64 {
	return r.r.Float64()
}

// Range returns a value in [lo, hi).
func (r *Rand) Range(lo, hi float64) float64 {
	return lo + r.r.Float64()*(hi-lo)
}

// Chance returns true with probability p.
func (r *Rand) Chance(p float64) bool {
	return r.r.Float64() < p
}
