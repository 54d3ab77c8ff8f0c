package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// State returns a random state with only the lowest n bits possibly set.
func (r *RNG) State(n int) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64() & mask(n)
}

// DistinctStates returns count distinct random states below 2^n, in random
// order. It panics if fewer than count such states exist.
func (r *RNG) DistinctStates(count, n int) []uint64 {
	if n < 63 && uint64(count) > uint64(1)<<uint(n) {
		panic("testutil: not enough distinct states")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	m := mask(n)
	seen := make(map[uint64]struct{}, count)
	out := make([]uint64, 0, count)
	for len(out) < count {
		s := r.rand.Uint64() & m
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// Shuffle randomizes the order of states in place.
func (r *RNG) Shuffle(states []uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Shuffle(len(states), func(i, j int) {
		states[i], states[j] = states[j], states[i]
	})
}

func mask(n int) uint64 {
	switch {
	case n <= 0:
		return 0
	case n >= 64:
		return ^uint64(0)
	default:
		return uint64(1)<<uint(n) - 1
	}
}
