package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistinctStates(t *testing.T) {
	rng := NewRNG(4711)

	states := rng.DistinctStates(64, 8)

	require.Len(t, states, 64)
	seen := make(map[uint64]bool)
	for _, s := range states {
		assert.Less(t, s, uint64(256))
		assert.False(t, seen[s], "duplicate state %d", s)
		seen[s] = true
	}
}

func TestDistinctStates_Exhaustive(t *testing.T) {
	rng := NewRNG(1)

	states := rng.DistinctStates(16, 4)

	assert.ElementsMatch(t, []uint64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}, states)
	assert.Panics(t, func() { rng.DistinctStates(17, 4) })
}

func TestState(t *testing.T) {
	rng := NewRNG(4711)

	for range 100 {
		assert.Less(t, rng.State(5), uint64(32))
	}
	assert.Equal(t, uint64(0), rng.State(0))
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	a := rng.DistinctStates(10, 32)

	rng.Reset()
	b := rng.DistinctStates(10, 32)

	assert.Equal(t, a, b)
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestShuffle(t *testing.T) {
	rng := NewRNG(4711)
	states := []uint64{1, 2, 3, 4, 5, 6, 7, 8}

	rng.Shuffle(states)

	assert.ElementsMatch(t, []uint64{1, 2, 3, 4, 5, 6, 7, 8}, states)
}
