// Package testutil provides testing utilities for hilbert.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe random source for Fock states.
//
// # Random Fock States
//
//	rng := testutil.NewRNG(seed)
//	states := rng.DistinctStates(100, 10) // 100 distinct states below 2^10
//	rng.Shuffle(states)
package testutil
