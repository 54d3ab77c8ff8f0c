// Package fops implements the fundamental operator set: the ordered list of
// elementary creation/annihilation operator labels of a model, each assigned
// the bit position it occupies in a Fock state.
//
// Operators are labelled by index tuples such as ("up", 0). Positions are
// handed out in insertion order starting at 0.
package fops
