// Package conv provides checked integer conversions for values read from
// archives or derived from 64-bit Fock states.
package conv
