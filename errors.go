package hilbert

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when an index or Fock state lies outside a space.
	ErrOutOfRange = errors.New("out of range")

	// ErrNotFound is returned when a Fock state is not part of a subspace.
	ErrNotFound = errors.New("fock state not found")

	// ErrDuplicateState is returned when a Fock state is added to a subspace twice.
	ErrDuplicateState = errors.New("duplicate fock state")

	// ErrTooManyOperators is returned when 2^n would overflow the space dimension.
	ErrTooManyOperators = errors.New("too many fundamental operators")

	// ErrUnknownOperator is returned when indices are not in the operator set.
	ErrUnknownOperator = errors.New("unknown fundamental operator")

	// ErrOverlap is returned when two subspaces of a partition share a state.
	ErrOverlap = errors.New("subspaces overlap")

	// ErrIncomplete is returned when a partition does not cover its space.
	ErrIncomplete = errors.New("subspaces do not cover the space")
)

// ErrIndexOutOfRange indicates a basis index outside [0, Size).
//
// errors.Is(err, ErrOutOfRange) reports true.
type ErrIndexOutOfRange struct {
	Index int
	Size  uint64
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Size)
}

func (e *ErrIndexOutOfRange) Unwrap() error { return ErrOutOfRange }

// ErrStateOutOfRange indicates a Fock state that does not belong to a full space.
//
// errors.Is(err, ErrOutOfRange) reports true.
type ErrStateOutOfRange struct {
	State FockState
	Dim   uint64
}

func (e *ErrStateOutOfRange) Error() string {
	return fmt.Sprintf("fock state %d out of range for dimension %d", e.State, e.Dim)
}

func (e *ErrStateOutOfRange) Unwrap() error { return ErrOutOfRange }

// ErrStateNotFound indicates a Fock state missing from a subspace.
//
// errors.Is(err, ErrNotFound) reports true.
type ErrStateNotFound struct {
	State    FockState
	Subspace int
}

func (e *ErrStateNotFound) Error() string {
	return fmt.Sprintf("fock state %d not in subspace %d", e.State, e.Subspace)
}

func (e *ErrStateNotFound) Unwrap() error { return ErrNotFound }
