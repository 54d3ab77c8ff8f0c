package hilbert

import (
	"fmt"
	"iter"
	"math/bits"

	"github.com/hupe1980/hilbert/fops"
	"github.com/hupe1980/hilbert/internal/conv"
)

// Space is the full Hilbert space spanned by all Fock states of n
// fundamental operators. Its dimension is 2^n.
//
// The basis is dense and ordered by numeric value, so a Fock state is its own
// index and no states are stored. The zero value is an empty space of
// dimension 0.
type Space struct {
	dim uint64
}

// FullSpace returns the space spanned by n fundamental operators.
// n must be in [0, 63] so that 2^n fits the dimension.
func FullSpace(n int) (Space, error) {
	if n < 0 || n >= MaxOperators {
		return Space{}, fmt.Errorf("%w: %d (max %d)", ErrTooManyOperators, n, MaxOperators-1)
	}
	return Space{dim: 1 << uint(n)}, nil
}

// NewSpace returns the space spanned by all operators of ops.
func NewSpace(ops OperatorSet) (Space, error) {
	return FullSpace(ops.Size())
}

// Size returns the number of basis states.
func (s Space) Size() uint64 {
	return s.dim
}

// NumOperators returns n for a space of dimension 2^n, or 0 for the empty space.
func (s Space) NumOperators() int {
	if s.dim == 0 {
		return 0
	}
	return bits.TrailingZeros64(s.dim)
}

// Equal reports whether both spaces have the same dimension. A full space is
// determined by its operator count, so this is full equality.
func (s Space) Equal(other Space) bool {
	return s.dim == other.dim
}

// HasState reports whether f belongs to the space.
func (s Space) HasState(f FockState) bool {
	return uint64(f) < s.dim
}

// StateIndex returns the basis index of f, which is f itself.
func (s Space) StateIndex(f FockState) (int, error) {
	if uint64(f) >= s.dim {
		return 0, &ErrStateOutOfRange{State: f, Dim: s.dim}
	}
	i, err := conv.Uint64ToInt(uint64(f))
	if err != nil {
		return 0, &ErrStateOutOfRange{State: f, Dim: s.dim}
	}
	return i, nil
}

// FockState returns the i-th basis state, which is i itself.
func (s Space) FockState(i int) (FockState, error) {
	if i < 0 || uint64(i) >= s.dim {
		return 0, &ErrIndexOutOfRange{Index: i, Size: s.dim}
	}
	return FockState(i), nil
}

// FockStateOf returns the Fock state in which exactly the operators labelled
// by indices are occupied. Repeated indices are counted once.
func (s Space) FockStateOf(ops OperatorSet, indices ...fops.Indices) (FockState, error) {
	var f FockState
	for _, idx := range indices {
		pos, ok := ops.Position(idx)
		if !ok {
			return 0, fmt.Errorf("%w: %v", ErrUnknownOperator, idx)
		}
		if pos < 0 || pos >= MaxOperators {
			return 0, fmt.Errorf("%w: operator %v at bit %d", ErrTooManyOperators, idx, pos)
		}
		f |= 1 << uint(pos)
	}
	return f, nil
}

// All iterates over the basis in index order.
func (s Space) All() iter.Seq[FockState] {
	return func(yield func(FockState) bool) {
		for f := uint64(0); f < s.dim; f++ {
			if !yield(FockState(f)) {
				return
			}
		}
	}
}
