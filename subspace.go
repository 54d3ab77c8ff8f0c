package hilbert

import (
	"fmt"
	"iter"
	"slices"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/hupe1980/hilbert/internal/container"
)

// Unassigned is the index of a subspace not yet placed in a partition.
const Unassigned = -1

// Subspace is an ordered set of basis Fock states drawn from a full space.
//
// States keep their insertion order; positions are stable once assigned.
// A sorted reverse index maps each state to its position. The zero value
// is an empty subspace with index 0; use NewSubspace(Unassigned) for an
// untagged one.
//
// A Subspace is not safe for concurrent mutation.
type Subspace struct {
	index  int
	states []FockState
	lookup *container.FlatMap[FockState, int]
}

// NewSubspace creates an empty subspace tagged with index.
func NewSubspace(index int) *Subspace {
	return &Subspace{
		index:  index,
		lookup: container.NewFlatMap[FockState, int](0),
	}
}

// AddFockState appends f to the basis. Adding a state that is already
// present fails with ErrDuplicateState and leaves the subspace unchanged.
func (s *Subspace) AddFockState(f FockState) error {
	if s.lookup == nil {
		s.lookup = container.NewFlatMap[FockState, int](0)
	}
	if !s.lookup.Insert(f, len(s.states)) {
		pos, _ := s.lookup.Get(f)
		return fmt.Errorf("%w: %d already at position %d of subspace %d", ErrDuplicateState, f, pos, s.index)
	}
	s.states = append(s.states, f)
	return nil
}

// Size returns the number of basis states.
func (s *Subspace) Size() int {
	return len(s.states)
}

// Equal reports whether both subspaces have the same index and the same
// states in the same order.
func (s *Subspace) Equal(other *Subspace) bool {
	if other == nil {
		return false
	}
	return s.index == other.index && slices.Equal(s.states, other.states)
}

// StateIndex returns the position of f in the basis.
func (s *Subspace) StateIndex(f FockState) (int, error) {
	if s.lookup != nil {
		if pos, ok := s.lookup.Get(f); ok {
			return pos, nil
		}
	}
	return 0, &ErrStateNotFound{State: f, Subspace: s.index}
}

// HasState reports whether f belongs to the subspace.
func (s *Subspace) HasState(f FockState) bool {
	return s.lookup != nil && s.lookup.Contains(f)
}

// FockState returns the i-th basis state.
func (s *Subspace) FockState(i int) (FockState, error) {
	if i < 0 || i >= len(s.states) {
		return 0, &ErrIndexOutOfRange{Index: i, Size: uint64(len(s.states))}
	}
	return s.states[i], nil
}

// FockStates returns all basis states in order.
//
// The slice shares storage with the subspace and must not be modified.
func (s *Subspace) FockStates() []FockState {
	return slices.Clip(s.states)
}

// All iterates over (position, state) pairs in basis order.
func (s *Subspace) All() iter.Seq2[int, FockState] {
	return func(yield func(int, FockState) bool) {
		for i, f := range s.states {
			if !yield(i, f) {
				return
			}
		}
	}
}

// Index returns the index of the subspace within its partition.
func (s *Subspace) Index() int {
	return s.index
}

// SetIndex sets the index of the subspace within its partition.
func (s *Subspace) SetIndex(i int) {
	s.index = i
}

// Bitmap returns the set of basis states as a new 64-bit roaring bitmap.
func (s *Subspace) Bitmap() *roaring64.Bitmap {
	rb := roaring64.New()
	for _, f := range s.states {
		rb.Add(uint64(f))
	}
	return rb
}

// Clone returns a deep copy of the subspace.
func (s *Subspace) Clone() *Subspace {
	c := &Subspace{
		index:  s.index,
		states: slices.Clone(s.states),
	}
	if s.lookup != nil {
		c.lookup = s.lookup.Clone()
	} else {
		c.lookup = container.NewFlatMap[FockState, int](0)
	}
	return c
}
