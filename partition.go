package hilbert

import (
	"context"
	"fmt"
	"slices"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// Partition splits a full space into disjoint subspaces, typically the
// invariant subspaces of a Hamiltonian.
type Partition struct {
	space     Space
	subspaces []*Subspace
}

// NewPartition returns an empty partition of space.
func NewPartition(space Space) *Partition {
	return &Partition{space: space}
}

// Space returns the partitioned full space.
func (p *Partition) Space() Space {
	return p.space
}

// Add appends sub and tags it with its position, which is returned.
func (p *Partition) Add(sub *Subspace) int {
	i := len(p.subspaces)
	sub.SetIndex(i)
	p.subspaces = append(p.subspaces, sub)
	return i
}

// Len returns the number of subspaces.
func (p *Partition) Len() int {
	return len(p.subspaces)
}

// Subspace returns the i-th subspace.
func (p *Partition) Subspace(i int) (*Subspace, error) {
	if i < 0 || i >= len(p.subspaces) {
		return nil, &ErrIndexOutOfRange{Index: i, Size: uint64(len(p.subspaces))}
	}
	return p.subspaces[i], nil
}

// Subspaces returns the subspaces in index order.
func (p *Partition) Subspaces() []*Subspace {
	return slices.Clip(p.subspaces)
}

// Locate returns the subspace holding f and the position of f within it.
func (p *Partition) Locate(f FockState) (block, pos int, err error) {
	if !p.space.HasState(f) {
		return 0, 0, &ErrStateOutOfRange{State: f, Dim: p.space.Size()}
	}
	for i, sub := range p.subspaces {
		if pos, err := sub.StateIndex(f); err == nil {
			return i, pos, nil
		}
	}
	return 0, 0, &ErrStateNotFound{State: f, Subspace: Unassigned}
}

// Equal reports whether both partitions cover the same space with equal
// subspaces in the same order.
func (p *Partition) Equal(other *Partition) bool {
	if other == nil {
		return false
	}
	return p.space.Equal(other.space) && slices.EqualFunc(p.subspaces, other.subspaces, (*Subspace).Equal)
}

// Validate checks that every state lies in the space, that subspaces are
// pairwise disjoint and that together they cover the whole basis.
func (p *Partition) Validate(ctx context.Context, optFns ...Option) error {
	o := applyOptions(optFns)
	err := p.validate(ctx)
	o.logger.WithDim(p.space.Size()).LogValidate(ctx, len(p.subspaces), err)
	return err
}

func (p *Partition) validate(ctx context.Context) error {
	seen := roaring64.New()
	for i, sub := range p.subspaces {
		if err := ctx.Err(); err != nil {
			return err
		}
		if sub.Index() != i {
			return fmt.Errorf("%w: subspace at position %d has index %d", ErrOutOfRange, i, sub.Index())
		}
		for _, f := range sub.FockStates() {
			if !p.space.HasState(f) {
				return &ErrStateOutOfRange{State: f, Dim: p.space.Size()}
			}
		}
		rb := sub.Bitmap()
		if seen.Intersects(rb) {
			rb.And(seen)
			return fmt.Errorf("%w: subspace %d shares state %d", ErrOverlap, i, rb.Minimum())
		}
		seen.Or(rb)
	}
	if got := seen.GetCardinality(); got != p.space.Size() {
		return fmt.Errorf("%w: %d of %d states assigned", ErrIncomplete, got, p.space.Size())
	}
	return nil
}
