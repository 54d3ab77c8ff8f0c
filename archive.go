package hilbert

import (
	"fmt"
	"math/bits"
	"strconv"

	"github.com/hupe1980/hilbert/archive"
	"github.com/hupe1980/hilbert/internal/conv"
)

// Archive scheme tags.
const (
	SpaceScheme     = "hilbert_space"
	SubspaceScheme  = "sub_hilbert_space"
	PartitionScheme = "hilbert_space_partition"
)

var (
	_ archive.Writer = Space{}
	_ archive.Writer = (*Subspace)(nil)
	_ archive.Writer = (*Partition)(nil)
)

// WriteArchive stores the space as a "dim" scalar in subgroup name.
// The dimension is kept as the bit pattern of a signed 64-bit integer.
func (s Space) WriteArchive(g archive.Group, name string) error {
	sub, err := archive.CreateScheme(g, name, SpaceScheme)
	if err != nil {
		return err
	}
	return sub.WriteInt("dim", int64(s.dim))
}

// ReadSpace loads a space written by Space.WriteArchive.
func ReadSpace(g archive.Group, name string) (Space, error) {
	sub, err := archive.OpenScheme(g, name, SpaceScheme)
	if err != nil {
		return Space{}, err
	}
	v, err := sub.ReadInt("dim")
	if err != nil {
		return Space{}, err
	}
	dim := uint64(v)
	if dim != 0 && bits.OnesCount64(dim) != 1 {
		return Space{}, fmt.Errorf("%w: %q: dimension %d is not a power of two", archive.ErrCorrupt, name, dim)
	}
	return Space{dim: dim}, nil
}

// WriteArchive stores the subspace index and its states in basis order.
func (s *Subspace) WriteArchive(g archive.Group, name string) error {
	sub, err := archive.CreateScheme(g, name, SubspaceScheme)
	if err != nil {
		return err
	}
	if err := sub.WriteInt("index", int64(s.index)); err != nil {
		return err
	}
	states := make([]uint64, len(s.states))
	for i, f := range s.states {
		states[i] = uint64(f)
	}
	return sub.WriteUint64s("fock_states", states)
}

// ReadSubspace loads a subspace written by Subspace.WriteArchive. Positions
// are rebuilt from the order of the stored states.
func ReadSubspace(g archive.Group, name string) (*Subspace, error) {
	sub, err := archive.OpenScheme(g, name, SubspaceScheme)
	if err != nil {
		return nil, err
	}
	v, err := sub.ReadInt("index")
	if err != nil {
		return nil, err
	}
	index, err := conv.Int64ToInt(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", archive.ErrCorrupt, name, err)
	}
	states, err := sub.ReadUint64s("fock_states")
	if err != nil {
		return nil, err
	}

	s := NewSubspace(index)
	for _, f := range states {
		if err := s.AddFockState(FockState(f)); err != nil {
			return nil, fmt.Errorf("read subspace %q: %w", name, err)
		}
	}
	return s, nil
}

// WriteArchive stores the space and every subspace of the partition.
func (p *Partition) WriteArchive(g archive.Group, name string) error {
	sub, err := archive.CreateScheme(g, name, PartitionScheme)
	if err != nil {
		return err
	}
	if err := p.space.WriteArchive(sub, "space"); err != nil {
		return err
	}
	if err := sub.WriteInt("n_subspaces", int64(len(p.subspaces))); err != nil {
		return err
	}
	for i, s := range p.subspaces {
		if err := s.WriteArchive(sub, strconv.Itoa(i)); err != nil {
			return err
		}
	}
	return nil
}

// ReadPartition loads a partition written by Partition.WriteArchive.
func ReadPartition(g archive.Group, name string) (*Partition, error) {
	sub, err := archive.OpenScheme(g, name, PartitionScheme)
	if err != nil {
		return nil, err
	}
	space, err := ReadSpace(sub, "space")
	if err != nil {
		return nil, err
	}
	v, err := sub.ReadInt("n_subspaces")
	if err != nil {
		return nil, err
	}
	n, err := conv.Int64ToInt(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", archive.ErrCorrupt, name, err)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: %q: negative subspace count %d", archive.ErrCorrupt, name, n)
	}

	p := NewPartition(space)
	for i := range n {
		s, err := ReadSubspace(sub, strconv.Itoa(i))
		if err != nil {
			return nil, err
		}
		if s.Index() != i {
			return nil, fmt.Errorf("%w: %q: subspace %d has index %d", archive.ErrCorrupt, name, i, s.Index())
		}
		p.Add(s)
	}
	return p, nil
}
