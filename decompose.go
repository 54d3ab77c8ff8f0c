package hilbert

import (
	"context"

	"golang.org/x/sync/errgroup"
)

const (
	// defaultChunkSize is the minimum number of basis states a worker scans.
	defaultChunkSize = 4096

	// cancelCheckInterval is how many states a worker scans between ctx checks.
	cancelCheckInterval = 1024
)

// QuantumNumber labels a Fock state with a conserved quantity, such as the
// particle number or total spin. States with equal labels share a block.
type QuantumNumber func(f FockState) int64

// chunkBlocks are the blocks found in one contiguous range of the basis.
type chunkBlocks struct {
	order  []int64
	states map[int64][]FockState
}

func (c *chunkBlocks) add(q int64, f FockState) {
	if _, ok := c.states[q]; !ok {
		c.order = append(c.order, q)
	}
	c.states[q] = append(c.states[q], f)
}

// Decompose groups every basis state of space by qn and returns the
// resulting partition.
//
// Blocks appear in the order their first state is met scanning the basis
// in ascending numeric order, and states inside a block are ascending. The
// basis is split into contiguous chunks scanned concurrently; qn must be
// safe for concurrent use.
func Decompose(ctx context.Context, space Space, qn QuantumNumber, optFns ...Option) (*Partition, error) {
	o := applyOptions(optFns)

	dim := space.Size()
	chunks := uint64(o.workers)
	if n := ceilDiv(dim, o.chunkSize); n < chunks {
		chunks = max(n, 1)
	}
	step := ceilDiv(dim, chunks)

	results := make([]chunkBlocks, chunks)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	for c := range chunks {
		lo := c * step
		hi := min(lo+step, dim)
		g.Go(func() error {
			res := chunkBlocks{states: make(map[int64][]FockState)}
			for f := lo; f < hi; f++ {
				if (f-lo)%cancelCheckInterval == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				res.add(qn(FockState(f)), FockState(f))
			}
			results[c] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		o.logger.LogDecompose(ctx, dim, 0, int(chunks), err)
		return nil, err
	}

	p := NewPartition(space)
	blocks := make(map[int64]*Subspace)
	for _, res := range results {
		for _, q := range res.order {
			sub, ok := blocks[q]
			if !ok {
				sub = NewSubspace(Unassigned)
				blocks[q] = sub
				p.Add(sub)
			}
			for _, f := range res.states[q] {
				// Chunks are disjoint, so a state is never added twice.
				_ = sub.AddFockState(f)
			}
		}
	}

	o.logger.LogDecompose(ctx, dim, p.Len(), int(chunks), nil)
	return p, nil
}

func ceilDiv(a, b uint64) uint64 {
	q := a / b
	if a%b != 0 {
		q++
	}
	return q
}
