// Package hilbert represents fermionic many-body Hilbert spaces as bit-encoded
// bases of occupation-number (Fock) states.
//
// A FockState is a 64-bit mask: bit i set means fundamental operator i is
// occupied. Two kinds of basis are provided:
//
//   - Space is the full basis of 2^n states spanned by n fundamental
//     operators. It is dense, so a state is its own index and nothing is stored.
//   - Subspace is an explicit, ordered, append-only subset of a full basis,
//     tagged with a partition index. A sorted reverse index answers
//     state -> position lookups in O(log n).
//
// # Quick Start
//
//	ops := fops.FromBlocks(fops.Block{Name: "up", Size: 2}, fops.Block{Name: "dn", Size: 2})
//	full, _ := hilbert.NewSpace(ops)            // 16 states
//
//	f, _ := full.FockStateOf(ops, fops.Idx("up", 0), fops.Idx("dn", 1))
//	i, _ := full.StateIndex(f)                  // i == int(f)
//
//	sub := hilbert.NewSubspace(0)
//	_ = sub.AddFockState(5)
//	_ = sub.AddFockState(2)
//	pos, _ := sub.StateIndex(2)                 // pos == 1
//
// # Decomposition
//
// Decompose splits a full space into subspaces by a caller-supplied quantum
// number, e.g. the particle number:
//
//	p, _ := hilbert.Decompose(ctx, full, func(f hilbert.FockState) int64 {
//	    return int64(f.Count())
//	})
//
// # Persistence
//
// Space, Subspace and Partition write themselves into archive groups
// ("hilbert_space", "sub_hilbert_space", "hilbert_space_partition"):
//
//	f := archive.New()
//	_ = full.WriteArchive(f, "full")
//	_ = archive.Save(ctx, store, "model.hsa", f)
//
// # Concurrency
//
// Space is an immutable value and safe to share. Subspace and Partition have
// no internal locking; concurrent mutation must be serialized by the caller.
package hilbert
