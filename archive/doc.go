// Package archive is a small hierarchical, typed storage layer in the spirit
// of HDF5 groups.
//
// A Group holds named scalar integers, uint64 arrays, string arrays and nested
// groups, plus an optional scheme tag naming the schema of the record stored
// in it. Types that persist themselves implement Writer and pair it with a
// Read function of their own.
//
// A File is the root group of an archive. It is encoded as a fixed binary
// header followed by the codec name and the (optionally compressed) encoded
// group tree:
//
//	f := archive.New()
//	_ = space.WriteArchive(f, "space")
//	_ = archive.Save(ctx, store, "model.hsa", f, archive.WithCompression(archive.CompressionZSTD))
//
//	f, _ = archive.Load(ctx, store, "model.hsa")
//	space, _ := hilbert.ReadSpace(f, "space")
package archive
