package hilbert

import (
	"bytes"
	"context"
	"testing"

	"github.com/hupe1980/hilbert/archive"
	"github.com/hupe1980/hilbert/blobstore"
	"github.com/hupe1980/hilbert/codec"
	"github.com/hupe1980/hilbert/fops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpace_Archive(t *testing.T) {
	t.Run("MatchesStoredDim", func(t *testing.T) {
		f := archive.New()
		g, err := archive.CreateScheme(f, "hs", SpaceScheme)
		require.NoError(t, err)
		require.NoError(t, g.WriteInt("dim", 8))

		got, err := ReadSpace(f, "hs")
		require.NoError(t, err)

		want, err := FullSpace(3)
		require.NoError(t, err)
		assert.True(t, want.Equal(got))
	})

	t.Run("RoundTrip", func(t *testing.T) {
		for _, n := range []int{0, 1, 10, 62, 63} {
			s, err := FullSpace(n)
			require.NoError(t, err)

			f := archive.New()
			require.NoError(t, archive.Write(f, "hs", s))
			assert.Equal(t, SpaceScheme, mustOpen(t, f, "hs").Scheme())

			got, err := ReadSpace(f, "hs")
			require.NoError(t, err)
			assert.Equal(t, s.Size(), got.Size(), "n=%d", n)
		}
	})

	t.Run("NotPowerOfTwo", func(t *testing.T) {
		f := archive.New()
		g, err := archive.CreateScheme(f, "hs", SpaceScheme)
		require.NoError(t, err)
		require.NoError(t, g.WriteInt("dim", 6))

		_, err = ReadSpace(f, "hs")
		assert.ErrorIs(t, err, archive.ErrCorrupt)
	})

	t.Run("WrongScheme", func(t *testing.T) {
		f := archive.New()
		require.NoError(t, archive.Write(f, "sub", newSubspace(t, 0, 1)))

		_, err := ReadSpace(f, "sub")
		assert.ErrorIs(t, err, archive.ErrSchemeMismatch)
	})
}

func mustOpen(t *testing.T, g archive.Group, name string) archive.Group {
	t.Helper()
	sub, err := g.OpenGroup(name)
	require.NoError(t, err)
	return sub
}

func TestSubspace_Archive(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		s := newSubspace(t, 4, 1, 4, 16)

		f := archive.New()
		require.NoError(t, archive.Write(f, "sub", s))

		g := mustOpen(t, f, "sub")
		assert.Equal(t, SubspaceScheme, g.Scheme())
		states, err := g.ReadUint64s("fock_states")
		require.NoError(t, err)
		assert.Equal(t, []uint64{1, 4, 16}, states)

		got, err := ReadSubspace(f, "sub")
		require.NoError(t, err)
		assert.True(t, s.Equal(got))
		assert.Equal(t, 4, got.Index())

		idx, err := got.StateIndex(16)
		require.NoError(t, err)
		assert.Equal(t, 2, idx)
	})

	t.Run("Empty", func(t *testing.T) {
		f := archive.New()
		require.NoError(t, archive.Write(f, "sub", NewSubspace(Unassigned)))

		got, err := ReadSubspace(f, "sub")
		require.NoError(t, err)
		assert.Equal(t, 0, got.Size())
		assert.Equal(t, Unassigned, got.Index())
	})

	t.Run("DuplicateStates", func(t *testing.T) {
		f := archive.New()
		g, err := archive.CreateScheme(f, "sub", SubspaceScheme)
		require.NoError(t, err)
		require.NoError(t, g.WriteInt("index", 0))
		require.NoError(t, g.WriteUint64s("fock_states", []uint64{3, 5, 3}))

		_, err = ReadSubspace(f, "sub")
		assert.ErrorIs(t, err, ErrDuplicateState)
	})

	t.Run("MissingField", func(t *testing.T) {
		f := archive.New()
		g, err := archive.CreateScheme(f, "sub", SubspaceScheme)
		require.NoError(t, err)
		require.NoError(t, g.WriteInt("index", 0))

		_, err = ReadSubspace(f, "sub")
		assert.ErrorIs(t, err, archive.ErrNotFound)
	})
}

func TestPartition_Archive(t *testing.T) {
	space, err := FullSpace(5)
	require.NoError(t, err)
	p, err := Decompose(context.Background(), space, particleNumber)
	require.NoError(t, err)

	f := archive.New()
	require.NoError(t, archive.Write(f, "blocks", p))

	got, err := ReadPartition(f, "blocks")
	require.NoError(t, err)
	assert.True(t, p.Equal(got))
	assert.NoError(t, got.Validate(context.Background()))
}

func TestArchive_SaveLoad(t *testing.T) {
	ctx := context.Background()
	ops := fops.FromBlocks(fops.Block{Name: "up", Size: 3}, fops.Block{Name: "down", Size: 3})
	space, err := NewSpace(ops)
	require.NoError(t, err)
	p, err := Decompose(ctx, space, particleNumber, WithWorkers(4), WithChunkSize(8))
	require.NoError(t, err)

	stores := map[string]blobstore.Store{
		"memory": blobstore.NewMemoryStore(),
		"local":  blobstore.NewLocalStore(t.TempDir()),
	}
	compressions := []archive.Compression{archive.CompressionNone, archive.CompressionLZ4, archive.CompressionZSTD}

	for name, store := range stores {
		for _, c := range compressions {
			t.Run(name+"/"+c.String(), func(t *testing.T) {
				f := archive.New()
				require.NoError(t, archive.Write(f, "fops", ops))
				require.NoError(t, archive.Write(f, "partition", p))

				key := "runs/" + c.String() + ".hsa"
				require.NoError(t, archive.Save(ctx, store, key, f,
					archive.WithCompression(c), archive.WithCodec(codec.JSON{})))

				loaded, err := archive.Load(ctx, store, key)
				require.NoError(t, err)

				gotOps, err := fops.Read(loaded, "fops")
				require.NoError(t, err)
				assert.True(t, ops.Equal(gotOps))

				gotP, err := ReadPartition(loaded, "partition")
				require.NoError(t, err)
				assert.True(t, p.Equal(gotP))

				up1, err := space.FockStateOf(gotOps, fops.Idx("up", 1))
				require.NoError(t, err)
				block, pos, err := gotP.Locate(up1)
				require.NoError(t, err)
				assert.Equal(t, 1, block)
				assert.Equal(t, 1, pos)
			})
		}
	}
}

func TestArchive_EncodeDecode(t *testing.T) {
	s := newSubspace(t, 7, 10, 20, 30)

	f := archive.New()
	require.NoError(t, archive.Write(f, "sub", s))

	var buf bytes.Buffer
	require.NoError(t, f.Encode(&buf))

	decoded, err := archive.Decode(&buf)
	require.NoError(t, err)

	got, err := ReadSubspace(decoded, "sub")
	require.NoError(t, err)
	assert.True(t, s.Equal(got))
}
