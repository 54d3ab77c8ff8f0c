package minio

import (
	"context"
	"testing"

	"github.com/hupe1980/hilbert/blobstore"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ blobstore.Store = (*Store)(nil)

// TestMinioStore_Integration requires a running MinIO instance.
// Skip if not available.
func TestMinioStore_Integration(t *testing.T) {
	endpoint := "localhost:9000"
	accessKey := "minioadmin"
	secretKey := "minioadmin"
	bucket := "test-hilbert"

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: false,
	})
	if err != nil {
		t.Skipf("MinIO client creation failed: %v", err)
	}

	ctx := context.Background()

	// Check if MinIO is reachable
	_, err = client.ListBuckets(ctx)
	if err != nil {
		t.Skipf("MinIO not available: %v", err)
	}

	// Ensure bucket exists
	exists, err := client.BucketExists(ctx, bucket)
	require.NoError(t, err)
	if !exists {
		err = client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{})
		require.NoError(t, err)
	}

	store := NewStore(client, bucket, "test-prefix/")

	// Test Put and Get
	data := []byte("hello minio world")
	err = store.Put(ctx, "test.hsa", data)
	require.NoError(t, err)

	got, err := store.Get(ctx, "test.hsa")
	require.NoError(t, err)
	require.Equal(t, data, got)

	// Test List
	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Contains(t, names, "test.hsa")

	// Test Delete
	err = store.Delete(ctx, "test.hsa")
	require.NoError(t, err)

	// Verify deleted
	_, err = store.Get(ctx, "test.hsa")
	require.ErrorIs(t, err, blobstore.ErrNotFound)
}
