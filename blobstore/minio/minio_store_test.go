package minio

import (
	"context"
	"io"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/kmeans/blobstore"
)

func TestNewStore_PrefixNormalisation(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		key    string
	}{
		{"Empty", "", "ds/part-00000.vec"},
		{"TrailingSlash", "root/", "root/ds/part-00000.vec"},
		{"NoTrailingSlash", "root", "root/ds/part-00000.vec"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore(nil, "bucket", tt.prefix)
			assert.Equal(t, tt.key, s.key("ds/part-00000.vec"))
		})
	}
}

// TestMinioStore_Integration requires a running MinIO instance.
// Skip if not available.
func TestMinioStore_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	endpoint := "localhost:9000"
	bucket := "test-kmeans"

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
		Secure: false,
	})
	if err != nil {
		t.Skipf("MinIO client creation failed: %v", err)
	}

	ctx := context.Background()

	if _, err := client.ListBuckets(ctx); err != nil {
		t.Skipf("MinIO not available: %v", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	require.NoError(t, err)
	if !exists {
		require.NoError(t, client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}))
	}

	store := NewStore(client, bucket, "test-prefix")

	data := []byte("hello minio world")
	require.NoError(t, store.Put(ctx, "ds/test.bin", data))

	blob, err := store.Open(ctx, "ds/test.bin")
	require.NoError(t, err)
	require.Equal(t, int64(len(data)), blob.Size())

	part := make([]byte, 5)
	n, err := blob.ReadAt(ctx, part, 6)
	require.NoError(t, err)
	require.Equal(t, 5, n)
	assert.Equal(t, "minio", string(part))

	tail := make([]byte, 10)
	n, err = blob.ReadAt(ctx, tail, int64(len(data)-5))
	assert.Equal(t, 5, n)
	assert.ErrorIs(t, err, io.EOF)

	all, err := blobstore.ReadAll(ctx, blob)
	require.NoError(t, err)
	assert.Equal(t, data, all)
	require.NoError(t, blob.Close())

	names, err := store.List(ctx, "ds/")
	require.NoError(t, err)
	assert.Contains(t, names, "ds/test.bin")

	require.NoError(t, store.Delete(ctx, "ds/test.bin"))
	_, err = store.Open(ctx, "ds/test.bin")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}
