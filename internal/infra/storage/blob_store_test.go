package storage

import (
	"context"
	"testing"
	"time"

	"pagecast/config"
	domainerrors "pagecast/internal/domain/errors"
	"pagecast/internal/domain/service"
	"pagecast/internal/infra/resilience"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestStore(t *testing.T, threshold int) *BlobStore {
	t.Helper()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	breaker := resilience.NewCircuitBreaker("test", &config.BreakerConfig{FailureThreshold: threshold, OpenTimeout: time.Minute})

	return NewBlobStore(bucket, breaker, time.Second, nil)
}

func TestBlobStore_PutGetDelete(t *testing.T) {
	store := newTestStore(t, 5)
	ctx := context.Background()
	key := "seattle-wa/joes-pizza/update/x/index.html"

	require.NoError(t, store.Put(ctx, key, []byte("<html>v1</html>"), service.PutOptions{
		ContentType:  "text/html; charset=utf-8",
		CacheControl: "public, max-age=60",
		Metadata:     map[string]string{"page-id": "abc", "expires-at": "2026-09-14T23:59:00Z"},
	}))
	// Overwrite is allowed.
	require.NoError(t, store.Put(ctx, key, []byte("<html>v2</html>"), service.PutOptions{ContentType: "text/html; charset=utf-8"}))

	obj, err := store.Get(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, obj)
	assert.Equal(t, "<html>v2</html>", string(obj.Body))
	assert.Equal(t, "text/html; charset=utf-8", obj.ContentType)
	assert.Empty(t, obj.Metadata["page-id"])

	require.NoError(t, store.Delete(ctx, key))
	obj, err = store.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, obj)

	// Deleting again is a no-op.
	assert.NoError(t, store.Delete(ctx, key))
}

func TestBlobStore_Metadata(t *testing.T) {
	store := newTestStore(t, 5)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "k/index.html", []byte("x"), service.PutOptions{
		Metadata: map[string]string{"expires-at": "2026-09-14T23:59:00Z"},
	}))

	obj, err := store.Get(ctx, "k/index.html")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-14T23:59:00Z", obj.Metadata["expires-at"])
}

func TestBlobStore_MissingIsNil(t *testing.T) {
	store := newTestStore(t, 5)

	obj, err := store.Get(context.Background(), "nothing/here/index.html")
	assert.NoError(t, err)
	assert.Nil(t, obj)
}

func TestBlobStore_TimeoutsBecomeRetryableStoreErrors(t *testing.T) {
	store := newTestStore(t, 2)
	store.timeout = 10 * time.Millisecond
	ctx := context.Background()
	hang := func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}

	err := store.call(ctx, "put", "k/index.html", hang)
	require.Error(t, err)
	assert.True(t, domainerrors.IsRetryable(err))
	assert.Equal(t, "STORE_TIMEOUT", domainerrors.CodeOf(err))

	_ = store.call(ctx, "put", "k/index.html", hang)

	// Two timeouts open the circuit; later calls fail fast.
	err = store.Put(ctx, "k/index.html", []byte("x"), service.PutOptions{})
	assert.ErrorIs(t, err, domainerrors.ErrCircuitOpen)
	assert.True(t, domainerrors.IsRetryable(err))
}
