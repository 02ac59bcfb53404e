// Package storage writes published documents to a gocloud.dev bucket.
package storage

import (
	"context"
	"log/slog"
	"time"

	"pagecast/config"
	domainerrors "pagecast/internal/domain/errors"
	"pagecast/internal/domain/service"
	"pagecast/internal/errors"
	"pagecast/internal/infra/resilience"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

// BlobStore implements service.ObjectStore. Every call is bounded by the
// configured timeout and guarded by a circuit breaker.
type BlobStore struct {
	bucket  *blob.Bucket
	breaker *resilience.CircuitBreaker
	timeout time.Duration
	logger  *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and closes it on shutdown.
func New(params Params) (service.ObjectStore, error) {
	cfg := params.Config.Storage
	bucket, err := blob.OpenBucket(context.Background(), cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewBlobStore(bucket, resilience.NewCircuitBreaker("object-store", params.Config.Breaker), cfg.Timeout, params.Logger), nil
}

// NewBlobStore wraps an open bucket.
func NewBlobStore(bucket *blob.Bucket, breaker *resilience.CircuitBreaker, timeout time.Duration, logger *slog.Logger) *BlobStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &BlobStore{
		bucket:  bucket,
		breaker: breaker,
		timeout: timeout,
		logger:  logger,
	}
}

// Put writes body at key, replacing any existing object.
func (s *BlobStore) Put(ctx context.Context, key string, body []byte, opts service.PutOptions) error {
	return s.call(ctx, "put", key, func(ctx context.Context) error {
		return s.bucket.WriteAll(ctx, key, body, &blob.WriterOptions{
			ContentType:  opts.ContentType,
			CacheControl: opts.CacheControl,
			Metadata:     opts.Metadata,
		})
	})
}

// Get returns the object at key, or nil when there is none.
func (s *BlobStore) Get(ctx context.Context, key string) (*service.StoredObject, error) {
	var obj *service.StoredObject
	err := s.call(ctx, "get", key, func(ctx context.Context) error {
		attrs, err := s.bucket.Attributes(ctx, key)
		if err != nil {
			if gcerrors.Code(err) == gcerrors.NotFound {
				return nil
			}

			return err
		}

		body, err := s.bucket.ReadAll(ctx, key)
		if err != nil {
			// Deleted between the two calls.
			if gcerrors.Code(err) == gcerrors.NotFound {
				return nil
			}

			return err
		}

		obj = &service.StoredObject{
			Body:         body,
			ContentType:  attrs.ContentType,
			CacheControl: attrs.CacheControl,
			Metadata:     attrs.Metadata,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return obj, nil
}

// Delete removes the object at key. A missing object is not an error.
func (s *BlobStore) Delete(ctx context.Context, key string) error {
	return s.call(ctx, "delete", key, func(ctx context.Context) error {
		if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
			return err
		}

		return nil
	})
}

func (s *BlobStore) call(ctx context.Context, op, key string, fn func(ctx context.Context) error) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	err := s.breaker.Execute(ctx, fn)
	if err == nil {
		return nil
	}
	if errors.Is(err, domainerrors.ErrCircuitOpen) {
		return err
	}

	s.logger.WarnContext(ctx, "[ObjectStore] Call failed",
		slog.String("op", op),
		slog.String("key", key),
		slog.Any("error", err),
	)

	return domainerrors.NewStoreError(err, op+" "+key)
}
