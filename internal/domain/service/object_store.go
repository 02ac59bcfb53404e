package service

import (
	"context"
)

// StoredObject is an object read back from the object store.
type StoredObject struct {
	Body         []byte
	ContentType  string
	CacheControl string
	Metadata     map[string]string
}

// PutOptions describes how an object is written.
type PutOptions struct {
	ContentType  string
	CacheControl string
	Metadata     map[string]string
}

// ObjectStore is the durable store published HTML is written to.
type ObjectStore interface {
	// Put writes body at key, replacing any existing object.
	Put(ctx context.Context, key string, body []byte, opts PutOptions) error

	// Get returns the object at key, or nil when there is none.
	Get(ctx context.Context, key string) (*StoredObject, error)

	// Delete removes the object at key. A missing object is not an error.
	Delete(ctx context.Context, key string) error
}
