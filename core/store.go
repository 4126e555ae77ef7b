package core

import "context"

// KVStore is a durable string-keyed store.
// Get returns ErrKeyNotFound when the key has never been set (or was deleted).
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}
