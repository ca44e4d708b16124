// Package store persists raw JSON documents under fixed keys.
//
// Adapters never interpret the payload: encoding and decoding of entity
// collections belongs to the repository layer. There is no cross-process
// locking; two writers sharing one backend race and the last write wins.
package store

import (
	"context"
	"errors"
)

var ErrEmptyKey = errors.New("store: empty key")

type Store interface {
	// Load returns found=false when nothing was ever saved under key.
	Load(ctx context.Context, key string) (raw []byte, found bool, err error)
	Save(ctx context.Context, key string, raw []byte) error
	Delete(ctx context.Context, key string) error
}
