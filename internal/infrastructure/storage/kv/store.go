// Package kv keeps small JSON values on the client between runs.
package kv

import "errors"

var ErrQuotaExceeded = errors.New("storage quota exceeded")

// Store is a flat byte-valued key space.
type Store interface {
	// Get reports ok=false when key is absent.
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
	Delete(key string) error
	Clear() error
	Close() error
}
