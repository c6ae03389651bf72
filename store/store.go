// Package store is the persistence contract for storefront state: a durable
// key-value mapping from string keys to JSON-serialized values. Backends are
// swappable without touching the managers (file-backed bbolt by default,
// in-memory for tests, postgres for shared deployments).
package store

import jsoniter "github.com/json-iterator/go"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Store reads and writes whole serialized values under fixed keys. Get
// reports found=false for absent keys; a stored value that no longer
// decodes is returned as an error so callers can fall back to empty state.
type Store interface {
	Get(key string, out any) (found bool, err error)
	Set(key string, value any) error
	Close() error
}
