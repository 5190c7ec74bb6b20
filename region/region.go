// Package region defines the cache partition abstraction used by collcache.
//
// A Region is one named, independently managed partition of the cache: all
// collection entries for one owner-type/association pair, or all entity
// entries for one root type. Implementations MUST be byte-for-byte
// transparent: Get must return exactly the []byte previously passed to Put
// for a key (no prepended/appended metadata, no re-encoding, no mutation).
//
// Regions own their eviction policy, TTLs and retry behavior; collcache
// treats a region as an externally synchronized shared resource whose
// individual operations are atomic.
package region

import "context"

// Region is a named cache partition of raw entries. Must be safe for
// concurrent use; each operation is individually atomic, but no multi-call
// transaction is provided or assumed.
type Region interface {
	// Name identifies the partition in observer events and logs.
	Name() string

	// Get returns (value, true, nil) on hit; (nil, false, nil) on miss.
	// IO/remote errors return (nil, false, err).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Put stores value, overwriting any previous entry. The returned bool
	// reports whether the put newly applied (changed region state) as
	// opposed to a no-op; backends that cannot cheaply tell may report true
	// conservatively. A false with nil error means the store rejected the
	// write (e.g. admission pressure) - callers treat the entry as absent.
	Put(ctx context.Context, key string, value []byte) (bool, error)

	// Contains reports whether key currently has an entry, without reading it.
	Contains(ctx context.Context, key string) (bool, error)

	// Evict removes a key (best-effort; absent keys are not an error).
	Evict(ctx context.Context, key string) error

	// Close releases resources.
	Close(ctx context.Context) error
}
