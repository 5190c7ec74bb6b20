package collcache

import "context"

// Criteria is an opaque, store-defined query descriptor. The decorator never
// inspects it; LoadByCriteria passes it through verbatim.
type Criteria any

// Store is the underlying durable collection store - always the source of
// truth. The decorator calls it on cache miss and for every operation a flat
// identifier list cannot answer (arbitrary predicates, positional random
// access, criteria queries).
type Store[E any] interface {
	// Contains reports whether element is a member of the collection.
	Contains(ctx context.Context, key CollectionKey, element E) (bool, error)

	// ContainsKey reports whether the collection holds an entry at index
	// (a map key or list position, depending on the association).
	ContainsKey(ctx context.Context, key CollectionKey, index any) (bool, error)

	// Get returns the element at index; ok=false when absent.
	Get(ctx context.Context, key CollectionKey, index any) (E, bool, error)

	// Slice returns up to length members starting at offset.
	Slice(ctx context.Context, key CollectionKey, offset, length int) ([]E, error)

	// LoadByCriteria returns the members matching a store-defined criteria.
	LoadByCriteria(ctx context.Context, key CollectionKey, criteria Criteria) ([]E, error)

	// Count returns the collection's member count.
	Count(ctx context.Context, key CollectionKey) (int, error)
}
