package collcache

import (
	"context"

	"github.com/unkn0wn-root/collcache/region"
)

// EntityTarget binds one member runtime type to the region and payload
// hydrator for that type. The write path picks a target per member by the
// member's resolved runtime type, not the association's declared target.
type EntityTarget[E any] struct {
	Region   region.Region
	Hydrator EntityHydrator[E]
}

// Persister is the cache decorator for exactly one owner-type/association
// pair. E is the member element type (an interface for polymorphic targets).
type Persister[E any] interface {
	Enabled() bool

	// Key builds the collection cache key for one owner identity, using the
	// owner's root type from Metadata.
	Key(ownerID Identifier) CollectionKey

	// LoadCollection serves the collection from cache. ok=false is a miss -
	// distinct from a cached empty collection, which returns ([]E{}, true).
	// The read path never mutates cache state.
	LoadCollection(ctx context.Context, key CollectionKey) ([]E, bool, error)

	// StoreCollection makes the cache consistent with the authoritative
	// member list as loaded from the store: members are written through to
	// their entity regions first, the collection entry commits last.
	StoreCollection(ctx context.Context, key CollectionKey, elements []E) error

	// Count returns the cached entry's member count when one exists,
	// avoiding a store round-trip; otherwise it delegates.
	Count(ctx context.Context, key CollectionKey) (int, error)

	// Pass-throughs, delegated verbatim to the underlying store: none of
	// these are answerable from a flat identifier list.
	Contains(ctx context.Context, key CollectionKey, element E) (bool, error)
	ContainsKey(ctx context.Context, key CollectionKey, index any) (bool, error)
	Get(ctx context.Context, key CollectionKey, index any) (E, bool, error)
	Slice(ctx context.Context, key CollectionKey, offset, length int) ([]E, error)
	LoadByCriteria(ctx context.Context, key CollectionKey, criteria Criteria) ([]E, error)

	// InvalidateCollection evicts one collection's entry.
	InvalidateCollection(ctx context.Context, key CollectionKey) error

	// InvalidateEntity evicts one member entity's entry from its region.
	InvalidateEntity(ctx context.Context, key EntityKey) error
}

// Options tune one persister. Logger, Observer and Disabled are optional;
// everything else is required.
type Options[E any] struct {
	// Required. OwnerType/Association name the served association;
	// Collection is the entry region; Hydrator translates entries to and
	// from domain collections; Store is the durable fallback (source of
	// truth); Resolver extracts identity and runtime type from members;
	// Metadata answers schema questions; Entities maps each member runtime
	// type name to its region and payload hydrator.
	OwnerType   string
	Association string
	Collection  region.Region
	Hydrator    CollectionHydrator[E]
	Store       Store[E]
	Resolver    Resolver[E]
	Metadata    Metadata
	Entities    map[string]EntityTarget[E]

	Logger   Logger   // nil => NopLogger
	Observer Observer // nil => NopObserver
	Disabled bool     // default false (enabled)
}

func New[E any](opts Options[E]) (Persister[E], error) {
	return newPersister[E](opts)
}
