package collcache

import (
	"context"

	"github.com/unkn0wn-root/collcache/codec"
)

// CollectionHydrator translates between live member elements and the flat
// CollectionEntry held in a collection region.
//
// Positional contract: BuildEntry must return an entry whose Identifiers[i]
// (and Keys[i], when present) describe elements[i]. The write path resolves
// each identifier back to its source element by position when serializing
// members, so this correspondence is load-bearing even for associations
// whose cached representation is order-irrelevant.
type CollectionHydrator[E any] interface {
	BuildEntry(key CollectionKey, elements []E) (CollectionEntry, error)

	// LoadEntry turns a stored entry back into live members, typically by
	// consulting the entity regions / entity persister. ok=false signals a
	// hydrator-level miss (e.g. a referenced member is no longer
	// resolvable); the caller then falls back to the durable store.
	LoadEntry(ctx context.Context, key CollectionKey, entry CollectionEntry) ([]E, bool, error)
}

// EntityHydrator serializes one member entity into its self-contained cache
// payload. The payload must not reference other cache entries.
type EntityHydrator[E any] interface {
	BuildEntry(key EntityKey, element E) ([]byte, error)
}

// CodecEntity adapts a codec.Codec to EntityHydrator: the payload is simply
// the encoded element.
type CodecEntity[E any] struct{ Codec codec.Codec[E] }

var _ EntityHydrator[struct{}] = CodecEntity[struct{}]{}

func (h CodecEntity[E]) BuildEntry(_ EntityKey, element E) ([]byte, error) {
	return h.Codec.Encode(element)
}

// HydratorFuncs adapts plain functions to CollectionHydrator.
type HydratorFuncs[E any] struct {
	Build func(CollectionKey, []E) (CollectionEntry, error)
	Load  func(context.Context, CollectionKey, CollectionEntry) ([]E, bool, error)
}

var _ CollectionHydrator[struct{}] = HydratorFuncs[struct{}]{}

func (h HydratorFuncs[E]) BuildEntry(key CollectionKey, elements []E) (CollectionEntry, error) {
	return h.Build(key, elements)
}

func (h HydratorFuncs[E]) LoadEntry(ctx context.Context, key CollectionKey, entry CollectionEntry) ([]E, bool, error) {
	return h.Load(ctx, key, entry)
}

// IdentityEntry builds a CollectionEntry from elements using a Resolver,
// preserving positional correspondence. Hydrators that have no index tokens
// of their own can delegate their BuildEntry to this.
func IdentityEntry[E any](resolver Resolver[E], elements []E) (CollectionEntry, error) {
	ids := make([]Identifier, len(elements))
	for i, el := range elements {
		id, err := resolver.IdentityOf(el)
		if err != nil {
			return CollectionEntry{}, err
		}
		ids[i] = id
	}
	return CollectionEntry{Identifiers: ids}, nil
}
