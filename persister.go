package collcache

import (
	"context"
	"fmt"

	"github.com/unkn0wn-root/collcache/internal/wire"
	"github.com/unkn0wn-root/collcache/region"
)

type persister[E any] struct {
	ownerType   string // root type, resolved once via Metadata
	association string
	ordered     bool // static association property, resolved once

	coll     region.Region
	hydrator CollectionHydrator[E]
	store    Store[E]
	resolver Resolver[E]
	entities map[string]EntityTarget[E]

	log     Logger
	obs     Observer
	enabled bool
}

func newPersister[E any](opts Options[E]) (*persister[E], error) {
	if opts.OwnerType == "" || opts.Association == "" {
		return nil, fmt.Errorf("collcache: owner type and association are required")
	}
	if opts.Collection == nil {
		return nil, fmt.Errorf("collcache: collection region is required")
	}
	if opts.Hydrator == nil {
		return nil, fmt.Errorf("collcache: hydrator is required")
	}
	if opts.Store == nil {
		return nil, fmt.Errorf("collcache: store is required")
	}
	if opts.Resolver == nil {
		return nil, fmt.Errorf("collcache: resolver is required")
	}
	if opts.Metadata == nil {
		return nil, fmt.Errorf("collcache: metadata is required")
	}
	if len(opts.Entities) == 0 {
		return nil, fmt.Errorf("collcache: at least one entity target is required")
	}
	for typ, target := range opts.Entities {
		if target.Region == nil || target.Hydrator == nil {
			return nil, fmt.Errorf("collcache: entity target %q is incomplete", typ)
		}
	}

	p := &persister[E]{
		ownerType:   opts.Metadata.RootType(opts.OwnerType),
		association: opts.Association,
		ordered:     opts.Metadata.IsOrderPreserving(opts.OwnerType, opts.Association),
		coll:        opts.Collection,
		hydrator:    opts.Hydrator,
		store:       opts.Store,
		resolver:    opts.Resolver,
		entities:    opts.Entities,
		enabled:     !opts.Disabled,
	}
	p.log = coalesce[Logger](opts.Logger, NopLogger{})
	p.obs = coalesce[Observer](opts.Observer, NopObserver{})
	return p, nil
}

func (p *persister[E]) Enabled() bool { return p.enabled }

func (p *persister[E]) Key(ownerID Identifier) CollectionKey {
	return CollectionKey{OwnerType: p.ownerType, Association: p.association, OwnerID: ownerID}
}

// LoadCollection serves a cached collection. A corrupt or undecodable entry
// reads as a miss: the read path never mutates cache state, so the entry is
// left for the next successful store to overwrite.
func (p *persister[E]) LoadCollection(ctx context.Context, key CollectionKey) ([]E, bool, error) {
	if !p.enabled {
		return nil, false, nil
	}
	raw, ok, err := p.coll.Get(ctx, key.StorageKey())
	if err != nil || !ok {
		return nil, false, err
	}
	we, err := wire.DecodeEntry(raw)
	if err != nil {
		p.log.Warn("undecodable collection entry, treating as miss", Fields{
			"region": p.coll.Name(), "key": key.StorageKey(),
		})
		return nil, false, nil
	}
	elements, ok, err := p.hydrator.LoadEntry(ctx, key, entryFromWire(we))
	if err != nil || !ok {
		return nil, false, err
	}
	if elements == nil {
		elements = []E{} // cached empty collection is a hit, not a miss
	}
	return elements, true, nil
}

// StoreCollection writes the authoritative member list through the cache.
// Member entity entries commit before the collection entry: a committed
// collection entry never names an identity its entity region cannot answer.
// Reversing that order would expose dangling references to concurrent
// readers between the two puts.
func (p *persister[E]) StoreCollection(ctx context.Context, key CollectionKey, elements []E) error {
	if !p.enabled {
		return nil
	}

	entry, err := p.hydrator.BuildEntry(key, elements)
	if err != nil {
		return err
	}
	if len(entry.Identifiers) != len(elements) {
		return ErrEntryMismatch
	}
	if entry.Keys != nil && len(entry.Keys) != len(elements) {
		return ErrEntryMismatch
	}

	entry.Ordered = p.ordered
	if !p.ordered {
		// denormalize to dense positional form: index tokens carry no
		// meaning for an unordered association
		entry.Keys = nil
	}

	// write-through members first; identifiers map back to their source
	// elements by position (the hydrator's positional contract)
	for i, id := range entry.Identifiers {
		if err := p.storeMember(ctx, key, id, elements[i]); err != nil {
			return err
		}
	}

	raw, err := wire.EncodeEntry(entry.toWire())
	if err != nil {
		return err
	}
	applied, err := p.coll.Put(ctx, key.StorageKey(), raw)
	if err != nil {
		return err
	}
	if applied {
		p.obs.OnCollectionPut(p.coll.Name(), key)
		p.log.Debug("collection entry stored", Fields{
			"region": p.coll.Name(), "key": key.StorageKey(), "members": len(entry.Identifiers),
		})
	}
	return nil
}

// storeMember ensures one member entity is resident in its region. Members
// already present are skipped - idempotent, no redundant serialization.
func (p *persister[E]) storeMember(ctx context.Context, ck CollectionKey, id Identifier, element E) error {
	typ, err := p.resolver.RuntimeTypeOf(element)
	if err != nil {
		return err
	}
	target, ok := p.entities[typ]
	if !ok {
		return &TypeResolutionError{Type: typ}
	}

	ek := EntityKey{EntityType: typ, EntityID: id}
	sk := ek.StorageKey()

	present, err := target.Region.Contains(ctx, sk)
	if err != nil {
		return &MemberStoreError{Collection: ck, Entity: ek, Err: err}
	}
	if present {
		return nil
	}

	payload, err := target.Hydrator.BuildEntry(ek, element)
	if err != nil {
		return &MemberStoreError{Collection: ck, Entity: ek, Err: err}
	}
	applied, err := target.Region.Put(ctx, sk, payload)
	if err != nil {
		return &MemberStoreError{Collection: ck, Entity: ek, Err: err}
	}
	if applied {
		p.obs.OnEntityPut(target.Region.Name(), ek)
	}
	return nil
}

// Count answers from the cached entry when one exists. A cached count is
// only reachable after a successful store, so it reflects a fully
// written-through entry; anything else delegates.
func (p *persister[E]) Count(ctx context.Context, key CollectionKey) (int, error) {
	if p.enabled {
		raw, ok, err := p.coll.Get(ctx, key.StorageKey())
		if err == nil && ok {
			if we, derr := wire.DecodeEntry(raw); derr == nil {
				return len(we.Identifiers), nil
			}
		}
	}
	return p.store.Count(ctx, key)
}

func (p *persister[E]) Contains(ctx context.Context, key CollectionKey, element E) (bool, error) {
	return p.store.Contains(ctx, key, element)
}

func (p *persister[E]) ContainsKey(ctx context.Context, key CollectionKey, index any) (bool, error) {
	return p.store.ContainsKey(ctx, key, index)
}

func (p *persister[E]) Get(ctx context.Context, key CollectionKey, index any) (E, bool, error) {
	return p.store.Get(ctx, key, index)
}

func (p *persister[E]) Slice(ctx context.Context, key CollectionKey, offset, length int) ([]E, error) {
	return p.store.Slice(ctx, key, offset, length)
}

func (p *persister[E]) LoadByCriteria(ctx context.Context, key CollectionKey, criteria Criteria) ([]E, error) {
	return p.store.LoadByCriteria(ctx, key, criteria)
}

func (p *persister[E]) InvalidateCollection(ctx context.Context, key CollectionKey) error {
	if !p.enabled {
		return nil
	}
	return p.coll.Evict(ctx, key.StorageKey())
}

func (p *persister[E]) InvalidateEntity(ctx context.Context, key EntityKey) error {
	if !p.enabled {
		return nil
	}
	target, ok := p.entities[key.EntityType]
	if !ok {
		return &TypeResolutionError{Type: key.EntityType}
	}
	return target.Region.Evict(ctx, key.StorageKey())
}
