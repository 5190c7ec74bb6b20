// Package collcache implements a consistency-preserving cache decorator for
// collection-valued (to-many) associations. A cached collection is a list of
// member identifiers pointing into per-entity cache regions; the write path
// makes every referenced member cache-resident in its own region before the
// collection entry itself is committed, so a committed entry never names an
// identity the entity region cannot answer.
//
// Components:
//   - region.Region: a named cache partition holding raw entries
//     (e.g. Ristretto, BigCache, Redis).
//   - CollectionHydrator[E] / EntityHydrator[E]: translate between live
//     member elements and flat cache entries. Entity payload encoding is
//     pluggable via codec.Codec[E].
//   - Store[E]: the durable collection store; the decorator delegates to it
//     whatever a flat identifier list cannot answer.
//   - Persister[E]: the orchestrator tying the above together, one instance
//     per owner-type/association pair.
//
// Write-through pattern:
//
//	els, _ := store.Slice(ctx, key, 0, -1) // authoritative load
//	_ = p.StoreCollection(ctx, key, els)   // members first, then the entry
//	els, ok, _ = p.LoadCollection(ctx, key)
//
// The decorator adds no cross-region coordination: member puts happen-before
// the collection put within one call, and concurrent stores of the same key
// resolve by the region's own last-write-wins semantics. The durable store
// stays the source of truth; any cache failure surfaces to the caller and the
// caller falls back to the store.
package collcache
