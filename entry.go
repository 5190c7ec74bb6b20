package collcache

import "github.com/unkn0wn-root/collcache/internal/wire"

// CollectionEntry is the flat cached form of one to-many relationship: the
// member identifier sequence for one owner, plus ordering metadata. Whether
// the sequence order means anything is a static property of the association's
// declaration, never decided per call; for non-order-preserving associations
// readers treat the sequence as a set.
type CollectionEntry struct {
	Identifiers []Identifier

	// Keys carries explicit index tokens for keyed/indexed associations,
	// position-aligned with Identifiers. Nil for associations that do not
	// preserve order; the write path denormalizes those to dense positional
	// form before committing.
	Keys []string

	Ordered bool
}

func (e CollectionEntry) toWire() wire.Entry {
	ids := make([]string, len(e.Identifiers))
	for i, id := range e.Identifiers {
		ids[i] = string(id)
	}
	return wire.Entry{Ordered: e.Ordered, Identifiers: ids, Keys: e.Keys}
}

func entryFromWire(we wire.Entry) CollectionEntry {
	ids := make([]Identifier, len(we.Identifiers))
	for i, id := range we.Identifiers {
		ids[i] = Identifier(id)
	}
	return CollectionEntry{Ordered: we.Ordered, Identifiers: ids, Keys: we.Keys}
}
