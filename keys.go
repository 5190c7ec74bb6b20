package collcache

import "github.com/unkn0wn-root/collcache/internal/util"

// Identifier is a durable identity token for one entity - the rendered
// primary key. Identifiers compare by value; never derive one from in-memory
// object identity, so two identifiers built from the same logical entity are
// always equal.
type Identifier string

// CollectionKey names exactly one cached collection instance: the collection
// held by one owner for one association. Immutable value type; two keys are
// equal iff all three fields are equal.
type CollectionKey struct {
	OwnerType   string
	Association string
	OwnerID     Identifier
}

// StorageKey renders the key into the flat keyspace of a collection region.
func (k CollectionKey) StorageKey() string {
	return util.Join("coll", k.OwnerType, k.Association, string(k.OwnerID))
}

// EntityKey names one cached member entity by its root type and identity,
// independent of which collection(s) reference it.
type EntityKey struct {
	EntityType string
	EntityID   Identifier
}

// StorageKey renders the key into the flat keyspace of an entity region.
func (k EntityKey) StorageKey() string {
	return util.Join("entity", k.EntityType, string(k.EntityID))
}
