package collcache

import (
	"errors"
	"fmt"
)

// ErrEntryMismatch reports a hydrator that violated the positional contract:
// the built entry's identifier (or key token) count does not line up with the
// input elements.
var ErrEntryMismatch = errors.New("collcache: hydrator entry does not align with elements")

// TypeResolutionError reports a member whose concrete runtime type has no
// registered entity target. The write cannot proceed: entity regions are
// partitioned by type.
type TypeResolutionError struct {
	Type string
}

func (e *TypeResolutionError) Error() string {
	return fmt.Sprintf("collcache: no entity target registered for runtime type %q", e.Type)
}

// MemberStoreError reports a failed write-through of one member entity while
// storing a collection. No partial-commit cleanup is attempted; the durable
// store remains authoritative regardless of what the earlier member puts
// committed.
type MemberStoreError struct {
	Collection CollectionKey
	Entity     EntityKey
	Err        error
}

func (e *MemberStoreError) Error() string {
	return fmt.Sprintf("collcache: storing %s.%s[%s]: member %s#%s: %v",
		e.Collection.OwnerType, e.Collection.Association, e.Collection.OwnerID,
		e.Entity.EntityType, e.Entity.EntityID, e.Err)
}

func (e *MemberStoreError) Unwrap() error { return e.Err }
