package collcache

// Observer receives put events from the write path. Calls are fire-and-forget
// and never affect correctness; implementations MUST be cheap and
// non-blocking (wrap with observer/async otherwise) - the persister calls
// them on hot paths.
//
// Events fire only for puts the region reports as newly applied, so a
// repeated store of unchanged state is silent on backends that can tell.
type Observer interface {
	// A collection entry was committed to its region.
	OnCollectionPut(regionName string, key CollectionKey)

	// A member entity entry was written through to its region.
	OnEntityPut(regionName string, key EntityKey)
}

// NopObserver is the default no-op.
type NopObserver struct{}

func (NopObserver) OnCollectionPut(string, CollectionKey) {}
func (NopObserver) OnEntityPut(string, EntityKey)         {}
