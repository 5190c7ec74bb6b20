// Package async decorates a collcache.Observer with a bounded queue and
// worker pool, so slow observers never stall the write path. Events are
// dropped when the queue is full - they are advisory, never load-bearing.
//
//	raw := slogobserver.New(slog.Default(), slogobserver.Options{})
//	obs := async.New(raw, 1, 1000) // 1 worker; queue of 1000 events
//	defer obs.Close()
package async

import (
	"sync"

	"github.com/unkn0wn-root/collcache"
)

type Observer struct {
	inner collcache.Observer
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ collcache.Observer = (*Observer)(nil)

func New(inner collcache.Observer, workers, qlen int) *Observer {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	o := &Observer{inner: inner, q: make(chan func(), qlen)}
	o.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer o.wg.Done()
			for f := range o.q {
				f()
			}
		}()
	}
	return o
}

// Close drains queued events and stops the workers.
func (o *Observer) Close() {
	o.once.Do(func() {
		close(o.q)
		o.wg.Wait()
	})
}

func (o *Observer) try(f func()) {
	select {
	case o.q <- f:
	default: // drop
	}
}

func (o *Observer) OnCollectionPut(regionName string, key collcache.CollectionKey) {
	o.try(func() { o.inner.OnCollectionPut(regionName, key) })
}

func (o *Observer) OnEntityPut(regionName string, key collcache.EntityKey) {
	o.try(func() { o.inner.OnEntityPut(regionName, key) })
}
