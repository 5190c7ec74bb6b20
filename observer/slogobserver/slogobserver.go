// Package slogobserver logs collcache put events through log/slog, with
// optional sampling and key redaction for high-traffic regions.
package slogobserver

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/collcache"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	CollectionPutEvery uint64
	EntityPutEvery     uint64

	// Optional identity redactor. Defaults to a SHA-256 prefix.
	Redact func(string) string
}

type Observer struct {
	l    *slog.Logger
	opts Options

	collCtr   atomic.Uint64
	entityCtr atomic.Uint64
}

var _ collcache.Observer = (*Observer)(nil)

func New(l *slog.Logger, opts Options) *Observer {
	if opts.Redact == nil {
		opts.Redact = func(s string) string {
			sum := sha256.Sum256([]byte(s))
			return hex.EncodeToString(sum[:6])
		}
	}
	return &Observer{l: l, opts: opts}
}

func sampled(ctr *atomic.Uint64, every uint64) bool {
	if every <= 1 {
		return true
	}
	return ctr.Add(1)%every == 1
}

func (o *Observer) OnCollectionPut(regionName string, key collcache.CollectionKey) {
	if !sampled(&o.collCtr, o.opts.CollectionPutEvery) {
		return
	}
	o.l.Debug("collection entry committed",
		slog.String("region", regionName),
		slog.String("owner_type", key.OwnerType),
		slog.String("association", key.Association),
		slog.String("owner", o.opts.Redact(string(key.OwnerID))),
	)
}

func (o *Observer) OnEntityPut(regionName string, key collcache.EntityKey) {
	if !sampled(&o.entityCtr, o.opts.EntityPutEvery) {
		return
	}
	o.l.Debug("entity entry written through",
		slog.String("region", regionName),
		slog.String("entity_type", key.EntityType),
		slog.String("entity", o.opts.Redact(string(key.EntityID))),
	)
}
