package ristretto

import (
	"context"
	"errors"

	rc "github.com/dgraph-io/ristretto"

	"github.com/unkn0wn-root/collcache/region"
)

// CostFunc computes the admission cost of one entry. The default charges a
// flat 1 per entry, so MaxCost counts entries.
type CostFunc func(key string, value []byte) int64

// Region is an in-process, cost-admitted cache partition backed by Ristretto.
type Region struct {
	name string
	c    *rc.Cache
	cost CostFunc
}

var _ region.Region = (*Region)(nil)

type Config struct {
	Name        string
	NumCounters int64
	MaxCost     int64
	BufferItems int64
	Metrics     bool
	Cost        CostFunc // nil => flat cost of 1
}

func New(cfg Config) (*Region, error) {
	if cfg.Name == "" {
		return nil, errors.New("ristretto region: name is required")
	}
	if cfg.NumCounters <= 0 || cfg.MaxCost <= 0 || cfg.BufferItems <= 0 {
		return nil, errors.New("ristretto region: invalid config")
	}
	c, err := rc.NewCache(&rc.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
		Metrics:     cfg.Metrics,
	})
	if err != nil {
		return nil, err
	}
	cost := cfg.Cost
	if cost == nil {
		cost = func(string, []byte) int64 { return 1 }
	}
	return &Region{name: cfg.Name, c: c, cost: cost}, nil
}

func (r *Region) Name() string { return r.name }

func (r *Region) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := r.c.Get(key)
	if !ok {
		return nil, false, nil
	}
	b, _ := v.([]byte)
	if b == nil {
		// drop unexpected entry shape
		r.c.Del(key)
		return nil, false, nil
	}
	return b, true, nil
}

// Put reports Ristretto's admission decision: false means the entry was
// rejected under pressure and is not resident.
func (r *Region) Put(_ context.Context, key string, value []byte) (bool, error) {
	ok := r.c.Set(key, value, r.cost(key, value))
	if ok {
		// Set is async; callers rely on Contains immediately after Put.
		r.c.Wait()
	}
	return ok, nil
}

func (r *Region) Contains(ctx context.Context, key string) (bool, error) {
	_, ok, err := r.Get(ctx, key)
	return ok, err
}

func (r *Region) Evict(_ context.Context, key string) error {
	r.c.Del(key)
	return nil
}

func (r *Region) Close(_ context.Context) error {
	r.c.Wait()
	r.c.Close()
	return nil
}

// Metrics exposes Ristretto's own counters (not part of region.Region).
func (r *Region) Metrics() *rc.Metrics { return r.c.Metrics }
