package bigcache

import (
	"context"
	"errors"
	"time"

	bc "github.com/allegro/bigcache/v3"

	"github.com/unkn0wn-root/collcache/region"
)

// Region is an in-process, sharded cache partition backed by BigCache.
// BigCache expires entries by a global LifeWindow rather than per-entry TTLs;
// that policy is the region's own concern.
type Region struct {
	name string
	c    *bc.BigCache
}

var _ region.Region = (*Region)(nil)

type Config struct {
	Name               string
	LifeWindow         time.Duration
	CleanWindow        time.Duration
	MaxEntriesInWindow int
	MaxEntrySize       int
	HardMaxCacheSizeMB int // ~ memory limit; 0 = unlimited
}

func New(cfg Config) (*Region, error) {
	if cfg.Name == "" {
		return nil, errors.New("bigcache region: name is required")
	}
	conf := bc.DefaultConfig(cfg.LifeWindow)
	if cfg.CleanWindow > 0 {
		conf.CleanWindow = cfg.CleanWindow
	}
	if cfg.MaxEntriesInWindow > 0 {
		conf.MaxEntriesInWindow = cfg.MaxEntriesInWindow
	}
	if cfg.MaxEntrySize > 0 {
		conf.MaxEntrySize = cfg.MaxEntrySize
	}
	if cfg.HardMaxCacheSizeMB > 0 {
		conf.HardMaxCacheSize = cfg.HardMaxCacheSizeMB
	}
	c, err := bc.New(context.Background(), conf)
	if err != nil {
		return nil, err
	}
	return &Region{name: cfg.Name, c: c}, nil
}

func (r *Region) Name() string { return r.name }

func (r *Region) Get(_ context.Context, key string) ([]byte, bool, error) {
	b, err := r.c.Get(key)
	if errors.Is(err, bc.ErrEntryNotFound) {
		return nil, false, nil
	}
	return b, err == nil, err
}

// Put always reports true: BigCache cannot cheaply distinguish an overwrite
// with identical bytes from a fresh write.
func (r *Region) Put(_ context.Context, key string, value []byte) (bool, error) {
	return true, r.c.Set(key, value)
}

func (r *Region) Contains(_ context.Context, key string) (bool, error) {
	_, err := r.c.Get(key)
	if errors.Is(err, bc.ErrEntryNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (r *Region) Evict(_ context.Context, key string) error {
	err := r.c.Delete(key)
	if errors.Is(err, bc.ErrEntryNotFound) {
		return nil
	}
	return err
}

func (r *Region) Close(_ context.Context) error {
	return r.c.Close()
}
