package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/unkn0wn-root/collcache/region"
)

var ErrNilClient = errors.New("redis region: nil client")

// Region is a shared cache partition backed by Redis. Entries written by one
// process are visible to every process sharing the client's keyspace.
type Region struct {
	name        string
	rdb         goredis.UniversalClient
	ttl         time.Duration
	closeClient bool
}

var _ region.Region = (*Region)(nil)

type Config struct {
	Name        string
	Client      goredis.UniversalClient
	TTL         time.Duration // 0 => no expiry
	CloseClient bool          // set true only if this region exclusively owns the client
}

func New(cfg Config) (*Region, error) {
	if cfg.Name == "" {
		return nil, errors.New("redis region: name is required")
	}
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	ttl := cfg.TTL
	if ttl < 0 {
		ttl = 0
	}
	return &Region{name: cfg.Name, rdb: cfg.Client, ttl: ttl, closeClient: cfg.CloseClient}, nil
}

func (r *Region) Name() string { return r.name }

func (r *Region) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := r.rdb.Get(ctx, key).Bytes()
	if err == goredis.Nil {
		return nil, false, nil // miss
	}
	if err != nil {
		return nil, false, err // transport/server error
	}
	return b, true, nil
}

// Put always reports true on success: distinguishing identical overwrites
// would cost an extra round-trip for an advisory signal.
func (r *Region) Put(ctx context.Context, key string, value []byte) (bool, error) {
	if err := r.rdb.Set(ctx, key, value, r.ttl).Err(); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Region) Contains(ctx context.Context, key string) (bool, error) {
	n, err := r.rdb.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *Region) Evict(ctx context.Context, key string) error {
	return r.rdb.Del(ctx, key).Err()
}

// Close releases the underlying client only when this region owns it.
// Safe to call multiple times; repeated calls become no-ops.
func (r *Region) Close(context.Context) error {
	if r.closeClient {
		if err := r.rdb.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
			return err
		}
	}
	return nil
}
