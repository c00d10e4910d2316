package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"flashsale/internal/infra"
	"flashsale/internal/pkg/clock"
	"flashsale/internal/pkg/config"
	"flashsale/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/semaphore"
)

var (
	// ErrNotFound is returned for keys absent from the source of record.
	// Fallbacks must return it (not a bare nil) so the null marker can be
	// cached against penetration.
	ErrNotFound = errs.New("entity not found")

	// ErrRebuildContended is returned when the mutex strategy exhausts its
	// retries without ever winning the rebuild lock.
	ErrRebuildContended = errs.New("cache rebuild lock contended")
)

// Store is the slice of Redis the cache strategies need. Get reports
// presence separately from the value so an empty string can serve as the
// null marker.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	Del(ctx context.Context, key string) error
}

// Client carries the shared pieces of the three cache-aside strategies.
// Strategy entry points are package functions because methods cannot
// introduce type parameters.
type Client struct {
	store    Store
	clock    clock.Clock
	cfg      config.CacheConfig
	rebuilds *semaphore.Weighted
}

func NewClient(rdb *redis.Client, clk clock.Clock, cfg config.CacheConfig) *Client {
	return newClient(&redisStore{rdb: rdb}, clk, cfg)
}

// NewClientWithStore builds a client over a caller-supplied Store.
func NewClientWithStore(store Store, clk clock.Clock, cfg config.CacheConfig) *Client {
	return newClient(store, clk, cfg)
}

func newClient(store Store, clk clock.Clock, cfg config.CacheConfig) *Client {
	return &Client{
		store:    store,
		clock:    clk,
		cfg:      cfg,
		rebuilds: semaphore.NewWeighted(cfg.RebuildWorkers),
	}
}

// Delete drops a cached entry, used by write paths to invalidate after a
// source-of-record update.
func (c *Client) Delete(ctx context.Context, key string) error {
	return c.store.Del(ctx, key)
}

// GetWithPassThrough reads through the cache and caches an explicit empty
// marker for keys absent from the source, so repeated lookups of a
// nonexistent id stop at Redis.
func GetWithPassThrough[T any](ctx context.Context, c *Client, key string, fallback func(context.Context) (*T, error)) (*T, error) {
	raw, ok, err := c.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if ok {
		return decodeOrNull[T](raw)
	}

	entity, err := fallback(ctx)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			if setErr := c.store.Set(ctx, key, "", c.cfg.NullTTL); setErr != nil {
				slog.Warn("failed to cache null marker", "key", key, "error", setErr)
			}
		}
		return nil, err
	}

	if err := c.setJSON(ctx, key, entity, c.cfg.EntityTTL); err != nil {
		slog.Warn("failed to populate cache", "key", key, "error", err)
	}
	return entity, nil
}

// GetWithMutex serializes rebuilds of a hot key behind a short-lived lock:
// at most one caller queries the source while the rest wait briefly and
// retry the whole read.
func GetWithMutex[T any](ctx context.Context, c *Client, key, lockKey string, fallback func(context.Context) (*T, error)) (*T, error) {
	for attempt := 0; attempt < c.cfg.MaxRetries; attempt++ {
		raw, ok, err := c.store.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		if ok {
			return decodeOrNull[T](raw)
		}

		acquired, err := c.store.SetNX(ctx, lockKey, "1", c.cfg.RebuildLockTTL)
		if err != nil {
			return nil, err
		}
		if !acquired {
			if err := sleep(ctx, c.cfg.RetryDelay); err != nil {
				return nil, err
			}
			continue
		}

		return rebuildUnderLock(ctx, c, key, lockKey, fallback)
	}

	return nil, ErrRebuildContended
}

func rebuildUnderLock[T any](ctx context.Context, c *Client, key, lockKey string, fallback func(context.Context) (*T, error)) (*T, error) {
	defer func() {
		if err := c.store.Del(ctx, lockKey); err != nil {
			slog.Warn("failed to release rebuild lock", "key", lockKey, "error", err)
		}
	}()

	// Double-check: another holder may have rebuilt between our miss and
	// winning the lock.
	raw, ok, err := c.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if ok {
		return decodeOrNull[T](raw)
	}

	entity, err := fallback(ctx)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			if setErr := c.store.Set(ctx, key, "", c.cfg.NullTTL); setErr != nil {
				slog.Warn("failed to cache null marker", "key", key, "error", setErr)
			}
		}
		return nil, err
	}

	if err := c.setJSON(ctx, key, entity, c.cfg.EntityTTL); err != nil {
		slog.Warn("failed to populate cache", "key", key, "error", err)
	}
	return entity, nil
}

// envelope wraps a logically-expiring payload. The store-level TTL is
// infinite; staleness is judged by ExpireAt alone.
type envelope struct {
	Data     json.RawMessage `json:"data"`
	ExpireAt time.Time       `json:"expireAt"`
}

// GetWithLogicalExpire serves a pre-warmed key and never blocks the reader
// on a rebuild: an expired payload is returned as-is while a bounded
// background worker refreshes it, guarded by the rebuild lock. A fully
// absent key is treated as nonexistent.
func GetWithLogicalExpire[T any](ctx context.Context, c *Client, key, lockKey string, fallback func(context.Context) (*T, error)) (*T, error) {
	raw, ok, err := c.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}

	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return nil, errs.Wrap(err, "failed to decode cache envelope")
	}
	var entity T
	if err := json.Unmarshal(env.Data, &entity); err != nil {
		return nil, errs.Wrap(err, "failed to decode cached entity")
	}

	if env.ExpireAt.After(c.clock.Now()) {
		return &entity, nil
	}

	c.tryScheduleRebuild(ctx, key, lockKey, func(rebuildCtx context.Context) (any, error) {
		return fallback(rebuildCtx)
	})

	// Stale, but the caller never waits on the source of record.
	return &entity, nil
}

// SetWithLogicalExpire warms a key for the logical-expiration strategy.
func SetWithLogicalExpire(ctx context.Context, c *Client, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errs.Wrap(err, "failed to encode cached entity")
	}
	env := envelope{Data: data, ExpireAt: c.clock.Now().Add(ttl)}
	payload, err := json.Marshal(env)
	if err != nil {
		return errs.Wrap(err, "failed to encode cache envelope")
	}
	return c.store.Set(ctx, key, string(payload), 0)
}

func (c *Client) tryScheduleRebuild(ctx context.Context, key, lockKey string, fetch func(context.Context) (any, error)) {
	acquired, err := c.store.SetNX(ctx, lockKey, "1", c.cfg.RebuildLockTTL)
	if err != nil || !acquired {
		return
	}

	if !c.rebuilds.TryAcquire(1) {
		// Worker pool saturated; give the lock back so a later reader can
		// trigger the rebuild.
		if err := c.store.Del(ctx, lockKey); err != nil {
			slog.Warn("failed to release rebuild lock", "key", lockKey, "error", err)
		}
		return
	}

	go func() {
		defer c.rebuilds.Release(1)

		// The request context dies with the caller; the rebuild gets its own
		// deadline bounded by the lock lease.
		rebuildCtx, cancel := context.WithTimeout(context.Background(), c.cfg.RebuildLockTTL)
		defer cancel()
		defer func() {
			if err := c.store.Del(rebuildCtx, lockKey); err != nil {
				slog.Warn("failed to release rebuild lock", "key", lockKey, "error", err)
			}
		}()

		fresh, err := fetch(rebuildCtx)
		if err != nil {
			slog.Error("cache rebuild failed", "key", key, "error", err)
			return
		}
		if err := SetWithLogicalExpire(rebuildCtx, c, key, fresh, c.cfg.EntityTTL); err != nil {
			slog.Error("failed to refresh cached entity", "key", key, "error", err)
		}
	}()
}

func (c *Client) setJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errs.Wrap(err, "failed to encode cached entity")
	}
	return c.store.Set(ctx, key, string(data), ttl)
}

func decodeOrNull[T any](raw string) (*T, error) {
	if raw == "" {
		return nil, ErrNotFound
	}
	var entity T
	if err := json.Unmarshal([]byte(raw), &entity); err != nil {
		return nil, errs.Wrap(err, "failed to decode cached entity")
	}
	return &entity, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type redisStore struct {
	rdb *redis.Client
}

func (s *redisStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, infra.WrapRepoErr(infra.KindStoreUnavailable, "failed to read cache key", err)
	}
	return val, true, nil
}

func (s *redisStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := s.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		return infra.WrapRepoErr(infra.KindStoreUnavailable, "failed to write cache key", err)
	}
	return nil
}

func (s *redisStore) SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	ok, err := s.rdb.SetNX(ctx, key, value, ttl).Result()
	if err != nil {
		return false, infra.WrapRepoErr(infra.KindStoreUnavailable, "failed to acquire rebuild lock", err)
	}
	return ok, nil
}

func (s *redisStore) Del(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		return infra.WrapRepoErr(infra.KindStoreUnavailable, "failed to delete cache key", err)
	}
	return nil
}
