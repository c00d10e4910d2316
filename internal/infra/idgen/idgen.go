package idgen

import (
	"context"
	"time"

	"flashsale/internal/infra"
	"flashsale/internal/pkg/clock"

	"github.com/redis/go-redis/v9"
)

const (
	// Seconds since 2022-01-01T00:00:00Z form the high 31 bits of every id.
	epochSecond = 1640995200

	// Low 32 bits hold the per-day sequence. A new counter key per day keeps
	// any single Redis counter far from overflow.
	sequenceBits = 32

	keyPrefix = "icr:"
)

// Generator produces globally unique, roughly time-ordered 64-bit ids.
// The sequence component comes from an atomic counter in Redis, so ids stay
// strictly increasing per namespace across processes and restarts. There is
// no local fallback: if Redis is down, id generation fails.
type Generator struct {
	seq   sequencer
	clock clock.Clock
}

type sequencer interface {
	Next(ctx context.Context, key string) (int64, error)
}

func NewGenerator(rdb *redis.Client, clk clock.Clock) *Generator {
	return &Generator{
		seq:   &redisSequencer{rdb: rdb},
		clock: clk,
	}
}

func (g *Generator) NextID(ctx context.Context, namespace string) (int64, error) {
	now := g.clock.Now().UTC()

	count, err := g.seq.Next(ctx, sequenceKey(namespace, now))
	if err != nil {
		return 0, infra.WrapRepoErr(infra.KindStoreUnavailable, "failed to increment id sequence", err)
	}

	return composeID(now.Unix()-epochSecond, count), nil
}

func sequenceKey(namespace string, t time.Time) string {
	return keyPrefix + namespace + ":" + t.Format("2006:01:02")
}

func composeID(elapsedSeconds, sequence int64) int64 {
	return elapsedSeconds<<sequenceBits | sequence
}

type redisSequencer struct {
	rdb *redis.Client
}

func (s *redisSequencer) Next(ctx context.Context, key string) (int64, error) {
	return s.rdb.Incr(ctx, key).Result()
}
