package lock

import (
	"context"
	"time"

	"flashsale/internal/infra"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "lock:"

// unlockScript releases the lock only when the stored token matches, so a
// holder whose lease expired cannot delete a lock re-acquired by someone
// else.
var unlockScript = redis.NewScript(`
if (redis.call('get', KEYS[1]) == ARGV[1]) then
    return redis.call('del', KEYS[1])
end
return 0
`)

// Lock is a lease-based mutual exclusion token held in Redis, visible to
// every service instance. Acquisition is a single non-blocking attempt; the
// lease bounds the hold time of a crashed owner.
type Lock struct {
	rdb   *redis.Client
	key   string
	token string
	ttl   time.Duration
}

type Factory struct {
	rdb *redis.Client
}

func NewFactory(rdb *redis.Client) *Factory {
	return &Factory{rdb: rdb}
}

func (f *Factory) NewLock(name string, ttl time.Duration) *Lock {
	return &Lock{
		rdb:   f.rdb,
		key:   keyPrefix + name,
		token: uuid.NewString(),
		ttl:   ttl,
	}
}

func (l *Lock) TryLock(ctx context.Context) (bool, error) {
	ok, err := l.rdb.SetNX(ctx, l.key, l.token, l.ttl).Result()
	if err != nil {
		return false, infra.WrapRepoErr(infra.KindStoreUnavailable, "failed to acquire lock", err)
	}
	return ok, nil
}

func (l *Lock) Unlock(ctx context.Context) error {
	if err := unlockScript.Run(ctx, l.rdb, []string{l.key}, l.token).Err(); err != nil {
		return infra.WrapRepoErr(infra.KindStoreUnavailable, "failed to release lock", err)
	}
	return nil
}
