package components

import (
	"fmt"

	"flashsale/internal/infra/cache"
	"flashsale/internal/infra/idgen"
	"flashsale/internal/infra/lock"
	"flashsale/internal/infra/queue"
	"flashsale/internal/infra/seckill"
	"flashsale/internal/pkg/clock"
	"flashsale/internal/pkg/config"
	"flashsale/internal/usecase"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// StoreModule wires the Redis-backed infrastructure: id sequences, the
// admission script, the stream queue, lease locks and the cache client.
var StoreModule = fx.Module("store",
	fx.Provide(
		fx.Annotate(
			idgen.NewGenerator,
			fx.As(new(usecase.IDGenerator)),
		),
		fx.Annotate(
			NewAdmitter,
			fx.As(new(usecase.Admitter)),
			fx.As(new(usecase.StockSeeder)),
		),
		fx.Annotate(
			NewStreamQueue,
			fx.As(new(queue.OrderQueue)),
		),
		lock.NewFactory,
		NewOrderLockFactory,
		NewCacheClient,
	),
)

func NewAdmitter(rdb *redis.Client, cfg config.Config) *seckill.Admitter {
	return seckill.NewAdmitter(rdb, cfg.Worker.Stream)
}

func NewStreamQueue(rdb *redis.Client, cfg config.Config) (*queue.StreamQueue, error) {
	return queue.NewStreamQueue(rdb, cfg.Worker)
}

func NewOrderLockFactory(f *lock.Factory, cfg config.Config) usecase.OrderLockFactory {
	return usecase.OrderLockFactoryFunc(func(userID int64) usecase.Lock {
		return f.NewLock(fmt.Sprintf("order:%d", userID), cfg.Worker.OrderLockTTL)
	})
}

func NewCacheClient(rdb *redis.Client, clk clock.Clock, cfg config.Config) *cache.Client {
	return cache.NewClient(rdb, clk, cfg.Cache)
}
