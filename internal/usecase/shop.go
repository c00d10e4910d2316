package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"flashsale/internal/infra"
	"flashsale/internal/infra/cache"
	"flashsale/internal/usecase/readmodel"
)

const (
	shopCacheKeyPrefix = "cache:shop:"
	shopLockKeyPrefix  = "lock:shop:"
)

var (
	ErrShopNotFound   = errors.New("shop not found")
	ErrShopIDRequired = errors.New("shop id is required")
)

type ShopRepository interface {
	FindByID(ctx context.Context, id int64) (*readmodel.ShopRM, error)
	Update(ctx context.Context, shop *readmodel.ShopRM) error
}

// ShopUseCase serves shop reads through the configured cache-aside strategy
// and keeps the cache coherent on writes. Which strategy guards a hot shop
// is a deployment decision, not a per-request one.
type ShopUseCase interface {
	GetShop(ctx context.Context, id int64) (*readmodel.ShopRM, error)
	UpdateShop(ctx context.Context, shop *readmodel.ShopRM) error
	WarmShopCache(ctx context.Context, id int64, ttl time.Duration) error
}

type shopUseCaseImpl struct {
	shopRepo ShopRepository
	cache    *cache.Client
	strategy string
}

func NewShopUseCase(shopRepo ShopRepository, cacheClient *cache.Client, strategy string) ShopUseCase {
	return &shopUseCaseImpl{
		shopRepo: shopRepo,
		cache:    cacheClient,
		strategy: strategy,
	}
}

func (u *shopUseCaseImpl) GetShop(ctx context.Context, id int64) (*readmodel.ShopRM, error) {
	key := shopCacheKey(id)
	lockKey := shopLockKey(id)
	fallback := u.sourceFallback(id)

	var (
		shop *readmodel.ShopRM
		err  error
	)
	switch u.strategy {
	case "passthrough":
		shop, err = cache.GetWithPassThrough(ctx, u.cache, key, fallback)
	case "mutex":
		shop, err = cache.GetWithMutex(ctx, u.cache, key, lockKey, fallback)
	default:
		shop, err = cache.GetWithLogicalExpire(ctx, u.cache, key, lockKey, fallback)
	}

	if err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			return nil, ErrShopNotFound
		}
		return nil, markStoreErr(err)
	}
	return shop, nil
}

// UpdateShop writes the source of record first and invalidates the cache
// second; a reader racing the gap rebuilds from the fresh row.
func (u *shopUseCaseImpl) UpdateShop(ctx context.Context, shop *readmodel.ShopRM) error {
	if shop.ID == 0 {
		return ErrShopIDRequired
	}

	if err := u.shopRepo.Update(ctx, shop); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrShopNotFound
		}
		return err
	}

	return markStoreErr(u.cache.Delete(ctx, shopCacheKey(shop.ID)))
}

// WarmShopCache pre-loads a shop for the logical-expiration strategy, which
// never rebuilds a fully absent key on the read path.
func (u *shopUseCaseImpl) WarmShopCache(ctx context.Context, id int64, ttl time.Duration) error {
	shop, err := u.shopRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrShopNotFound
		}
		return err
	}

	return markStoreErr(cache.SetWithLogicalExpire(ctx, u.cache, shopCacheKey(id), shop, ttl))
}

func (u *shopUseCaseImpl) sourceFallback(id int64) func(context.Context) (*readmodel.ShopRM, error) {
	return func(ctx context.Context) (*readmodel.ShopRM, error) {
		shop, err := u.shopRepo.FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, cache.ErrNotFound
			}
			return nil, err
		}
		return shop, nil
	}
}

func shopCacheKey(id int64) string {
	return fmt.Sprintf("%s%d", shopCacheKeyPrefix, id)
}

func shopLockKey(id int64) string {
	return fmt.Sprintf("%s%d", shopLockKeyPrefix, id)
}
