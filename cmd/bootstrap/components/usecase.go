package components

import (
	"flashsale/internal/infra/cache"
	"flashsale/internal/pkg/clock"
	"flashsale/internal/pkg/config"
	"flashsale/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewPurchaseUseCase,
		usecase.NewFulfillmentUseCase,
		usecase.NewVoucherUseCase,
		NewShopUseCase,
	),
)

func NewShopUseCase(repo usecase.ShopRepository, client *cache.Client, cfg config.Config) usecase.ShopUseCase {
	return usecase.NewShopUseCase(repo, client, cfg.Cache.Strategy)
}
