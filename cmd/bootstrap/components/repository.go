package components

import (
	"flashsale/internal/infra/db"
	repo_impl "flashsale/internal/infra/repository"
	"flashsale/internal/usecase"
	"flashsale/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		repo_impl.NewQueries,
		NewDBTX,
		fx.Annotate(
			repo_impl.NewOrderRepository,
			fx.As(new(usecase.OrderRepository)),
		),
		fx.Annotate(
			repo_impl.NewVoucherRepository,
			fx.As(new(usecase.VoucherRepository)),
		),
		fx.Annotate(
			repo_impl.NewShopRepository,
			fx.As(new(usecase.ShopRepository)),
		),
		fx.Annotate(
			shared.NewPgxTxRunner,
			fx.As(new(shared.TxRunner)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
