package repository

import (
	"context"
	"errors"

	"flashsale/internal/infra"
	"flashsale/internal/infra/db"
	"flashsale/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5"
)

type ShopQueries interface {
	GetShop(ctx context.Context, dbtx db.DBTX, id int64) (readmodel.ShopRM, error)
	UpdateShop(ctx context.Context, dbtx db.DBTX, shop readmodel.ShopRM) (int64, error)
}

type ShopRepository struct {
	queries ShopQueries
	dbtx    db.DBTX
}

func NewShopRepository(queries *Queries, dbtx db.DBTX) *ShopRepository {
	return &ShopRepository{queries: queries, dbtx: dbtx}
}

func (r *ShopRepository) FindByID(ctx context.Context, id int64) (*readmodel.ShopRM, error) {
	shop, err := r.queries.GetShop(ctx, r.dbtx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "shop not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find shop", err)
	}
	return &shop, nil
}

func (r *ShopRepository) Update(ctx context.Context, shop *readmodel.ShopRM) error {
	affected, err := r.queries.UpdateShop(ctx, r.dbtx, *shop)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update shop", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "shop not found", nil)
	}
	return nil
}
