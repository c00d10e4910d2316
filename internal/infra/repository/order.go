package repository

import (
	"context"
	"errors"

	"flashsale/internal/domain/order"
	"flashsale/internal/infra"
	"flashsale/internal/infra/db"

	"github.com/jackc/pgx/v5/pgconn"
)

type OrderQueries interface {
	CountOrdersByUserAndVoucher(ctx context.Context, dbtx db.DBTX, userID, voucherID int64) (int64, error)
	InsertOrder(ctx context.Context, dbtx db.DBTX, arg InsertOrderParams) error
}

type OrderRepository struct {
	queries OrderQueries
}

func NewOrderRepository(queries *Queries) *OrderRepository {
	return &OrderRepository{queries: queries}
}

func (r *OrderRepository) CountByUserAndVoucher(ctx context.Context, dbtx db.DBTX, userID, voucherID int64) (int64, error) {
	count, err := r.queries.CountOrdersByUserAndVoucher(ctx, dbtx, userID, voucherID)
	if err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "failed to count orders", err)
	}
	return count, nil
}

func (r *OrderRepository) Create(ctx context.Context, dbtx db.DBTX, o *order.Order) error {
	err := r.queries.InsertOrder(ctx, dbtx, InsertOrderParams{
		ID:        o.ID(),
		UserID:    o.UserID(),
		VoucherID: o.VoucherID(),
		CreatedAt: o.CreatedAt(),
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "order already exists", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to insert order", err)
	}
	return nil
}
