package repository

import (
	"context"
	"errors"

	"flashsale/internal/domain/voucher"
	"flashsale/internal/infra"
	"flashsale/internal/infra/db"

	"github.com/jackc/pgx/v5/pgconn"
)

type VoucherQueries interface {
	InsertSeckillVoucher(ctx context.Context, dbtx db.DBTX, arg InsertSeckillVoucherParams) error
	DecrementVoucherStock(ctx context.Context, dbtx db.DBTX, voucherID int64) (int64, error)
}

type VoucherRepository struct {
	queries VoucherQueries
}

func NewVoucherRepository(queries *Queries) *VoucherRepository {
	return &VoucherRepository{queries: queries}
}

func (r *VoucherRepository) Create(ctx context.Context, dbtx db.DBTX, v *voucher.SeckillVoucher) error {
	err := r.queries.InsertSeckillVoucher(ctx, dbtx, InsertSeckillVoucherParams{
		VoucherID: v.VoucherID(),
		Stock:     v.Stock(),
		BeginTime: v.BeginTime(),
		EndTime:   v.EndTime(),
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "seckill voucher already exists", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to insert seckill voucher", err)
	}
	return nil
}

// DecrementStock reports whether the conditional update took effect; false
// means authoritative stock was already exhausted.
func (r *VoucherRepository) DecrementStock(ctx context.Context, dbtx db.DBTX, voucherID int64) (bool, error) {
	affected, err := r.queries.DecrementVoucherStock(ctx, dbtx, voucherID)
	if err != nil {
		return false, infra.WrapRepoErr(infra.KindDBFailure, "failed to decrement voucher stock", err)
	}
	return affected > 0, nil
}
