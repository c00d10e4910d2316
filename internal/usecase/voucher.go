package usecase

import (
	"context"
	"errors"
	"time"

	"flashsale/internal/domain/voucher"
	"flashsale/internal/infra/db"
	"flashsale/internal/pkg/errs"
)

var ErrInvalidVoucher = errors.New("invalid seckill voucher")

// StockSeeder mirrors a freshly created voucher's stock into the shared
// store so the admission script can gate on it.
type StockSeeder interface {
	SeedStock(ctx context.Context, voucherID int64, stock int) error
}

type VoucherUseCase interface {
	CreateSeckillVoucher(ctx context.Context, stock int, beginTime, endTime time.Time) (int64, error)
}

type voucherUseCaseImpl struct {
	voucherRepo VoucherRepository
	seeder      StockSeeder
	idGen       IDGenerator
	dbtx        db.DBTX
}

func NewVoucherUseCase(
	voucherRepo VoucherRepository,
	seeder StockSeeder,
	idGen IDGenerator,
	dbtx db.DBTX,
) VoucherUseCase {
	return &voucherUseCaseImpl{
		voucherRepo: voucherRepo,
		seeder:      seeder,
		idGen:       idGen,
		dbtx:        dbtx,
	}
}

func (u *voucherUseCaseImpl) CreateSeckillVoucher(ctx context.Context, stock int, beginTime, endTime time.Time) (int64, error) {
	id, err := u.idGen.NextID(ctx, "voucher")
	if err != nil {
		return 0, markStoreErr(err)
	}

	v, err := voucher.NewSeckillVoucher(id, stock, beginTime, endTime)
	if err != nil {
		return 0, errs.Mark(err, ErrInvalidVoucher)
	}

	if err := u.voucherRepo.Create(ctx, u.dbtx, v); err != nil {
		return 0, err
	}

	// Seed after the row exists; an unsold voucher row without a counter is
	// harmless, a counter without a row is not.
	if err := u.seeder.SeedStock(ctx, id, stock); err != nil {
		return 0, markStoreErr(err)
	}

	return id, nil
}
