package usecase

import (
	"context"
	"errors"

	"flashsale/internal/infra"
	"flashsale/internal/infra/seckill"
	"flashsale/internal/pkg/errs"
)

var (
	// Expected business outcomes of a purchase attempt, never logged as
	// errors.
	ErrOutOfStock       = errors.New("voucher out of stock")
	ErrAlreadyPurchased = errors.New("voucher already purchased by this user")

	// ErrStoreUnavailable marks failures of the shared store on the request
	// path; callers may retry.
	ErrStoreUnavailable = errors.New("shared store unavailable")
)

type IDGenerator interface {
	NextID(ctx context.Context, namespace string) (int64, error)
}

type Admitter interface {
	TryAdmit(ctx context.Context, voucherID, userID, orderID int64) (seckill.Result, error)
}

// PurchaseUseCase is the synchronous half of a flash sale. It answers from
// the shared store alone; the database write happens later on the
// fulfillment worker, so the caller gets the order id before the order row
// exists.
type PurchaseUseCase interface {
	Purchase(ctx context.Context, voucherID, userID int64) (int64, error)
}

type purchaseUseCaseImpl struct {
	idGen    IDGenerator
	admitter Admitter
}

func NewPurchaseUseCase(idGen IDGenerator, admitter Admitter) PurchaseUseCase {
	return &purchaseUseCaseImpl{
		idGen:    idGen,
		admitter: admitter,
	}
}

func (u *purchaseUseCaseImpl) Purchase(ctx context.Context, voucherID, userID int64) (int64, error) {
	// Generated before admission so the id can ride along in the queued
	// record and be returned to the caller immediately.
	orderID, err := u.idGen.NextID(ctx, "order")
	if err != nil {
		return 0, markStoreErr(err)
	}

	result, err := u.admitter.TryAdmit(ctx, voucherID, userID, orderID)
	if err != nil {
		return 0, markStoreErr(err)
	}

	switch result {
	case seckill.ResultAdmitted:
		return orderID, nil
	case seckill.ResultOutOfStock:
		return 0, ErrOutOfStock
	case seckill.ResultDuplicate:
		return 0, ErrAlreadyPurchased
	default:
		return 0, errs.New("unknown admission result")
	}
}

func markStoreErr(err error) error {
	if infra.IsKind(err, infra.KindStoreUnavailable) {
		return errs.Mark(err, ErrStoreUnavailable)
	}
	return err
}
