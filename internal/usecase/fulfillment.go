package usecase

import (
	"context"
	"log/slog"

	"flashsale/internal/domain/order"
	"flashsale/internal/domain/voucher"
	"flashsale/internal/infra/db"
	"flashsale/internal/infra/queue"
	"flashsale/internal/pkg/clock"
	"flashsale/internal/usecase/shared"
)

type OrderRepository interface {
	CountByUserAndVoucher(ctx context.Context, dbtx db.DBTX, userID, voucherID int64) (int64, error)
	Create(ctx context.Context, dbtx db.DBTX, o *order.Order) error
}

type VoucherRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, v *voucher.SeckillVoucher) error
	DecrementStock(ctx context.Context, dbtx db.DBTX, voucherID int64) (bool, error)
}

type Lock interface {
	TryLock(ctx context.Context) (bool, error)
	Unlock(ctx context.Context) error
}

// OrderLockFactory mints the per-user lease lock serializing order commits
// for one user across all service instances.
type OrderLockFactory interface {
	NewOrderLock(userID int64) Lock
}

type OrderLockFactoryFunc func(userID int64) Lock

func (f OrderLockFactoryFunc) NewOrderLock(userID int64) Lock { return f(userID) }

// FulfillmentUseCase turns one queued admission record into a durable order
// row. Process must tolerate duplicate delivery: the dispatcher replays
// unacknowledged records after a crash.
type FulfillmentUseCase interface {
	Process(ctx context.Context, msg *queue.Message) error
}

type fulfillmentUseCaseImpl struct {
	orderRepo   OrderRepository
	voucherRepo VoucherRepository
	locks       OrderLockFactory
	tx          shared.TxRunner
	clock       clock.Clock
}

func NewFulfillmentUseCase(
	orderRepo OrderRepository,
	voucherRepo VoucherRepository,
	locks OrderLockFactory,
	tx shared.TxRunner,
	clock clock.Clock,
) FulfillmentUseCase {
	return &fulfillmentUseCaseImpl{
		orderRepo:   orderRepo,
		voucherRepo: voucherRepo,
		locks:       locks,
		tx:          tx,
		clock:       clock,
	}
}

func (u *fulfillmentUseCaseImpl) Process(ctx context.Context, msg *queue.Message) error {
	l := u.locks.NewOrderLock(msg.UserID)

	// Single attempt, no wait: a held lock means another dispatcher is
	// already committing for this user, and redelivery covers us if it
	// dies mid-commit.
	acquired, err := l.TryLock(ctx)
	if err != nil {
		return err
	}
	if !acquired {
		slog.Warn("order lock held elsewhere, dropping record",
			"user_id", msg.UserID, "order_id", msg.OrderID)
		return nil
	}
	defer func() {
		if unlockErr := l.Unlock(ctx); unlockErr != nil {
			slog.Warn("failed to release order lock", "user_id", msg.UserID, "error", unlockErr)
		}
	}()

	return u.createOrder(ctx, msg)
}

func (u *fulfillmentUseCaseImpl) createOrder(ctx context.Context, msg *queue.Message) error {
	return u.tx.RunInTx(ctx, func(tx db.DBTX) error {
		// Authoritative one-order-per-user check. The admission script already
		// filtered duplicates in Redis, but this layer sees replayed records.
		count, err := u.orderRepo.CountByUserAndVoucher(ctx, tx, msg.UserID, msg.VoucherID)
		if err != nil {
			return err
		}
		if count > 0 {
			slog.Warn("order already persisted, skipping",
				"user_id", msg.UserID, "voucher_id", msg.VoucherID, "order_id", msg.OrderID)
			return nil
		}

		decremented, err := u.voucherRepo.DecrementStock(ctx, tx, msg.VoucherID)
		if err != nil {
			return err
		}
		if !decremented {
			// Should not happen when the Redis counter is the gate; guards
			// against drift between the two stock counters.
			slog.Warn("authoritative stock exhausted, skipping",
				"voucher_id", msg.VoucherID, "order_id", msg.OrderID)
			return nil
		}

		o, err := order.NewOrder(msg.OrderID, msg.UserID, msg.VoucherID, u.clock.Now())
		if err != nil {
			return err
		}

		return u.orderRepo.Create(ctx, tx, o)
	})
}
