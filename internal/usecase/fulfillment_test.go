//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"flashsale/internal/domain/order"
	"flashsale/internal/infra/db"
	"flashsale/internal/infra/queue"
	"flashsale/internal/pkg/clock"
	"flashsale/internal/usecase"
	sharedmock "flashsale/tests/mock/shared"
	usecasemock "flashsale/tests/mock/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fulfillmentMocks struct {
	orderRepo   *usecasemock.MockOrderRepository
	voucherRepo *usecasemock.MockVoucherRepository
	locks       *usecasemock.MockOrderLockFactory
	lock        *usecasemock.MockLock
	tx          *sharedmock.MockTxRunner
	clock       *clock.MockClock
}

func newFulfillmentMocks(t *testing.T) (usecase.FulfillmentUseCase, fulfillmentMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := fulfillmentMocks{
		orderRepo:   usecasemock.NewMockOrderRepository(ctrl),
		voucherRepo: usecasemock.NewMockVoucherRepository(ctrl),
		locks:       usecasemock.NewMockOrderLockFactory(ctrl),
		lock:        usecasemock.NewMockLock(ctrl),
		tx:          sharedmock.NewMockTxRunner(ctrl),
		clock:       clock.NewMockClock(time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)),
	}
	uc := usecase.NewFulfillmentUseCase(m.orderRepo, m.voucherRepo, m.locks, m.tx, m.clock)
	return uc, m
}

func passThroughTx(m fulfillmentMocks) {
	m.tx.EXPECT().RunInTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(db.DBTX) error) error {
			return fn(nil)
		})
}

func TestFulfillmentUseCase_Process_PersistsOrder(t *testing.T) {
	uc, m := newFulfillmentMocks(t)
	msg := &queue.Message{ID: "1-0", OrderID: 555, UserID: 42, VoucherID: 10}

	m.locks.EXPECT().NewOrderLock(int64(42)).Return(m.lock)
	m.lock.EXPECT().TryLock(gomock.Any()).Return(true, nil)
	m.lock.EXPECT().Unlock(gomock.Any()).Return(nil)
	passThroughTx(m)

	m.orderRepo.EXPECT().CountByUserAndVoucher(gomock.Any(), gomock.Any(), int64(42), int64(10)).Return(int64(0), nil)
	m.voucherRepo.EXPECT().DecrementStock(gomock.Any(), gomock.Any(), int64(10)).Return(true, nil)
	m.orderRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ db.DBTX, o *order.Order) error {
			assert.Equal(t, int64(555), o.ID())
			assert.Equal(t, int64(42), o.UserID())
			assert.Equal(t, int64(10), o.VoucherID())
			assert.Equal(t, m.clock.Now(), o.CreatedAt())
			return nil
		})

	require.NoError(t, uc.Process(context.Background(), msg))
}

func TestFulfillmentUseCase_Process_SkipsWhenOrderAlreadyPersisted(t *testing.T) {
	uc, m := newFulfillmentMocks(t)
	msg := &queue.Message{ID: "1-0", OrderID: 555, UserID: 42, VoucherID: 10}

	m.locks.EXPECT().NewOrderLock(int64(42)).Return(m.lock)
	m.lock.EXPECT().TryLock(gomock.Any()).Return(true, nil)
	m.lock.EXPECT().Unlock(gomock.Any()).Return(nil)
	passThroughTx(m)

	// Replayed record: the row already exists, nothing more is written.
	m.orderRepo.EXPECT().CountByUserAndVoucher(gomock.Any(), gomock.Any(), int64(42), int64(10)).Return(int64(1), nil)

	require.NoError(t, uc.Process(context.Background(), msg))
}

func TestFulfillmentUseCase_Process_SkipsWhenAuthoritativeStockExhausted(t *testing.T) {
	uc, m := newFulfillmentMocks(t)
	msg := &queue.Message{ID: "1-0", OrderID: 555, UserID: 42, VoucherID: 10}

	m.locks.EXPECT().NewOrderLock(int64(42)).Return(m.lock)
	m.lock.EXPECT().TryLock(gomock.Any()).Return(true, nil)
	m.lock.EXPECT().Unlock(gomock.Any()).Return(nil)
	passThroughTx(m)

	m.orderRepo.EXPECT().CountByUserAndVoucher(gomock.Any(), gomock.Any(), int64(42), int64(10)).Return(int64(0), nil)
	m.voucherRepo.EXPECT().DecrementStock(gomock.Any(), gomock.Any(), int64(10)).Return(false, nil)

	require.NoError(t, uc.Process(context.Background(), msg))
}

func TestFulfillmentUseCase_Process_DropsRecordWhenLockHeld(t *testing.T) {
	uc, m := newFulfillmentMocks(t)
	msg := &queue.Message{ID: "1-0", OrderID: 555, UserID: 42, VoucherID: 10}

	m.locks.EXPECT().NewOrderLock(int64(42)).Return(m.lock)
	// Single attempt, no retry, no transaction.
	m.lock.EXPECT().TryLock(gomock.Any()).Return(false, nil)

	require.NoError(t, uc.Process(context.Background(), msg))
}

func TestFulfillmentUseCase_Process_PropagatesLockError(t *testing.T) {
	uc, m := newFulfillmentMocks(t)
	msg := &queue.Message{ID: "1-0", OrderID: 555, UserID: 42, VoucherID: 10}

	m.locks.EXPECT().NewOrderLock(int64(42)).Return(m.lock)
	m.lock.EXPECT().TryLock(gomock.Any()).Return(false, assert.AnError)

	require.ErrorIs(t, uc.Process(context.Background(), msg), assert.AnError)
}

func TestFulfillmentUseCase_Process_ReleasesLockOnTxFailure(t *testing.T) {
	uc, m := newFulfillmentMocks(t)
	msg := &queue.Message{ID: "1-0", OrderID: 555, UserID: 42, VoucherID: 10}

	m.locks.EXPECT().NewOrderLock(int64(42)).Return(m.lock)
	m.lock.EXPECT().TryLock(gomock.Any()).Return(true, nil)
	m.lock.EXPECT().Unlock(gomock.Any()).Return(nil)
	m.tx.EXPECT().RunInTx(gomock.Any(), gomock.Any()).Return(assert.AnError)

	require.ErrorIs(t, uc.Process(context.Background(), msg), assert.AnError)
}
