//go:build e2e

package seckill_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"flashsale/internal/worker"
	"flashsale/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const createVoucherURL = "/api/vouchers/seckill"

type seckillSuite struct {
	e2e.SharedSuite
}

func TestSeckillSuite(t *testing.T) {
	suite.Run(t, new(seckillSuite))
}

func (s *seckillSuite) createVoucher(stock int) int64 {
	body := map[string]any{
		"stock":      stock,
		"begin_time": time.Now().Add(-time.Hour).Format(time.RFC3339),
		"end_time":   time.Now().Add(time.Hour).Format(time.RFC3339),
	}
	data, err := json.Marshal(body)
	require.NoError(s.T(), err)

	req := httptest.NewRequest(http.MethodPost, createVoucherURL, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Env.Router.ServeHTTP(rec, req)
	require.Equal(s.T(), http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		ID int64 `json:"id"`
	}
	require.NoError(s.T(), json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Positive(s.T(), resp.ID)
	return resp.ID
}

func (s *seckillSuite) purchase(voucherID, userID int64) *httptest.ResponseRecorder {
	url := fmt.Sprintf("/api/vouchers/%d/seckill", voucherID)
	req := httptest.NewRequest(http.MethodPost, url, nil)
	req.Header.Set("X-User-ID", strconv.FormatInt(userID, 10))
	rec := httptest.NewRecorder()
	s.Env.Router.ServeHTTP(rec, req)
	return rec
}

func (s *seckillSuite) orderCount(voucherID int64) int64 {
	var count int64
	err := s.Env.Pool.QueryRow(context.Background(),
		"SELECT count(*) FROM voucher_order WHERE voucher_id = $1", voucherID).Scan(&count)
	require.NoError(s.T(), err)
	return count
}

func (s *seckillSuite) dbStock(voucherID int64) int {
	var stock int
	err := s.Env.Pool.QueryRow(context.Background(),
		"SELECT stock FROM seckill_voucher WHERE voucher_id = $1", voucherID).Scan(&stock)
	require.NoError(s.T(), err)
	return stock
}

// drainQueue runs a dispatcher until cond holds, then shuts it down.
func (s *seckillSuite) drainQueue(cond func() bool) {
	d := worker.NewDispatcher(s.Env.Queue, s.Env.Fulfillment, s.Env.Cfg.Worker)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		d.Run(ctx)
	}()

	require.Eventually(s.T(), cond, 15*time.Second, 100*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		s.T().Fatal("dispatcher did not stop")
	}
}

func (s *seckillSuite) TestSingleUnitTwoBuyers() {
	voucherID := s.createVoucher(1)

	first := s.purchase(voucherID, 1001)
	s.Equal(http.StatusOK, first.Code, first.Body.String())

	second := s.purchase(voucherID, 1002)
	s.Equal(http.StatusConflict, second.Code)
	s.Contains(second.Body.String(), "out of stock")

	s.drainQueue(func() bool { return s.orderCount(voucherID) == 1 })
	s.Equal(0, s.dbStock(voucherID))
}

func (s *seckillSuite) TestDuplicatePurchaseRejected() {
	voucherID := s.createVoucher(10)

	first := s.purchase(voucherID, 2001)
	s.Equal(http.StatusOK, first.Code, first.Body.String())

	again := s.purchase(voucherID, 2001)
	s.Equal(http.StatusConflict, again.Code)
	s.Contains(again.Body.String(), "already purchased")

	s.drainQueue(func() bool { return s.orderCount(voucherID) == 1 })
	s.Equal(9, s.dbStock(voucherID))
}

func (s *seckillSuite) TestNeverOversellsUnderConcurrency() {
	const (
		stock  = 5
		buyers = 20
	)
	voucherID := s.createVoucher(stock)

	var wg sync.WaitGroup
	codes := make([]int, buyers)
	for i := range buyers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			codes[i] = s.purchase(voucherID, int64(3000+i)).Code
		}(i)
	}
	wg.Wait()

	admitted := 0
	for _, code := range codes {
		switch code {
		case http.StatusOK:
			admitted++
		case http.StatusConflict:
		default:
			s.T().Fatalf("unexpected status %d", code)
		}
	}
	s.Equal(stock, admitted)

	s.drainQueue(func() bool { return s.orderCount(voucherID) == stock })
	s.Equal(0, s.dbStock(voucherID))
}

// A consumer that read a record and died before acking must not lose the
// order: the next dispatcher replays its pending list first.
func (s *seckillSuite) TestCrashReplayPersistsUnackedOrder() {
	voucherID := s.createVoucher(1)

	rec := s.purchase(voucherID, 4001)
	s.Equal(http.StatusOK, rec.Code, rec.Body.String())

	// Deliver the record to the consumer without processing or acking it,
	// simulating a crash mid-flight.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	msg, err := s.Env.Queue.ReadLive(ctx)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), msg)
	s.Equal(int64(4001), msg.UserID)

	s.Equal(int64(0), s.orderCount(voucherID))

	s.drainQueue(func() bool { return s.orderCount(voucherID) == 1 })
	s.Equal(0, s.dbStock(voucherID))
}
