//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"flashsale/internal/handler/api"
	"flashsale/internal/handler/middleware"
	"flashsale/internal/pkg/errs"
	"flashsale/internal/usecase"
	usecasemock "flashsale/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VoucherHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockPurchase *usecasemock.MockPurchaseUseCase
	mockVouchers *usecasemock.MockVoucherUseCase
	handler      *api.VoucherHandler
}

func (s *VoucherHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockPurchase = usecasemock.NewMockPurchaseUseCase(s.mockCtrl)
	s.mockVouchers = usecasemock.NewMockVoucherUseCase(s.mockCtrl)
	s.handler = api.NewVoucherHandler(s.mockPurchase, s.mockVouchers)

	s.router.POST("/api/vouchers/seckill", s.handler.Create)
	s.router.POST("/api/vouchers/:id/seckill", middleware.RequireUser(), s.handler.Seckill)
}

func (s *VoucherHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVoucherHandlerSuite(t *testing.T) {
	suite.Run(t, new(VoucherHandlerTestSuite))
}

func (s *VoucherHandlerTestSuite) perform(method, url string, body any, userID string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *VoucherHandlerTestSuite) TestSeckill() {
	url := "/api/vouchers/10/seckill"

	s.Run("success: returns the order id", func() {
		s.mockPurchase.EXPECT().Purchase(gomock.Any(), int64(10), int64(42)).Return(int64(555), nil)

		rec := s.perform(http.MethodPost, url, nil, "42")

		s.Equal(http.StatusOK, rec.Code)
		var resp map[string]int64
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Equal(int64(555), resp["order_id"])
	})

	s.Run("out of stock maps to 409", func() {
		s.mockPurchase.EXPECT().Purchase(gomock.Any(), int64(10), int64(42)).Return(int64(0), usecase.ErrOutOfStock)

		rec := s.perform(http.MethodPost, url, nil, "42")

		s.Equal(http.StatusConflict, rec.Code)
		s.Contains(rec.Body.String(), "out of stock")
	})

	s.Run("duplicate purchase maps to 409", func() {
		s.mockPurchase.EXPECT().Purchase(gomock.Any(), int64(10), int64(42)).Return(int64(0), usecase.ErrAlreadyPurchased)

		rec := s.perform(http.MethodPost, url, nil, "42")

		s.Equal(http.StatusConflict, rec.Code)
		s.Contains(rec.Body.String(), "already purchased")
	})

	s.Run("store failure maps to 503", func() {
		s.mockPurchase.EXPECT().Purchase(gomock.Any(), int64(10), int64(42)).Return(int64(0), usecase.ErrStoreUnavailable)

		rec := s.perform(http.MethodPost, url, nil, "42")

		s.Equal(http.StatusServiceUnavailable, rec.Code)
	})

	s.Run("marked store failure maps to 503", func() {
		// The usecase layer marks infrastructure failures rather than
		// returning the bare sentinel; the mapping must still hold.
		marked := errs.Mark(errs.New("dial tcp: connection refused"), usecase.ErrStoreUnavailable)
		s.mockPurchase.EXPECT().Purchase(gomock.Any(), int64(10), int64(42)).Return(int64(0), marked)

		rec := s.perform(http.MethodPost, url, nil, "42")

		s.Equal(http.StatusServiceUnavailable, rec.Code)
	})

	s.Run("missing X-User-ID is rejected", func() {
		rec := s.perform(http.MethodPost, url, nil, "")

		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("non-numeric X-User-ID is rejected", func() {
		rec := s.perform(http.MethodPost, url, nil, "not-a-number")

		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("invalid voucher id", func() {
		rec := s.perform(http.MethodPost, "/api/vouchers/abc/seckill", nil, "42")

		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *VoucherHandlerTestSuite) TestCreate() {
	url := "/api/vouchers/seckill"

	body := map[string]any{
		"stock":      100,
		"begin_time": "2026-08-01T10:00:00Z",
		"end_time":   "2026-08-01T12:00:00Z",
	}

	s.Run("success: returns 201 with the voucher id", func() {
		s.mockVouchers.EXPECT().CreateSeckillVoucher(gomock.Any(), 100, gomock.Any(), gomock.Any()).Return(int64(777), nil)

		rec := s.perform(http.MethodPost, url, body, "")

		s.Equal(http.StatusCreated, rec.Code)
		var resp map[string]int64
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Equal(int64(777), resp["id"])
	})

	s.Run("missing stock is rejected", func() {
		invalid := map[string]any{
			"begin_time": "2026-08-01T10:00:00Z",
			"end_time":   "2026-08-01T12:00:00Z",
		}

		rec := s.perform(http.MethodPost, url, invalid, "")

		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("domain rejection maps to 400", func() {
		s.mockVouchers.EXPECT().CreateSeckillVoucher(gomock.Any(), 100, gomock.Any(), gomock.Any()).Return(int64(0), usecase.ErrInvalidVoucher)

		rec := s.perform(http.MethodPost, url, body, "")

		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("marked domain rejection maps to 400", func() {
		marked := errs.Mark(errs.New("sale end time must be after begin time"), usecase.ErrInvalidVoucher)
		s.mockVouchers.EXPECT().CreateSeckillVoucher(gomock.Any(), 100, gomock.Any(), gomock.Any()).Return(int64(0), marked)

		rec := s.perform(http.MethodPost, url, body, "")

		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
