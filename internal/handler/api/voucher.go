package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "flashsale/internal/handler/dto/request"
	resdto "flashsale/internal/handler/dto/response"
	"flashsale/internal/handler/httperr"
	"flashsale/internal/handler/middleware"
	"flashsale/internal/pkg/errs"
	"flashsale/internal/usecase"

	"github.com/gin-gonic/gin"
)

var (
	errMissingUserID = errors.New("missing user id in context")
	errInvalidID     = errors.New("id must be a positive integer")
)

type VoucherHandler struct {
	purchase usecase.PurchaseUseCase
	vouchers usecase.VoucherUseCase
}

func NewVoucherHandler(purchase usecase.PurchaseUseCase, vouchers usecase.VoucherUseCase) *VoucherHandler {
	return &VoucherHandler{purchase: purchase, vouchers: vouchers}
}

func (h *VoucherHandler) Create(c *gin.Context) {
	var req reqdto.CreateSeckillVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.vouchers.CreateSeckillVoucher(c.Request.Context(), req.Stock, req.BeginTime, req.EndTime)
	if err != nil {
		switch {
		case errs.Is(err, usecase.ErrInvalidVoucher):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid voucher", nil)
		case errs.Is(err, usecase.ErrStoreUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Service temporarily unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create voucher failed", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateSeckillVoucherResponse{ID: id})
}

func (h *VoucherHandler) Seckill(c *gin.Context) {
	voucherID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || voucherID <= 0 {
		if err == nil {
			err = errInvalidID
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid voucher id", nil)
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUserID, "Unauthorized", nil)
		return
	}

	orderID, err := h.purchase.Purchase(c.Request.Context(), voucherID, userID)
	if err != nil {
		switch {
		case errs.Is(err, usecase.ErrOutOfStock):
			httperr.AbortWithError(c, http.StatusConflict, err, "out of stock", nil)
		case errs.Is(err, usecase.ErrAlreadyPurchased):
			httperr.AbortWithError(c, http.StatusConflict, err, "already purchased", nil)
		case errs.Is(err, usecase.ErrStoreUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Service temporarily unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Purchase failed", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.SeckillResponse{OrderID: orderID})
}
