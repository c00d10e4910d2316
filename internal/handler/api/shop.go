package api

import (
	"net/http"
	"strconv"

	reqdto "flashsale/internal/handler/dto/request"
	resdto "flashsale/internal/handler/dto/response"
	"flashsale/internal/handler/httperr"
	"flashsale/internal/pkg/errs"
	"flashsale/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ShopHandler struct {
	shops usecase.ShopUseCase
}

func NewShopHandler(shops usecase.ShopUseCase) *ShopHandler {
	return &ShopHandler{shops: shops}
}

func (h *ShopHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		if err == nil {
			err = errInvalidID
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid shop id", nil)
		return
	}

	shop, err := h.shops.GetShop(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, usecase.ErrShopNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Shop not found", nil)
		case errs.Is(err, usecase.ErrStoreUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Service temporarily unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load shop", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromShopRM(shop))
}

func (h *ShopHandler) Update(c *gin.Context) {
	var req reqdto.UpdateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.shops.UpdateShop(c.Request.Context(), req.ToReadModel()); err != nil {
		switch {
		case errs.Is(err, usecase.ErrShopIDRequired):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Shop id is required", nil)
		case errs.Is(err, usecase.ErrShopNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Shop not found", nil)
		case errs.Is(err, usecase.ErrStoreUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Service temporarily unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Update shop failed", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
