package response

type CreateSeckillVoucherResponse struct {
	ID int64 `json:"id"`
}

type SeckillResponse struct {
	OrderID int64 `json:"order_id"`
}
