package request

import "time"

type CreateSeckillVoucherRequest struct {
	Stock     int       `json:"stock" binding:"required,min=1"`
	BeginTime time.Time `json:"begin_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}
