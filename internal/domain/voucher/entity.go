package voucher

import (
	"errors"
	"time"
)

var (
	ErrNonPositiveStock = errors.New("seckill stock must be positive")
	ErrInvalidSaleTime  = errors.New("sale end time must be after begin time")
)

// SeckillVoucher is a voucher offered in limited quantity for a bounded
// time window. Stock here is the authoritative count; the Redis counter
// mirroring it is only the admission gate.
type SeckillVoucher struct {
	voucherID int64
	stock     int
	beginTime time.Time
	endTime   time.Time
}

func NewSeckillVoucher(voucherID int64, stock int, beginTime, endTime time.Time) (*SeckillVoucher, error) {
	if stock <= 0 {
		return nil, ErrNonPositiveStock
	}
	if !endTime.After(beginTime) {
		return nil, ErrInvalidSaleTime
	}

	return &SeckillVoucher{
		voucherID: voucherID,
		stock:     stock,
		beginTime: beginTime,
		endTime:   endTime,
	}, nil
}

func (v *SeckillVoucher) IsOnSaleAt(t time.Time) bool {
	return !t.Before(v.beginTime) && !t.After(v.endTime)
}

func (v *SeckillVoucher) VoucherID() int64     { return v.voucherID }
func (v *SeckillVoucher) Stock() int           { return v.stock }
func (v *SeckillVoucher) BeginTime() time.Time { return v.beginTime }
func (v *SeckillVoucher) EndTime() time.Time   { return v.endTime }
