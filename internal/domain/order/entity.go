package order

import (
	"errors"
	"time"
)

var ErrInvalidOrderID = errors.New("order id must be positive")

// Order is an accepted voucher purchase. The id is pre-generated at
// admission time, so an Order is immutable from the moment it exists.
type Order struct {
	id        int64
	userID    int64
	voucherID int64
	createdAt time.Time
}

func NewOrder(id, userID, voucherID int64, createdAt time.Time) (*Order, error) {
	if id <= 0 {
		return nil, ErrInvalidOrderID
	}

	return &Order{
		id:        id,
		userID:    userID,
		voucherID: voucherID,
		createdAt: createdAt,
	}, nil
}

func (o *Order) ID() int64            { return o.id }
func (o *Order) UserID() int64        { return o.userID }
func (o *Order) VoucherID() int64     { return o.voucherID }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
