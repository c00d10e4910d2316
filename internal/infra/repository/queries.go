package repository

import (
	"context"
	"time"

	"flashsale/internal/infra/db"
	"flashsale/internal/usecase/readmodel"
)

// Queries holds the raw SQL touched by this service. Methods take a DBTX so
// callers decide whether they run inside a transaction.
type Queries struct{}

func NewQueries() *Queries {
	return &Queries{}
}

func (q *Queries) CountOrdersByUserAndVoucher(ctx context.Context, dbtx db.DBTX, userID, voucherID int64) (int64, error) {
	const query = `SELECT count(*) FROM voucher_order WHERE user_id = $1 AND voucher_id = $2`

	var count int64
	err := dbtx.QueryRow(ctx, query, userID, voucherID).Scan(&count)
	return count, err
}

type InsertOrderParams struct {
	ID        int64
	UserID    int64
	VoucherID int64
	CreatedAt time.Time
}

func (q *Queries) InsertOrder(ctx context.Context, dbtx db.DBTX, arg InsertOrderParams) error {
	const query = `INSERT INTO voucher_order (id, user_id, voucher_id, created_at) VALUES ($1, $2, $3, $4)`

	_, err := dbtx.Exec(ctx, query, arg.ID, arg.UserID, arg.VoucherID, arg.CreatedAt)
	return err
}

// DecrementVoucherStock conditionally takes one unit of authoritative stock.
// Returns the number of rows affected; zero means the guard `stock > 0` did
// not hold.
func (q *Queries) DecrementVoucherStock(ctx context.Context, dbtx db.DBTX, voucherID int64) (int64, error) {
	const query = `UPDATE seckill_voucher SET stock = stock - 1 WHERE voucher_id = $1 AND stock > 0`

	tag, err := dbtx.Exec(ctx, query, voucherID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type InsertSeckillVoucherParams struct {
	VoucherID int64
	Stock     int
	BeginTime time.Time
	EndTime   time.Time
}

func (q *Queries) InsertSeckillVoucher(ctx context.Context, dbtx db.DBTX, arg InsertSeckillVoucherParams) error {
	const query = `INSERT INTO seckill_voucher (voucher_id, stock, begin_time, end_time) VALUES ($1, $2, $3, $4)`

	_, err := dbtx.Exec(ctx, query, arg.VoucherID, arg.Stock, arg.BeginTime, arg.EndTime)
	return err
}

func (q *Queries) GetShop(ctx context.Context, dbtx db.DBTX, id int64) (readmodel.ShopRM, error) {
	const query = `SELECT id, name, type_id, address, avg_price, score FROM shop WHERE id = $1`

	var shop readmodel.ShopRM
	err := dbtx.QueryRow(ctx, query, id).Scan(
		&shop.ID, &shop.Name, &shop.TypeID, &shop.Address, &shop.AvgPrice, &shop.Score,
	)
	return shop, err
}

func (q *Queries) UpdateShop(ctx context.Context, dbtx db.DBTX, shop readmodel.ShopRM) (int64, error) {
	const query = `UPDATE shop SET name = $2, type_id = $3, address = $4, avg_price = $5, score = $6, updated_at = now() WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, shop.ID, shop.Name, shop.TypeID, shop.Address, shop.AvgPrice, shop.Score)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
