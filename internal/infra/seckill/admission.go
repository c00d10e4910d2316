package seckill

import (
	"context"
	"strconv"

	"flashsale/internal/infra"

	"github.com/redis/go-redis/v9"
)

// Result of one admission attempt. The decision is made entirely inside
// Redis; the database is never consulted on this path.
type Result int

const (
	ResultAdmitted Result = iota
	ResultOutOfStock
	ResultDuplicate
)

const (
	stockKeyPrefix = "seckill:stock:"
	orderKeyPrefix = "seckill:order:"
)

// admitScript runs stock check, duplicate check, decrement, membership add
// and queue append as one indivisible unit. KEYS[1] is the fulfillment
// stream; the stock and membership keys are derived from the voucher id.
//
// Returns: 0 admitted, 1 out of stock, 2 duplicate order.
var admitScript = redis.NewScript(`
local voucherId = ARGV[1]
local userId = ARGV[2]
local orderId = ARGV[3]

local stockKey = 'seckill:stock:' .. voucherId
local orderKey = 'seckill:order:' .. voucherId

local stock = redis.call('get', stockKey)
if (stock == false or tonumber(stock) <= 0) then
    return 1
end
if (redis.call('sismember', orderKey, userId) == 1) then
    return 2
end

redis.call('incrby', stockKey, -1)
redis.call('sadd', orderKey, userId)
redis.call('xadd', KEYS[1], '*', 'id', orderId, 'userId', userId, 'voucherId', voucherId)
return 0
`)

type Admitter struct {
	rdb    *redis.Client
	stream string
}

func NewAdmitter(rdb *redis.Client, stream string) *Admitter {
	return &Admitter{rdb: rdb, stream: stream}
}

func (a *Admitter) TryAdmit(ctx context.Context, voucherID, userID, orderID int64) (Result, error) {
	raw, err := admitScript.Run(ctx, a.rdb,
		[]string{a.stream},
		strconv.FormatInt(voucherID, 10),
		strconv.FormatInt(userID, 10),
		strconv.FormatInt(orderID, 10),
	).Int64()
	if err != nil {
		return 0, infra.WrapRepoErr(infra.KindStoreUnavailable, "failed to run admission script", err)
	}

	return mapResult(raw)
}

// SeedStock mirrors a voucher's stock into Redis so the admission script can
// gate on it. Called once at voucher creation; the counter is decremented
// only by the script afterwards.
func (a *Admitter) SeedStock(ctx context.Context, voucherID int64, stock int) error {
	key := stockKeyPrefix + strconv.FormatInt(voucherID, 10)
	if err := a.rdb.Set(ctx, key, stock, 0).Err(); err != nil {
		return infra.WrapRepoErr(infra.KindStoreUnavailable, "failed to seed stock counter", err)
	}
	return nil
}

func mapResult(raw int64) (Result, error) {
	switch raw {
	case 0:
		return ResultAdmitted, nil
	case 1:
		return ResultOutOfStock, nil
	case 2:
		return ResultDuplicate, nil
	default:
		return 0, infra.WrapRepoErr(infra.KindStoreUnavailable,
			"unexpected admission script result "+strconv.FormatInt(raw, 10), nil)
	}
}
