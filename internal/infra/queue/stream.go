package queue

import (
	"context"
	"strconv"
	"strings"
	"time"

	"flashsale/internal/infra"
	"flashsale/internal/pkg/config"
	"flashsale/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// Message is one fulfillment record read from the queue. ID is the stream
// entry id used for acknowledgment.
type Message struct {
	ID        string
	OrderID   int64
	UserID    int64
	VoucherID int64
}

// MalformedError reports a stream entry whose fields cannot be decoded into
// a Message. Unlike a transient store error, retrying never helps; it
// carries the entry id so the consumer can acknowledge the entry and move
// on instead of replaying it forever.
type MalformedError struct {
	EntryID string
	Err     error
}

func (e *MalformedError) Error() string {
	return "malformed stream entry " + e.EntryID + ": " + e.Err.Error()
}

func (e *MalformedError) Unwrap() error {
	return e.Err
}

// OrderQueue is the consumer-group cursor over the fulfillment log.
// ReadLive returns the next undelivered record (nil when the bounded wait
// elapses with nothing to read); ReadPending returns the oldest delivered-
// but-unacknowledged record for this consumer (nil when the backlog is
// empty). Both deliver at-least-once: a record stays pending until Ack.
type OrderQueue interface {
	ReadLive(ctx context.Context) (*Message, error)
	ReadPending(ctx context.Context) (*Message, error)
	Ack(ctx context.Context, id string) error
}

type StreamQueue struct {
	rdb      *redis.Client
	stream   string
	group    string
	consumer string
	block    time.Duration
}

// NewStreamQueue creates the consumer group (with MKSTREAM) if it does not
// exist yet; a BUSYGROUP reply means another instance got there first.
func NewStreamQueue(rdb *redis.Client, cfg config.WorkerConfig) (*StreamQueue, error) {
	err := rdb.XGroupCreateMkStream(context.Background(), cfg.Stream, cfg.Group, "0").Err()
	if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
		return nil, infra.WrapRepoErr(infra.KindStoreUnavailable, "failed to create consumer group", err)
	}

	return &StreamQueue{
		rdb:      rdb,
		stream:   cfg.Stream,
		group:    cfg.Group,
		consumer: cfg.Consumer,
		block:    cfg.BlockTimeout,
	}, nil
}

func (q *StreamQueue) ReadLive(ctx context.Context) (*Message, error) {
	return q.readOne(ctx, ">", q.block)
}

func (q *StreamQueue) ReadPending(ctx context.Context) (*Message, error) {
	return q.readOne(ctx, "0", -1)
}

func (q *StreamQueue) Ack(ctx context.Context, id string) error {
	if err := q.rdb.XAck(ctx, q.stream, q.group, id).Err(); err != nil {
		return infra.WrapRepoErr(infra.KindStoreUnavailable, "failed to ack stream entry", err)
	}
	return nil
}

func (q *StreamQueue) readOne(ctx context.Context, offset string, block time.Duration) (*Message, error) {
	streams, err := q.rdb.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    q.group,
		Consumer: q.consumer,
		Streams:  []string{q.stream, offset},
		Count:    1,
		Block:    block,
	}).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindStoreUnavailable, "failed to read stream", err)
	}

	if len(streams) == 0 || len(streams[0].Messages) == 0 {
		return nil, nil
	}

	return parseMessage(streams[0].Messages[0])
}

func parseMessage(entry redis.XMessage) (*Message, error) {
	msg := &Message{ID: entry.ID}

	var err error
	if msg.OrderID, err = fieldInt64(entry.Values, "id"); err != nil {
		return nil, &MalformedError{EntryID: entry.ID, Err: err}
	}
	if msg.UserID, err = fieldInt64(entry.Values, "userId"); err != nil {
		return nil, &MalformedError{EntryID: entry.ID, Err: err}
	}
	if msg.VoucherID, err = fieldInt64(entry.Values, "voucherId"); err != nil {
		return nil, &MalformedError{EntryID: entry.ID, Err: err}
	}

	return msg, nil
}

func fieldInt64(values map[string]any, field string) (int64, error) {
	raw, ok := values[field]
	if !ok {
		return 0, errs.New("missing field " + field)
	}
	s, ok := raw.(string)
	if !ok {
		return 0, errs.New("field " + field + " is not a string")
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errs.Wrap(err, "field "+field+" is not numeric")
	}
	return v, nil
}
