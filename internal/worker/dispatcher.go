package worker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"flashsale/internal/infra/queue"
	"flashsale/internal/pkg/config"
	"flashsale/internal/usecase"
)

// Dispatcher drains admitted purchases from the fulfillment queue into the
// system of record. One dispatcher owns one consumer identity; several may
// run under distinct consumers in the same group.
//
// Loop invariant: a record is acknowledged only after Process returned
// without error, so a crash anywhere in between leaves it on the pending
// list and the next pass through drainPending replays it. Duplicate
// delivery is safe because the committer re-checks before writing.
type Dispatcher struct {
	queue      queue.OrderQueue
	committer  usecase.FulfillmentUseCase
	ackRetries int
	retryDelay time.Duration
}

func NewDispatcher(q queue.OrderQueue, committer usecase.FulfillmentUseCase, cfg config.WorkerConfig) *Dispatcher {
	return &Dispatcher{
		queue:      q,
		committer:  committer,
		ackRetries: cfg.AckRetries,
		retryDelay: cfg.RetryDelay,
	}
}

// Run blocks until ctx is cancelled. It starts with a pending-list pass so
// a restart first settles whatever the previous incarnation left
// unacknowledged, then follows the live tail.
func (d *Dispatcher) Run(ctx context.Context) {
	slog.Info("fulfillment dispatcher started")
	d.drainPending(ctx)

	for ctx.Err() == nil {
		msg, err := d.queue.ReadLive(ctx)
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			if d.skipMalformed(ctx, err) {
				continue
			}
			slog.Error("failed to read fulfillment queue", "error", err)
			d.drainPending(ctx)
			continue
		}
		if msg == nil {
			// Bounded wait elapsed with nothing to read.
			continue
		}

		if err := d.committer.Process(ctx, msg); err != nil {
			slog.Error("failed to process fulfillment record",
				"stream_id", msg.ID, "order_id", msg.OrderID, "error", err)
			d.drainPending(ctx)
			continue
		}

		if err := d.ack(ctx, msg.ID); err != nil {
			slog.Error("failed to ack fulfillment record", "stream_id", msg.ID, "error", err)
			d.drainPending(ctx)
		}
	}

	slog.Info("fulfillment dispatcher stopped")
}

// drainPending replays this consumer's unacknowledged backlog from the
// beginning until it is empty. Errors inside the backlog are retried after
// a short pause rather than abandoned; new admissions keep accumulating on
// the live tail meanwhile.
func (d *Dispatcher) drainPending(ctx context.Context) {
	for ctx.Err() == nil {
		msg, err := d.queue.ReadPending(ctx)
		if err != nil {
			if d.skipMalformed(ctx, err) {
				continue
			}
			slog.Error("failed to read pending list", "error", err)
			if sleep(ctx, d.retryDelay) != nil {
				return
			}
			continue
		}
		if msg == nil {
			return
		}

		if err := d.committer.Process(ctx, msg); err != nil {
			slog.Error("failed to process pending record",
				"stream_id", msg.ID, "order_id", msg.OrderID, "error", err)
			if sleep(ctx, d.retryDelay) != nil {
				return
			}
			continue
		}

		if err := d.ack(ctx, msg.ID); err != nil {
			slog.Error("failed to ack pending record", "stream_id", msg.ID, "error", err)
			if sleep(ctx, d.retryDelay) != nil {
				return
			}
		}
	}
}

// skipMalformed acknowledges a record that can never be decoded, so neither
// the live tail nor the pending list replays it forever. Transient errors
// are left to the caller's retry handling.
func (d *Dispatcher) skipMalformed(ctx context.Context, err error) bool {
	var malformed *queue.MalformedError
	if !errors.As(err, &malformed) {
		return false
	}

	slog.Error("dropping undecodable fulfillment record", "stream_id", malformed.EntryID, "error", err)
	if ackErr := d.ack(ctx, malformed.EntryID); ackErr != nil {
		slog.Error("failed to ack undecodable record", "stream_id", malformed.EntryID, "error", ackErr)
	}
	return true
}

func (d *Dispatcher) ack(ctx context.Context, id string) error {
	var err error
	for attempt := 0; attempt <= d.ackRetries; attempt++ {
		if err = d.queue.Ack(ctx, id); err == nil {
			return nil
		}
		if sleep(ctx, time.Duration(attempt+1)*d.retryDelay) != nil {
			return err
		}
	}
	return err
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
