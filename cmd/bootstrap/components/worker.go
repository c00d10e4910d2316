package components

import (
	"context"
	"log/slog"

	"flashsale/internal/infra/queue"
	"flashsale/internal/pkg/config"
	"flashsale/internal/usecase"
	"flashsale/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewDispatcher,
	),
	fx.Invoke(startDispatcher),
)

func NewDispatcher(q queue.OrderQueue, committer usecase.FulfillmentUseCase, cfg config.Config) *worker.Dispatcher {
	return worker.NewDispatcher(q, committer, cfg.Worker)
}

// startDispatcher runs the fulfillment dispatcher for the lifetime of the
// app. OnStop cancels its context and waits until the loop drains.
func startDispatcher(lc fx.Lifecycle, d *worker.Dispatcher) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				d.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				slog.Warn("fulfillment dispatcher did not stop in time")
				return stopCtx.Err()
			}
		},
	})
}
