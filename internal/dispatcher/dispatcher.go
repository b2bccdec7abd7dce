package dispatcher

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type outboxDrainer interface {
	DispatchPending(ctx context.Context) (int, error)
}

// Dispatcher periodically drains the email outbox. It runs strictly
// outside request handling: business flows only enqueue, delivery
// happens here.
type Dispatcher struct {
	notifications outboxDrainer
	interval      time.Duration
	logger        logger.Logger
}

func New(
	notifications outboxDrainer,
	interval time.Duration,
	logger logger.Logger,
) *Dispatcher {
	return &Dispatcher{
		notifications: notifications,
		interval:      interval,
		logger:        logger,
	}
}

func (d *Dispatcher) Start(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	d.logger.Info("dispatcher started",
		logger.Duration("interval", d.interval),
	)

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("dispatcher stopped")
			return
		case <-ticker.C:
			d.tick(ctx)
		}
	}
}

func (d *Dispatcher) tick(ctx context.Context) {
	sent, err := d.notifications.DispatchPending(ctx)
	if err != nil {
		d.logger.Error("failed to dispatch pending emails",
			logger.String("error", err.Error()),
		)
		return
	}

	if sent > 0 {
		d.logger.Info("emails dispatched",
			logger.Int("count", sent),
		)
	}
}
