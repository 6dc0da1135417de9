package notify

import (
	"context"
	"time"

	"github.com/eshopweb/storefront/lib/mylog"
)

const deliveryTimeout = 2 * time.Second

// Dispatcher performs best-effort delivery: every failure is logged and
// discarded, delivery is bounded by a short timeout, and nothing ever
// propagates back into the caller's control flow.
type Dispatcher struct {
	timeout time.Duration
	logger  mylog.Logger
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		timeout: deliveryTimeout,
		logger:  mylog.New("notify"),
	}
}

func (d Dispatcher) Dispatch(c context.Context, channel Channel, payload any) {
	ctx, cancel := context.WithTimeout(c, d.timeout)
	defer cancel()

	err := channel.Deliver(ctx, payload)
	if err != nil {
		d.logger.Log(c, "", mylog.SeverityWarn, "Best-effort delivery on channel %s failed: %s", channel.Name(), err)
		return
	}

	d.logger.Log(c, "", mylog.SeverityDebug, "Delivered notification on channel %s", channel.Name())
}
