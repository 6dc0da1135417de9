package checkout

import (
	"context"
	"fmt"

	"github.com/eshopweb/storefront/lib/mylog"
	"github.com/eshopweb/storefront/lib/myqueue"
	"github.com/eshopweb/storefront/services/basket"
	"github.com/eshopweb/storefront/services/notify"
	"github.com/eshopweb/storefront/services/ordering"
)

type service struct {
	baskets      basket.Service
	orders       ordering.Service
	dispatcher   *notify.Dispatcher
	orderChannel notify.Channel
	queuer       myqueue.TaskQueuer
	logger       mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func newService(baskets basket.Service, orders ordering.Service, dispatcher *notify.Dispatcher, orderChannel notify.Channel, queuer myqueue.TaskQueuer, logger mylog.Logger) *service {
	return &service{
		baskets:      baskets,
		orders:       orders,
		dispatcher:   dispatcher,
		orderChannel: orderChannel,
		queuer:       queuer,
		logger:       logger,
	}
}

// checkout converts the owner's current basket into a persisted order and
// clears the basket. On ordering.ErrEmptyBasket the basket is left untouched:
// no order, no deletion, no notification. Double-checkout races for the same
// owner are serialized by the order store's transaction, not here.
func (s *service) checkout(c context.Context, ownerKey string, adjustments map[string]int, shipTo ordering.Address) (ordering.Order, error) {
	currentBasket, err := s.baskets.GetOrCreateBasketForOwner(c, ownerKey)
	if err != nil {
		return ordering.Order{}, err
	}

	// All adjustments must have been applied before the order is created.
	_, err = s.baskets.SetQuantities(c, currentBasket.UID, adjustments)
	if err != nil {
		return ordering.Order{}, err
	}

	orderUID, err := s.orders.CreateOrder(c, currentBasket.UID, shipTo)
	if err != nil {
		// ordering.ErrEmptyBasket propagates distinctly from faults
		return ordering.Order{}, err
	}

	// The checkout has succeeded once the order exists; basket deletion is
	// best-effort cleanup.
	err = s.baskets.Delete(c, currentBasket.UID)
	if err != nil {
		s.logger.Log(c, currentBasket.UID, mylog.SeverityError,
			"Order %s created but basket %s was not deleted, scheduling cleanup: %s", orderUID, currentBasket.UID, err)
		s.scheduleBasketCleanup(c, currentBasket.UID)
	}

	order, err := s.orders.GetOrderByUID(c, orderUID)
	if err != nil {
		return ordering.Order{}, err
	}

	s.dispatcher.Dispatch(c, s.orderChannel, newOrderNotification(order))

	return order, nil
}

func (s *service) scheduleBasketCleanup(c context.Context, basketUID string) {
	err := s.queuer.Enqueue(c, myqueue.Task{
		UID:            fmt.Sprintf("basket-cleanup-%s", basketUID),
		WebhookURLPath: fmt.Sprintf("/api/basket/%s/cleanup", basketUID),
	})
	if err != nil {
		s.logger.Log(c, basketUID, mylog.SeverityError, "Error scheduling cleanup of basket %s: %s", basketUID, err)
	}
}
