package ordering

import (
	"context"
	"errors"
)

// ErrEmptyBasket is the business-rule rejection raised when order creation is
// attempted against a basket with no line items. It is an expected outcome,
// not a fault, and callers branch on it with errors.Is.
var ErrEmptyBasket = errors.New("basket has no line items")

//go:generate mockgen -source=api.go -package ordering -destination service_mock.go Service
type Service interface {
	// CreateOrder converts the basket into a persisted order with frozen
	// prices. Fails with ErrEmptyBasket when the basket has zero line items.
	CreateOrder(c context.Context, basketUID string, shipTo Address) (string, error)

	// GetOrderByUID fetches a created order.
	GetOrderByUID(c context.Context, orderUID string) (Order, error)
}
