package basket

import "context"

//go:generate mockgen -source=api.go -package basket -destination service_mock.go Service
type Service interface {
	// GetOrCreateBasketForOwner returns the owner's basket, creating an empty one first when absent.
	GetOrCreateBasketForOwner(c context.Context, ownerKey string) (Basket, error)

	// AddItem appends a line (or increments an existing one) with the price captured now.
	AddItem(c context.Context, ownerKey string, productUID string, unitPrice int) (Basket, error)

	// SetQuantities applies the desired quantity per product uid. A zero
	// quantity removes the line; products absent from the map are untouched.
	SetQuantities(c context.Context, basketUID string, quantities map[string]int) (Basket, error)

	// Delete removes the basket.
	Delete(c context.Context, basketUID string) error
}
