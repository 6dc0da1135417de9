package ordering

import (
	"context"
	"fmt"

	"github.com/eshopweb/storefront/lib/myerrors"
	"github.com/eshopweb/storefront/lib/mylog"
)

// CreateOrder reads the basket and creates the order within one transaction
// on the order store. Concurrent checkouts for the same basket are serialized
// here: the transaction retries and the loser observes the basket already
// gone, yielding the empty-basket rejection rather than a second order.
func (s *service) CreateOrder(c context.Context, basketUID string, shipTo Address) (string, error) {
	var orderUID string

	err := s.orderStore.RunInTransaction(c, func(c context.Context) error {
		currentBasket, found, err := s.basketStore.Get(c, basketUID)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		if !found || currentBasket.IsEmpty() {
			return myerrors.NewUnprocessableError(fmt.Errorf("cannot create order for basket %s: %w", basketUID, ErrEmptyBasket))
		}

		lines := make([]Line, 0, len(currentBasket.Items))
		for _, item := range currentBasket.Items {
			product, err := s.catalog.GetProduct(c, item.ProductUID)
			if err != nil {
				return err
			}

			// price frozen from the basket line, name/picture from the catalog
			lines = append(lines, Line{
				ProductUID:  item.ProductUID,
				ProductName: product.Name,
				PictureURL:  product.PictureURL,
				UnitPrice:   item.UnitPrice,
				Units:       item.Quantity,
			})
		}

		order := Order{
			UID:       s.uuider.Create(),
			OwnerKey:  currentBasket.OwnerKey,
			CreatedAt: s.nower.Now(),
			Lines:     lines,
			ShipTo:    shipTo,
		}

		err = s.orderStore.Put(c, order.UID, order)
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		orderUID = order.UID

		return nil
	})
	if err != nil {
		return "", err
	}

	s.logger.Log(c, orderUID, mylog.SeverityInfo, "Created order %s for basket %s", orderUID, basketUID)

	return orderUID, nil
}

func (s *service) GetOrderByUID(c context.Context, orderUID string) (Order, error) {
	order, found, err := s.orderStore.Get(c, orderUID)
	if err != nil {
		return Order{}, myerrors.NewInternalError(err)
	}
	if !found {
		return Order{}, myerrors.NewNotFoundError(fmt.Errorf("order with uid %s not found", orderUID))
	}

	return order, nil
}
