package basket

import (
	"context"
	"fmt"

	"github.com/eshopweb/storefront/lib/myerrors"
	"github.com/eshopweb/storefront/lib/mylog"
	"github.com/eshopweb/storefront/lib/mystore"
)

func (s *service) GetOrCreateBasketForOwner(c context.Context, ownerKey string) (Basket, error) {
	existing, err := s.findBasketByOwner(c, ownerKey)
	if err != nil {
		return Basket{}, err
	}
	if existing != nil {
		return *existing, nil
	}

	basket := Basket{
		UID:       s.uuider.Create(),
		OwnerKey:  ownerKey,
		CreatedAt: s.nower.Now(),
		Items:     []Line{},
	}

	s.logger.Log(c, basket.UID, mylog.SeverityInfo, "Creating new basket %s for owner %s", basket.UID, ownerKey)

	err = s.basketStore.Put(c, basket.UID, basket)
	if err != nil {
		return Basket{}, myerrors.NewInternalError(err)
	}

	return basket, nil
}

func (s *service) AddItem(c context.Context, ownerKey string, productUID string, unitPrice int) (Basket, error) {
	if productUID == "" {
		return Basket{}, myerrors.NewInvalidInputErrorf("missing product uid")
	}

	basket, err := s.GetOrCreateBasketForOwner(c, ownerKey)
	if err != nil {
		return Basket{}, err
	}

	var result Basket
	err = s.basketStore.RunInTransaction(c, func(c context.Context) error {
		current, found, err := s.basketStore.Get(c, basket.UID)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		if !found {
			current = basket
		}

		appended := false
		for i, line := range current.Items {
			if line.ProductUID == productUID {
				current.Items[i].Quantity++
				appended = true
				break
			}
		}
		if !appended {
			current.Items = append(current.Items, Line{
				ProductUID: productUID,
				UnitPrice:  unitPrice,
				Quantity:   1,
			})
		}

		now := s.nower.Now()
		current.LastModified = &now

		err = s.basketStore.Put(c, current.UID, current)
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		result = current

		return nil
	})
	if err != nil {
		return Basket{}, err
	}

	s.logger.Log(c, result.UID, mylog.SeverityInfo, "Added product %s to basket %s", productUID, result.UID)

	return result, nil
}

func (s *service) SetQuantities(c context.Context, basketUID string, quantities map[string]int) (Basket, error) {
	for productUID, quantity := range quantities {
		if quantity < 0 {
			return Basket{}, myerrors.NewInvalidInputErrorf("negative quantity %d for product %s", quantity, productUID)
		}
	}

	var result Basket
	err := s.basketStore.RunInTransaction(c, func(c context.Context) error {
		basket, found, err := s.basketStore.Get(c, basketUID)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		if !found {
			return myerrors.NewNotFoundError(fmt.Errorf("basket with uid %s not found", basketUID))
		}

		kept := make([]Line, 0, len(basket.Items))
		for _, line := range basket.Items {
			if quantity, ok := quantities[line.ProductUID]; ok {
				line.Quantity = quantity
			}
			if line.Quantity > 0 {
				kept = append(kept, line)
			}
		}
		basket.Items = kept

		now := s.nower.Now()
		basket.LastModified = &now

		err = s.basketStore.Put(c, basket.UID, basket)
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		result = basket

		return nil
	})
	if err != nil {
		return Basket{}, err
	}

	return result, nil
}

func (s *service) Delete(c context.Context, basketUID string) error {
	s.logger.Log(c, basketUID, mylog.SeverityInfo, "Deleting basket %s", basketUID)

	err := s.basketStore.Delete(c, basketUID)
	if err != nil {
		return myerrors.NewInternalError(err)
	}

	return nil
}

func (s *service) findBasketByOwner(c context.Context, ownerKey string) (*Basket, error) {
	baskets, err := s.basketStore.Query(c, []mystore.Filter{
		{Field: "OwnerKey", Compare: "=", Value: ownerKey},
	}, "CreatedAt")
	if err != nil {
		return nil, myerrors.NewInternalError(err)
	}
	if len(baskets) == 0 {
		return nil, nil
	}

	return &baskets[0], nil
}
