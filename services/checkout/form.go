package checkout

import (
	formcodec "github.com/go-playground/form/v4"

	"net/http"

	"github.com/eshopweb/storefront/lib/myerrors"
	"github.com/eshopweb/storefront/services/ordering"
)

type checkoutForm struct {
	Items  []itemQuantity `form:"items"`
	ShipTo addressForm    `form:"shipTo"`
}

type itemQuantity struct {
	UID      string `form:"uid"`
	Quantity int    `form:"quantity"`
}

type addressForm struct {
	Street  string `form:"street"`
	City    string `form:"city"`
	State   string `form:"state"`
	Country string `form:"country"`
	ZipCode string `form:"zipCode"`
}

func parseCheckoutForm(r *http.Request) (checkoutForm, error) {
	err := r.ParseForm()
	if err != nil {
		return checkoutForm{}, myerrors.NewInvalidInputError(err)
	}

	form := checkoutForm{}
	err = formcodec.NewDecoder().Decode(&form, r.Form)
	if err != nil {
		return checkoutForm{}, myerrors.NewInvalidInputError(err)
	}

	return form, nil
}

// adjustments is the externally supplied set of desired quantities keyed by product uid.
func (f checkoutForm) adjustments() map[string]int {
	quantities := map[string]int{}
	for _, item := range f.Items {
		quantities[item.UID] = item.Quantity
	}
	return quantities
}

func (f checkoutForm) shippingAddress() ordering.Address {
	if f.ShipTo == (addressForm{}) {
		return defaultShippingAddress
	}

	return ordering.Address{
		Street:  f.ShipTo.Street,
		City:    f.ShipTo.City,
		State:   f.ShipTo.State,
		Country: f.ShipTo.Country,
		ZipCode: f.ShipTo.ZipCode,
	}
}
