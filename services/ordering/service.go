package ordering

import (
	"github.com/eshopweb/storefront/lib/mylog"
	"github.com/eshopweb/storefront/lib/mystore"
	"github.com/eshopweb/storefront/lib/mytime"
	"github.com/eshopweb/storefront/lib/myuuid"
	"github.com/eshopweb/storefront/services/basket"
	"github.com/eshopweb/storefront/services/catalog"
)

type service struct {
	orderStore  mystore.Store[Order]
	basketStore mystore.Store[basket.Basket]
	catalog     catalog.Service
	nower       mytime.Nower
	uuider      myuuid.UUIDer
	logger      mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewService(orderStore mystore.Store[Order], basketStore mystore.Store[basket.Basket], catalogService catalog.Service, nower mytime.Nower, uuider myuuid.UUIDer) *service {
	return &service{
		orderStore:  orderStore,
		basketStore: basketStore,
		catalog:     catalogService,
		nower:       nower,
		uuider:      uuider,
		logger:      mylog.New("ordering"),
	}
}
