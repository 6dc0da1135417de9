package basket

import (
	"github.com/eshopweb/storefront/lib/mylog"
	"github.com/eshopweb/storefront/lib/mystore"
	"github.com/eshopweb/storefront/lib/mytime"
	"github.com/eshopweb/storefront/lib/myuuid"
)

type service struct {
	basketStore mystore.Store[Basket]
	nower       mytime.Nower
	uuider      myuuid.UUIDer
	logger      mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewService(basketStore mystore.Store[Basket], nower mytime.Nower, uuider myuuid.UUIDer) *service {
	return &service{
		basketStore: basketStore,
		nower:       nower,
		uuider:      uuider,
		logger:      mylog.New("basket"),
	}
}
