package catalog

import (
	"context"
	"fmt"
	"sort"

	"github.com/eshopweb/storefront/lib/myerrors"
	"github.com/eshopweb/storefront/lib/mylog"
	"github.com/eshopweb/storefront/lib/mystore"
)

type service struct {
	productStore mystore.Store[Product]
	logger       mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewService(productStore mystore.Store[Product]) *service {
	return &service{
		productStore: productStore,
		logger:       mylog.New("catalog"),
	}
}

func (s *service) GetProduct(c context.Context, productUID string) (Product, error) {
	product, found, err := s.productStore.Get(c, productUID)
	if err != nil {
		return Product{}, myerrors.NewInternalError(err)
	}
	if !found {
		return Product{}, myerrors.NewNotFoundError(fmt.Errorf("product with uid %s not found", productUID))
	}

	return product, nil
}

func (s *service) ListProducts(c context.Context) ([]Product, error) {
	products, err := s.productStore.List(c)
	if err != nil {
		return nil, myerrors.NewInternalError(err)
	}

	sort.Slice(products, func(i, j int) bool {
		return products[i].Name < products[j].Name
	})

	return products, nil
}

// Seed loads the initial product set when the catalog is still empty.
func (s *service) Seed(c context.Context) error {
	existing, err := s.productStore.List(c)
	if err != nil {
		return myerrors.NewInternalError(err)
	}
	if len(existing) > 0 {
		return nil
	}

	s.logger.Log(c, "", mylog.SeverityInfo, "Seeding catalog with %d products", len(defaultProducts))

	for _, p := range defaultProducts {
		err = s.productStore.Put(c, p.UID, p)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
	}

	return nil
}

var defaultProducts = []Product{
	{UID: "product_mug", Name: ".NET Black & White Mug", Price: 850, PictureURL: "/img/products/mug.png"},
	{UID: "product_tshirt", Name: "Roslyn Red T-Shirt", Price: 1200, PictureURL: "/img/products/tshirt.png"},
	{UID: "product_hoodie", Name: "Prism White Hoodie", Price: 1950, PictureURL: "/img/products/hoodie.png"},
	{UID: "product_cap", Name: "Cut & Sew Cap", Price: 1000, PictureURL: "/img/products/cap.png"},
	{UID: "product_sticker", Name: "Kudu Purple Sticker", Price: 500, PictureURL: "/img/products/sticker.png"},
}
