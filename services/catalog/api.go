package catalog

import "context"

//go:generate mockgen -source=api.go -package catalog -destination service_mock.go Service
type Service interface {
	GetProduct(c context.Context, productUID string) (Product, error)
	ListProducts(c context.Context) ([]Product, error)
}
