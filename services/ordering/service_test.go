package ordering

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/eshopweb/storefront/lib/mystore"
	"github.com/eshopweb/storefront/lib/mytime"
	"github.com/eshopweb/storefront/lib/myuuid"
	"github.com/eshopweb/storefront/services/basket"
	"github.com/eshopweb/storefront/services/catalog"
)

var (
	shipTo = Address{Street: "123 Main St.", City: "Kent", State: "OH", Country: "United States", ZipCode: "44240"}
)

func TestCreateOrder(t *testing.T) {

	t.Run("Creates order with frozen prices", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, sut, orderStore, basketStore, catalogService, nower, uuider := setup(ctrl)

		// given
		basketStore.Put(ctx, "basket-1", basket.Basket{
			UID:      "basket-1",
			OwnerKey: "u1",
			Items: []basket.Line{
				{ProductUID: "itemA", UnitPrice: 1000, Quantity: 3},
				{ProductUID: "itemB", UnitPrice: 500, Quantity: 1},
			},
		})
		catalogService.EXPECT().GetProduct(gomock.Any(), "itemA").Return(catalog.Product{UID: "itemA", Name: "Item A", Price: 1000, PictureURL: "/img/a.png"}, nil)
		catalogService.EXPECT().GetProduct(gomock.Any(), "itemB").Return(catalog.Product{UID: "itemB", Name: "Item B", Price: 500, PictureURL: "/img/b.png"}, nil)
		nower.EXPECT().Now().Return(mytime.ExampleTime)
		uuider.EXPECT().Create().Return("order-1")

		// when
		orderUID, err := sut.CreateOrder(ctx, "basket-1", shipTo)

		// then
		assert.NoError(t, err)
		assert.Equal(t, "order-1", orderUID)

		order, found, _ := orderStore.Get(ctx, "order-1")
		assert.True(t, found)
		assert.Equal(t, "u1", order.OwnerKey)
		assert.Equal(t, 3500, order.Total())
		assert.Equal(t, shipTo, order.ShipTo)
		assert.Equal(t, []Line{
			{ProductUID: "itemA", ProductName: "Item A", PictureURL: "/img/a.png", UnitPrice: 1000, Units: 3},
			{ProductUID: "itemB", ProductName: "Item B", PictureURL: "/img/b.png", UnitPrice: 500, Units: 1},
		}, order.Lines)
	})

	t.Run("Rejects empty basket", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, sut, orderStore, basketStore, _, _, _ := setup(ctrl)

		// given
		basketStore.Put(ctx, "basket-2", basket.Basket{UID: "basket-2", OwnerKey: "u2", Items: []basket.Line{}})

		// when
		_, err := sut.CreateOrder(ctx, "basket-2", shipTo)

		// then: distinct business rejection, no order created
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrEmptyBasket))
		orders, _ := orderStore.List(ctx)
		assert.Empty(t, orders)

		// and the basket is untouched
		untouched, found, _ := basketStore.Get(ctx, "basket-2")
		assert.True(t, found)
		assert.Empty(t, untouched.Items)
	})

	t.Run("Rejects unknown basket", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, sut, _, _, _, _, _ := setup(ctrl)

		// when
		_, err := sut.CreateOrder(ctx, "no-such-basket", shipTo)

		// then
		assert.True(t, errors.Is(err, ErrEmptyBasket))
	})
}

func TestGetOrderByUID(t *testing.T) {

	t.Run("Found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, sut, orderStore, _, _, _, _ := setup(ctrl)

		// given
		orderStore.Put(ctx, "order-1", Order{UID: "order-1", OwnerKey: "u1"})

		// when
		order, err := sut.GetOrderByUID(ctx, "order-1")

		// then
		assert.NoError(t, err)
		assert.Equal(t, "order-1", order.UID)
	})

	t.Run("Not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, sut, _, _, _, _, _ := setup(ctrl)

		// when
		_, err := sut.GetOrderByUID(ctx, "no-such-order")

		// then
		assert.Error(t, err)
	})
}

func setup(ctrl *gomock.Controller) (context.Context, Service, mystore.Store[Order], mystore.Store[basket.Basket], *catalog.MockService, *mytime.MockNower, *myuuid.MockUUIDer) {
	c := context.TODO()
	orderStore, _, _ := mystore.New[Order](c)
	basketStore, _, _ := mystore.New[basket.Basket](c)
	catalogService := catalog.NewMockService(ctrl)
	nower := mytime.NewMockNower(ctrl)
	uuider := myuuid.NewMockUUIDer(ctrl)
	sut := NewService(orderStore, basketStore, catalogService, nower, uuider)

	return c, sut, orderStore, basketStore, catalogService, nower, uuider
}
