package basket

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/eshopweb/storefront/lib/mystore"
	"github.com/eshopweb/storefront/lib/mytime"
	"github.com/eshopweb/storefront/lib/myuuid"
)

func TestGetOrCreateBasketForOwner(t *testing.T) {

	t.Run("Creates basket when absent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, sut, storer, nower, uuider := setup(ctrl)

		// given
		uuider.EXPECT().Create().Return("basket-1")
		nower.EXPECT().Now().Return(mytime.ExampleTime)

		// when
		basket, err := sut.GetOrCreateBasketForOwner(ctx, "u1")

		// then
		assert.NoError(t, err)
		assert.Equal(t, "basket-1", basket.UID)
		assert.Equal(t, "u1", basket.OwnerKey)
		assert.True(t, basket.IsEmpty())

		stored, found, _ := storer.Get(ctx, "basket-1")
		assert.True(t, found)
		assert.Equal(t, "u1", stored.OwnerKey)
	})

	t.Run("Returns existing basket for same owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, sut, _, nower, uuider := setup(ctrl)

		// given
		uuider.EXPECT().Create().Return("basket-1")
		nower.EXPECT().Now().Return(mytime.ExampleTime)
		first, err := sut.GetOrCreateBasketForOwner(ctx, "u1")
		assert.NoError(t, err)

		// when: no new uid is generated
		second, err := sut.GetOrCreateBasketForOwner(ctx, "u1")

		// then
		assert.NoError(t, err)
		assert.Equal(t, first.UID, second.UID)
	})
}

func TestAddItem(t *testing.T) {

	t.Run("Adds new line with captured price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, sut, _, nower, uuider := setup(ctrl)

		// given
		uuider.EXPECT().Create().Return("basket-1")
		nower.EXPECT().Now().Return(mytime.ExampleTime).AnyTimes()

		// when
		basket, err := sut.AddItem(ctx, "u1", "itemA", 1000)

		// then
		assert.NoError(t, err)
		assert.Equal(t, []Line{{ProductUID: "itemA", UnitPrice: 1000, Quantity: 1}}, basket.Items)
	})

	t.Run("Increments existing line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, sut, _, nower, uuider := setup(ctrl)

		// given
		uuider.EXPECT().Create().Return("basket-1")
		nower.EXPECT().Now().Return(mytime.ExampleTime).AnyTimes()
		_, err := sut.AddItem(ctx, "u1", "itemA", 1000)
		assert.NoError(t, err)

		// when
		basket, err := sut.AddItem(ctx, "u1", "itemA", 1000)

		// then
		assert.NoError(t, err)
		assert.Equal(t, []Line{{ProductUID: "itemA", UnitPrice: 1000, Quantity: 2}}, basket.Items)
	})

	t.Run("Preserves insertion order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, sut, _, nower, uuider := setup(ctrl)

		// given
		uuider.EXPECT().Create().Return("basket-1")
		nower.EXPECT().Now().Return(mytime.ExampleTime).AnyTimes()

		// when
		_, err := sut.AddItem(ctx, "u1", "itemA", 1000)
		assert.NoError(t, err)
		basket, err := sut.AddItem(ctx, "u1", "itemB", 500)

		// then
		assert.NoError(t, err)
		assert.Equal(t, "itemA", basket.Items[0].ProductUID)
		assert.Equal(t, "itemB", basket.Items[1].ProductUID)
	})

	t.Run("Rejects missing product uid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, sut, _, _, _ := setup(ctrl)

		// when
		_, err := sut.AddItem(ctx, "u1", "", 1000)

		// then
		assert.Error(t, err)
	})
}

func TestSetQuantities(t *testing.T) {

	t.Run("Applies adjustments, untouched lines keep their quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, sut, storer, nower, _ := setup(ctrl)

		// given
		storer.Put(ctx, "basket-1", Basket{
			UID:      "basket-1",
			OwnerKey: "u1",
			Items: []Line{
				{ProductUID: "itemA", UnitPrice: 1000, Quantity: 2},
				{ProductUID: "itemB", UnitPrice: 500, Quantity: 1},
			},
		})
		nower.EXPECT().Now().Return(mytime.ExampleTime)

		// when
		basket, err := sut.SetQuantities(ctx, "basket-1", map[string]int{"itemA": 3})

		// then
		assert.NoError(t, err)
		assert.Equal(t, []Line{
			{ProductUID: "itemA", UnitPrice: 1000, Quantity: 3},
			{ProductUID: "itemB", UnitPrice: 500, Quantity: 1},
		}, basket.Items)
		assert.Equal(t, 3500, basket.Total())
	})

	t.Run("Zero quantity removes the line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, sut, storer, nower, _ := setup(ctrl)

		// given
		storer.Put(ctx, "basket-1", Basket{
			UID:      "basket-1",
			OwnerKey: "u1",
			Items: []Line{
				{ProductUID: "itemA", UnitPrice: 1000, Quantity: 2},
				{ProductUID: "itemB", UnitPrice: 500, Quantity: 1},
			},
		})
		nower.EXPECT().Now().Return(mytime.ExampleTime)

		// when
		basket, err := sut.SetQuantities(ctx, "basket-1", map[string]int{"itemA": 0})

		// then
		assert.NoError(t, err)
		assert.Equal(t, []Line{{ProductUID: "itemB", UnitPrice: 500, Quantity: 1}}, basket.Items)
	})

	t.Run("Rejects negative quantity before any mutation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, sut, storer, _, _ := setup(ctrl)

		// given
		storer.Put(ctx, "basket-1", Basket{
			UID:      "basket-1",
			OwnerKey: "u1",
			Items:    []Line{{ProductUID: "itemA", UnitPrice: 1000, Quantity: 2}},
		})

		// when
		_, err := sut.SetQuantities(ctx, "basket-1", map[string]int{"itemA": -1})

		// then
		assert.Error(t, err)
		unchanged, _, _ := storer.Get(ctx, "basket-1")
		assert.Equal(t, 2, unchanged.Items[0].Quantity)
	})

	t.Run("Unknown basket is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, sut, _, _, _ := setup(ctrl)

		// when
		_, err := sut.SetQuantities(ctx, "no-such-basket", map[string]int{"itemA": 1})

		// then
		assert.Error(t, err)
	})
}

func TestDelete(t *testing.T) {

	t.Run("Deletes basket", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, sut, storer, _, _ := setup(ctrl)

		// given
		storer.Put(ctx, "basket-1", Basket{UID: "basket-1", OwnerKey: "u1"})

		// when
		err := sut.Delete(ctx, "basket-1")

		// then
		assert.NoError(t, err)
		_, found, _ := storer.Get(ctx, "basket-1")
		assert.False(t, found)
	})
}

func setup(ctrl *gomock.Controller) (context.Context, Service, mystore.Store[Basket], *mytime.MockNower, *myuuid.MockUUIDer) {
	c := context.TODO()
	storer, _, _ := mystore.New[Basket](c)
	nower := mytime.NewMockNower(ctrl)
	uuider := myuuid.NewMockUUIDer(ctrl)
	sut := NewService(storer, nower, uuider)

	return c, sut, storer, nower, uuider
}
