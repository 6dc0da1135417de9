package notify

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/eshopweb/storefront/lib/myhttpclient"
	"github.com/eshopweb/storefront/lib/mypubsub"
)

func TestWebhookChannel(t *testing.T) {

	t.Run("Posts JSON payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c := context.TODO()
		sender := myhttpclient.NewMockHTTPSender(ctrl)
		sut := NewWebhookChannel(sender, "https://processor.example.com/api/orders")

		// given
		sender.EXPECT().Send(gomock.Any(), http.MethodPost, "https://processor.example.com/api/orders",
			[]byte(`{"orderNumber":"123"}`)).Return(200, []byte{}, nil)

		// when
		err := sut.Deliver(c, map[string]string{"orderNumber": "123"})

		// then
		assert.NoError(t, err)
	})

	t.Run("Non-2xx response is an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c := context.TODO()
		sender := myhttpclient.NewMockHTTPSender(ctrl)
		sut := NewWebhookChannel(sender, "https://processor.example.com/api/orders")

		// given
		sender.EXPECT().Send(gomock.Any(), http.MethodPost, gomock.Any(), gomock.Any()).Return(500, []byte{}, nil)

		// when
		err := sut.Deliver(c, map[string]string{"orderNumber": "123"})

		// then
		assert.Error(t, err)
	})

	t.Run("Unconfigured endpoint is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c := context.TODO()
		sender := myhttpclient.NewMockHTTPSender(ctrl)
		sut := NewWebhookChannel(sender, "")

		// when: no Send expected
		err := sut.Deliver(c, map[string]string{"orderNumber": "123"})

		// then
		assert.NoError(t, err)
	})
}

func TestQueueChannel(t *testing.T) {

	t.Run("Publishes and releases the client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c := context.TODO()
		publisher := mypubsub.NewMockPubSub(ctrl)
		released := false
		sut := NewQueueChannel("orderitemsreserver", func(c context.Context) (mypubsub.PubSub, func(), error) {
			return publisher, func() { released = true }, nil
		})

		// given
		publisher.EXPECT().Publish(gomock.Any(), "orderitemsreserver", `{"basketUid":"123"}`).Return(nil)

		// when
		err := sut.Deliver(c, map[string]string{"basketUid": "123"})

		// then
		assert.NoError(t, err)
		assert.True(t, released)
	})

	t.Run("Releases the client on publish failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c := context.TODO()
		publisher := mypubsub.NewMockPubSub(ctrl)
		released := false
		sut := NewQueueChannel("orderitemsreserver", func(c context.Context) (mypubsub.PubSub, func(), error) {
			return publisher, func() { released = true }, nil
		})

		// given
		publisher.EXPECT().Publish(gomock.Any(), "orderitemsreserver", gomock.Any()).Return(fmt.Errorf("queue unreachable"))

		// when
		err := sut.Deliver(c, map[string]string{"basketUid": "123"})

		// then
		assert.Error(t, err)
		assert.True(t, released)
	})
}
