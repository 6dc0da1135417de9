package notify

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestDispatcher(t *testing.T) {

	t.Run("Delivery failure is swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c := context.TODO()
		sut := NewDispatcher()
		channel := NewMockChannel(ctrl)

		// given
		channel.EXPECT().Deliver(gomock.Any(), "payload").Return(fmt.Errorf("endpoint unreachable"))
		channel.EXPECT().Name().Return("webhook")

		// when: must not panic nor propagate anything
		sut.Dispatch(c, channel, "payload")
	})

	t.Run("Delivery gets a bounded deadline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c := context.TODO()
		sut := NewDispatcher()
		channel := NewMockChannel(ctrl)

		// given
		channel.EXPECT().Deliver(gomock.Any(), "payload").DoAndReturn(
			func(c context.Context, payload any) error {
				deadline, ok := c.Deadline()
				assert.True(t, ok)
				assert.WithinDuration(t, time.Now().Add(deliveryTimeout), deadline, time.Second)
				return nil
			})

		// when
		sut.Dispatch(c, channel, "payload")
	})

	t.Run("Timeout is treated as any other fault", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c := context.TODO()
		sut := NewDispatcher()
		channel := NewMockChannel(ctrl)

		// given
		channel.EXPECT().Deliver(gomock.Any(), "payload").Return(context.DeadlineExceeded)
		channel.EXPECT().Name().Return("webhook")

		// when
		sut.Dispatch(c, channel, "payload")
	})
}
