package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/eshopweb/storefront/lib/mypubsub"
)

type queueChannel struct {
	queueName     string
	pubsubFactory func(c context.Context) (mypubsub.PubSub, func(), error)
}

// NewQueueChannel publishes JSON payloads to a named queue. The underlying
// client is created and released per publish, regardless of outcome.
func NewQueueChannel(queueName string, pubsubFactory func(c context.Context) (mypubsub.PubSub, func(), error)) Channel {
	return &queueChannel{
		queueName:     queueName,
		pubsubFactory: pubsubFactory,
	}
}

func (ch queueChannel) Name() string {
	return fmt.Sprintf("queue:%s", ch.queueName)
}

func (ch queueChannel) Deliver(c context.Context, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error marshalling queue payload: %s", err)
	}

	publisher, cleanup, err := ch.pubsubFactory(c)
	if err != nil {
		return fmt.Errorf("error connecting to queue %s: %s", ch.queueName, err)
	}
	defer cleanup()

	err = publisher.Publish(c, ch.queueName, string(body))
	if err != nil {
		return fmt.Errorf("error publishing on queue %s: %s", ch.queueName, err)
	}

	return nil
}
