package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/eshopweb/storefront/lib/myhttpclient"
)

type webhookChannel struct {
	sender myhttpclient.HTTPSender
	url    string
}

// NewWebhookChannel posts JSON payloads to a fixed external endpoint.
func NewWebhookChannel(sender myhttpclient.HTTPSender, url string) Channel {
	return &webhookChannel{
		sender: sender,
		url:    url,
	}
}

func (ch webhookChannel) Name() string {
	return "webhook"
}

func (ch webhookChannel) Deliver(c context.Context, payload any) error {
	if ch.url == "" {
		// channel not configured
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error marshalling webhook payload: %s", err)
	}

	status, _, err := ch.sender.Send(c, http.MethodPost, ch.url, body)
	if err != nil {
		return err
	}
	if status >= http.StatusMultipleChoices {
		return fmt.Errorf("webhook %s returned status %d", ch.url, status)
	}

	return nil
}
