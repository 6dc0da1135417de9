package notify

import "context"

// Channel delivers a serialized payload to one external destination.
//
//go:generate mockgen -source=api.go -package notify -destination channel_mock.go Channel
type Channel interface {
	Name() string
	Deliver(c context.Context, payload any) error
}
