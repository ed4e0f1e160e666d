package ports

import "context"

// NotificationGateway delivers a text message to a messaging destination.
// An error means the message was not accepted for delivery.
type NotificationGateway interface {
	Send(ctx context.Context, destination, text string) error
}
