package channel

import "context"

// DeliveryGateway abstracts the messaging transport. The core only needs
// "send this text to that recipient"; polling/webhooks, transport retries
// and menu rendering live on the other side of this interface.
type DeliveryGateway interface {
	SendText(ctx context.Context, recipientID int64, text string) error
}
