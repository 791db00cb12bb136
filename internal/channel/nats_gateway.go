package channel

import (
	"context"
	"errors"
	"time"

	"devlabs-intake-be/pkg/events"
	pktNats "devlabs-intake-be/pkg/nats"
)

const (
	outboundEventType = "OUTBOUND_MESSAGE"

	// sendTimeout bounds a single outbound publish. A slow transport must
	// not stall the fan-out of sibling deliveries.
	sendTimeout = 5 * time.Second
)

// NatsGateway publishes outbound messages to the bus, where the transport
// adapter (the actual chat connector) picks them up for delivery.
type NatsGateway struct {
	publisher *pktNats.Publisher
}

func NewNatsGateway(publisher *pktNats.Publisher) *NatsGateway {
	return &NatsGateway{publisher: publisher}
}

func (g *NatsGateway) SendText(ctx context.Context, recipientID int64, text string) error {
	if g.publisher == nil {
		return errors.New("messaging bus unavailable")
	}

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	return g.publisher.Publish(ctx, events.BaseEvent{
		Type: outboundEventType,
		Data: map[string]interface{}{
			"recipient_id": recipientID,
			"text":         text,
		},
		OccurredAt: time.Now(),
	})
}
