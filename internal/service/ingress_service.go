package service

import (
	"context"

	"devlabs-intake-be/internal/dto"
	"devlabs-intake-be/internal/pkg/logger"
	"devlabs-intake-be/pkg/events"
	pktNats "devlabs-intake-be/pkg/nats"
)

// NATS subjects the transport adapter publishes inbound traffic on.
const (
	inboundMessageSubject   = "events.INBOUND_MESSAGE"
	inboundSelectionSubject = "events.INBOUND_SELECTION"
)

// IngressService bridges transport-originated NATS events into the
// in-process pipeline, so a chat connector can run as a separate process.
type IngressService struct {
	subscriber *pktNats.Subscriber
	publisher  IPublisherService
	logger     logger.ILogger
}

func NewIngressService(sub *pktNats.Subscriber, publisher IPublisherService, log logger.ILogger) *IngressService {
	return &IngressService{
		subscriber: sub,
		publisher:  publisher,
		logger:     log,
	}
}

// Start registers the durable consumers. It returns once subscriptions
// are in place; handlers run on the subscriber's goroutines.
func (s *IngressService) Start() {
	if err := s.subscriber.Subscribe(inboundMessageSubject, "intake-message-worker", s.handleMessage); err != nil {
		s.logger.Error("IngressService", "Failed to subscribe to inbound messages", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	if err := s.subscriber.Subscribe(inboundSelectionSubject, "intake-selection-worker", s.handleSelection); err != nil {
		s.logger.Error("IngressService", "Failed to subscribe to inbound selections", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	s.logger.Info("IngressService", "Ingress bridge started", nil)
}

func (s *IngressService) handleMessage(ctx context.Context, event events.Event) error {
	payload := event.Payload()
	return s.publisher.PublishInbound(ctx, &dto.InboundEvent{
		Kind:      dto.EventKindMessage,
		UserID:    asInt64(payload["user_id"]),
		Text:      asString(payload["text"]),
		FirstName: asString(payload["first_name"]),
		Username:  asString(payload["username"]),
	})
}

func (s *IngressService) handleSelection(ctx context.Context, event events.Event) error {
	payload := event.Payload()
	return s.publisher.PublishInbound(ctx, &dto.InboundEvent{
		Kind:      dto.EventKindSelection,
		UserID:    asInt64(payload["user_id"]),
		Selection: asString(payload["selection"]),
		FirstName: asString(payload["first_name"]),
		Username:  asString(payload["username"]),
	})
}

// JSON numbers arrive as float64 from the generic event payload.
func asInt64(v interface{}) int64 {
	switch n := v.(type) {
	case float64:
		return int64(n)
	case int64:
		return n
	}
	return 0
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}
