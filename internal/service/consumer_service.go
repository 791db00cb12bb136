package service

import (
	"context"
	"encoding/json"
	"strings"

	"devlabs-intake-be/internal/dto"
	"devlabs-intake-be/internal/pkg/logger"
	"devlabs-intake-be/internal/repository/memory"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IConsumerService drains the inbound pipeline and drives the state
// machine / admin processor, one serialized unit of work per user.
type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	locks     *memory.UserLocks
	dialog    IDialogService
	admin     IAdminService
	logger    logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	locks *memory.UserLocks,
	dialog IDialogService,
	admin IAdminService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		locks:     locks,
		dialog:    dialog,
		admin:     admin,
		logger:    log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	// Messages are handled in arrival order; the per-user lock inside
	// processMessage guards against a second pipeline (e.g. the NATS
	// bridge and the HTTP controller racing on the same user).
	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	// Every event is acked exactly once: handler failures are logged, not
	// retried. Replaying a half-applied conversational transition would
	// duplicate notifications.
	defer msg.Ack()

	var event dto.InboundEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		cs.logger.Error("ConsumerService", "Failed to unmarshal inbound event", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	if event.UserID == 0 {
		cs.logger.Warn("ConsumerService", "Dropping inbound event without user id", nil)
		return
	}

	// Per-user serialization: concurrent events for the same user must not
	// race on the session or the pending-message buffer.
	cs.locks.Lock(event.UserID)
	defer cs.locks.Unlock(event.UserID)

	var err error
	switch event.Kind {
	case dto.EventKindSelection:
		err = cs.dialog.HandleSelection(ctx, event.Meta(), event.Selection)

	case dto.EventKindMessage:
		switch {
		case event.Text == "/start":
			err = cs.dialog.Start(ctx, event.Meta())
		case strings.HasPrefix(event.Text, "/"):
			err = cs.admin.Execute(ctx, event.UserID, event.Text)
		default:
			err = cs.dialog.HandleMessage(ctx, event.Meta(), event.Text)
		}

	default:
		cs.logger.Warn("ConsumerService", "Unknown inbound event kind", map[string]interface{}{
			"kind": event.Kind,
		})
		return
	}

	if err != nil {
		cs.logger.Error("ConsumerService", "Event handling failed", map[string]interface{}{
			"kind":    event.Kind,
			"user_id": event.UserID,
			"error":   err.Error(),
		})
	}
}
