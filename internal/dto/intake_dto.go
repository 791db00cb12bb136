package dto

// UserMeta is the display metadata the transport knows about a sender.
// It travels with every routed notification so admins can identify and
// reply to the user.
type UserMeta struct {
	ID        int64  `json:"user_id"`
	FirstName string `json:"first_name"`
	Username  string `json:"username"`
}

// InboundMessage is a free-text event from a user.
type InboundMessage struct {
	UserID    int64  `json:"user_id" validate:"required"`
	Text      string `json:"text" validate:"required"`
	FirstName string `json:"first_name"`
	Username  string `json:"username"`
}

// InboundSelection is a menu-selection event from a user.
type InboundSelection struct {
	UserID    int64  `json:"user_id" validate:"required"`
	Selection string `json:"selection" validate:"required"`
	FirstName string `json:"first_name"`
	Username  string `json:"username"`
}

// Inbound event kinds on the processing pipeline.
const (
	EventKindMessage   = "message"
	EventKindSelection = "selection"
)

// InboundEvent is the envelope published to the in-process pipeline by
// the ingestion adapters (HTTP controller, NATS bridge).
type InboundEvent struct {
	Kind      string `json:"kind"`
	UserID    int64  `json:"user_id"`
	Text      string `json:"text,omitempty"`
	Selection string `json:"selection,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	Username  string `json:"username,omitempty"`
}

func (e *InboundEvent) Meta() UserMeta {
	return UserMeta{
		ID:        e.UserID,
		FirstName: e.FirstName,
		Username:  e.Username,
	}
}
