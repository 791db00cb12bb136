package dto

// Admin command arguments, validated before any mutation happens.

type CreateProjectCommand struct {
	ClientID    int64  `validate:"required,gt=0"`
	ServiceType string `validate:"required"`
	Description string `validate:"required"`
}

type UpdateStatusCommand struct {
	ProjectID string `validate:"required"`
	NewStatus string `validate:"required"`
	Note      string
}

type SendUpdateCommand struct {
	ProjectID string `validate:"required"`
	Message   string `validate:"required"`
}

type ReplyCommand struct {
	UserID  int64  `validate:"required,gt=0"`
	Message string `validate:"required"`
}

type BroadcastCommand struct {
	Message string `validate:"required"`
}
