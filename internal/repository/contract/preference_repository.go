package contract

import "context"

type PreferenceRepository interface {
	// GetLanguage returns the stored locale for the user, or fallback if
	// the user has never set one.
	GetLanguage(ctx context.Context, userId int64, fallback string) (string, error)
	SetLanguage(ctx context.Context, userId int64, language string) error

	AppendMessage(ctx context.Context, userId int64, text string) error
	GetMessages(ctx context.Context, userId int64) ([]string, error)
	ClearMessages(ctx context.Context, userId int64) error

	// ListUserIds returns every user that ever interacted with the bot.
	ListUserIds(ctx context.Context) ([]int64, error)
}
