package mapper

import (
	"encoding/json"

	"devlabs-intake-be/internal/entity"
	"devlabs-intake-be/internal/model"

	"gorm.io/datatypes"
)

type PreferenceMapper struct{}

func NewPreferenceMapper() *PreferenceMapper {
	return &PreferenceMapper{}
}

func (m *PreferenceMapper) ToEntity(p *model.Preference) *entity.Preference {
	if p == nil {
		return nil
	}

	// A corrupt or empty JSON column degrades to an empty buffer.
	var messages []string
	if len(p.PendingMessages) > 0 {
		_ = json.Unmarshal(p.PendingMessages, &messages)
	}

	return &entity.Preference{
		UserId:          p.UserId,
		Language:        p.Language,
		PendingMessages: messages,
	}
}

func (m *PreferenceMapper) ToModel(p *entity.Preference) *model.Preference {
	if p == nil {
		return nil
	}

	messages := p.PendingMessages
	if messages == nil {
		messages = []string{}
	}
	raw, _ := json.Marshal(messages)

	return &model.Preference{
		UserId:          p.UserId,
		Language:        p.Language,
		PendingMessages: datatypes.JSON(raw),
	}
}
