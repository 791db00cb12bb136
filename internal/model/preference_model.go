package model

import "gorm.io/datatypes"

type Preference struct {
	UserId          int64          `gorm:"primaryKey"`
	Language        string         `gorm:"type:varchar(8);not null;default:en"`
	PendingMessages datatypes.JSON `gorm:"column:pending_messages"`
}

func (Preference) TableName() string {
	return "user_preferences"
}
