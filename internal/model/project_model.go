package model

import "time"

type Project struct {
	Id          string    `gorm:"type:varchar(8);primaryKey"`
	ClientId    int64     `gorm:"not null;index"`
	ServiceType string    `gorm:"type:varchar(64);not null"`
	Description string    `gorm:"type:text"`
	Status      string    `gorm:"type:varchar(64);not null;default:pending"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Project) TableName() string {
	return "projects"
}
