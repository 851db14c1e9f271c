package model

import (
	"time"

	"github.com/google/uuid"
)

type Service struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TenantId        uuid.UUID `gorm:"type:uuid;not null;index"`
	Name            string    `gorm:"type:text;not null"`
	DurationMinutes int       `gorm:"not null;default:30"`
	Price           float64   `gorm:"type:numeric(10,2)"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

func (Service) TableName() string {
	return "services"
}
