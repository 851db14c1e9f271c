package model

import (
	"time"

	"github.com/google/uuid"
)

type Appointment struct {
	Id              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TenantId        uuid.UUID  `gorm:"type:uuid;not null;index:idx_appointments_tenant_start"`
	CustomerName    string     `gorm:"type:text;not null"`
	CustomerEmail   string     `gorm:"type:text"`
	CustomerPhone   string     `gorm:"type:text"`
	ServiceId       *uuid.UUID `gorm:"type:uuid"`
	ServiceName     string     `gorm:"type:text"`
	StartTime       time.Time  `gorm:"not null;index:idx_appointments_tenant_start"`
	EndTime         time.Time  `gorm:"not null"`
	DurationMinutes int        `gorm:"not null;default:30"`
	Status          string     `gorm:"type:text;not null;default:scheduled"`
	Notes           string     `gorm:"type:text"`
	CreatedAt       time.Time  `gorm:"autoCreateTime"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime"`
}

func (Appointment) TableName() string {
	return "appointments"
}
