package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Tenant struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ChatbotKey  string         `gorm:"type:text;not null;uniqueIndex"`
	Name        string         `gorm:"type:text;not null"`
	Industry    string         `gorm:"type:text"`
	Description string         `gorm:"type:text"`
	Location    string         `gorm:"type:text"`
	Website     string         `gorm:"type:text"`
	Metadata    datatypes.JSON `gorm:"type:jsonb"` // AI persona settings
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
}

func (Tenant) TableName() string {
	return "tenants"
}
