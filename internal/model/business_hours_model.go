package model

import (
	"github.com/google/uuid"
)

// BusinessHours stores one weekday row per tenant. Minutes from midnight
// keep the slot arithmetic integer-only.
type BusinessHours struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TenantId    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_tenant_weekday"`
	Weekday     int       `gorm:"not null;uniqueIndex:idx_tenant_weekday"` // 0=Sunday .. 6=Saturday
	OpenMinute  int       `gorm:"not null;default:0"`
	CloseMinute int       `gorm:"not null;default:0"`
	Closed      bool      `gorm:"not null;default:false"`
}

func (BusinessHours) TableName() string {
	return "business_hours"
}
