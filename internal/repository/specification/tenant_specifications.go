package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TenantOwnedBy scopes a query to one tenant. Every repository read on
// shared tables goes through this; it is the isolation boundary.
type TenantOwnedBy struct {
	TenantID uuid.UUID
}

func (s TenantOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("tenant_id = ?", s.TenantID)
}

// ByChatbotKey resolves a tenant from its public widget identifier.
type ByChatbotKey struct {
	ChatbotKey string
}

func (s ByChatbotKey) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("chatbot_key = ?", s.ChatbotKey)
}
