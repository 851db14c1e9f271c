package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tenant is a business account owning its own documents, services and
// appointments. ChatbotKey is the public identifier embedded in the
// widget snippet.
type Tenant struct {
	Id          uuid.UUID
	ChatbotKey  string
	Name        string
	Industry    string
	Description string
	Location    string
	Website     string
	AISettings  *AISettings
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// AISettings tunes the assistant persona per tenant. Stored as JSON
// metadata on the tenant row.
type AISettings struct {
	Personality     string `json:"personality"`      // friendly | professional | casual | enthusiastic
	KnowledgeFocus  string `json:"knowledge_focus"`  // balanced | business | industry | sales
	IsConcise       bool   `json:"is_concise"`
	AskFollowUp     bool   `json:"ask_follow_up"`
	UseCustomPrompt bool   `json:"use_custom_prompt"`
	CustomPrompt    string `json:"custom_prompt"`
}

type Service struct {
	Id              uuid.UUID
	TenantId        uuid.UUID
	Name            string
	DurationMinutes int
	Price           float64
}

// BusinessHours is the open/close interval for one weekday, in minutes
// from midnight. Closed days carry Closed=true and zeroed bounds.
type BusinessHours struct {
	Id          uuid.UUID
	TenantId    uuid.UUID
	Weekday     time.Weekday
	OpenMinute  int
	CloseMinute int
	Closed      bool
}

// TenantSnapshot is the immutable per-request view of a tenant's
// configuration: the tenant row plus its services and weekly hours,
// fetched once and never mutated in place.
type TenantSnapshot struct {
	Tenant   *Tenant
	Services []*Service
	Hours    map[time.Weekday]*BusinessHours
}

// HoursFor resolves the open/close interval for a weekday. The second
// return is false when the tenant is closed that day or no row exists.
func (s *TenantSnapshot) HoursFor(day time.Weekday) (*BusinessHours, bool) {
	h, ok := s.Hours[day]
	if !ok || h.Closed {
		return nil, false
	}
	return h, true
}
