package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusCancelled = "cancelled"
	AppointmentStatusCompleted = "completed"
)

// Appointment is never physically deleted, only status-transitioned.
// For a fixed tenant no two scheduled appointments may overlap in
// [StartTime, EndTime).
type Appointment struct {
	Id              uuid.UUID
	TenantId        uuid.UUID
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ServiceId       *uuid.UUID
	ServiceName     string
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes int
	Status          string
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

// CanTransitionTo enforces the status state machine: scheduled may move
// to cancelled or completed; both of those are terminal.
func (a *Appointment) CanTransitionTo(status string) bool {
	if a.Status != AppointmentStatusScheduled {
		return false
	}
	return status == AppointmentStatusCancelled || status == AppointmentStatusCompleted
}
