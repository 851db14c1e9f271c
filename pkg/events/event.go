package events

import (
	"time"

	"github.com/google/uuid"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "APPOINTMENT_SCHEDULED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

const (
	TypeAppointmentScheduled = "APPOINTMENT_SCHEDULED"
	TypeAppointmentCancelled = "APPOINTMENT_CANCELLED"
	TypeDocumentIngested     = "DOCUMENT_INGESTED"
)

func NewAppointmentScheduled(tenantId, appointmentId uuid.UUID, serviceName string, startTime time.Time) Event {
	return BaseEvent{
		Type: TypeAppointmentScheduled,
		Data: map[string]interface{}{
			"tenant_id":      tenantId.String(),
			"appointment_id": appointmentId.String(),
			"service":        serviceName,
			"start_time":     startTime.Format(time.RFC3339),
		},
		OccurredAt: time.Now(),
	}
}

func NewAppointmentCancelled(tenantId, appointmentId uuid.UUID) Event {
	return BaseEvent{
		Type: TypeAppointmentCancelled,
		Data: map[string]interface{}{
			"tenant_id":      tenantId.String(),
			"appointment_id": appointmentId.String(),
		},
		OccurredAt: time.Now(),
	}
}

func NewDocumentIngested(tenantId, documentId uuid.UUID, chunkCount int) Event {
	return BaseEvent{
		Type: TypeDocumentIngested,
		Data: map[string]interface{}{
			"tenant_id":   tenantId.String(),
			"document_id": documentId.String(),
			"chunk_count": chunkCount,
		},
		OccurredAt: time.Now(),
	}
}
