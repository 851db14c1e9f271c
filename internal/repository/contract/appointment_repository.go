package contract

import (
	"context"
	"time"

	"bizchat-be/internal/entity"
	"bizchat-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Appointment, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Appointment, error)

	// FindScheduledForDayLocked fetches the tenant's scheduled
	// appointments for one calendar day under FOR UPDATE, so the overlap
	// re-check and the insert are atomic with respect to concurrent
	// bookings for the same tenant.
	FindScheduledForDayLocked(ctx context.Context, tenantId uuid.UUID, day time.Time) ([]*entity.Appointment, error)
}
