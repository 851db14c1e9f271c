package contract

import (
	"context"

	"bizchat-be/internal/entity"
	"bizchat-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TenantRepository interface {
	Create(ctx context.Context, tenant *entity.Tenant) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Tenant, error)

	// FindOneLocked reads the tenant row under FOR UPDATE. Booking takes
	// this lock before its overlap check so two inserts for the same
	// tenant serialize even when the day has no existing rows to lock.
	FindOneLocked(ctx context.Context, id uuid.UUID) (*entity.Tenant, error)
	FindServices(ctx context.Context, tenantId uuid.UUID) ([]*entity.Service, error)
	FindBusinessHours(ctx context.Context, tenantId uuid.UUID) ([]*entity.BusinessHours, error)
	CreateService(ctx context.Context, service *entity.Service) error
	CreateBusinessHours(ctx context.Context, hours *entity.BusinessHours) error
}
