package implementation

import (
	"context"
	"errors"

	"bizchat-be/internal/entity"
	"bizchat-be/internal/mapper"
	"bizchat-be/internal/model"
	"bizchat-be/internal/repository/contract"
	"bizchat-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TenantRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TenantMapper
}

func NewTenantRepository(db *gorm.DB) contract.TenantRepository {
	return &TenantRepositoryImpl{
		db:     db,
		mapper: mapper.NewTenantMapper(),
	}
}

func (r *TenantRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TenantRepositoryImpl) Create(ctx context.Context, tenant *entity.Tenant) error {
	m := r.mapper.ToModel(tenant)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*tenant = *r.mapper.ToEntity(m)
	return nil
}

func (r *TenantRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Tenant, error) {
	var m model.Tenant
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TenantRepositoryImpl) FindOneLocked(ctx context.Context, id uuid.UUID) (*entity.Tenant, error) {
	var m model.Tenant
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TenantRepositoryImpl) FindServices(ctx context.Context, tenantId uuid.UUID) ([]*entity.Service, error) {
	var models []*model.Service
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantId).
		Order("name ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	services := make([]*entity.Service, len(models))
	for i, m := range models {
		services[i] = r.mapper.ServiceToEntity(m)
	}
	return services, nil
}

func (r *TenantRepositoryImpl) FindBusinessHours(ctx context.Context, tenantId uuid.UUID) ([]*entity.BusinessHours, error) {
	var models []*model.BusinessHours
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantId).
		Order("weekday ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	hours := make([]*entity.BusinessHours, len(models))
	for i, m := range models {
		hours[i] = r.mapper.HoursToEntity(m)
	}
	return hours, nil
}

func (r *TenantRepositoryImpl) CreateService(ctx context.Context, service *entity.Service) error {
	m := r.mapper.ServiceToModel(service)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*service = *r.mapper.ServiceToEntity(m)
	return nil
}

func (r *TenantRepositoryImpl) CreateBusinessHours(ctx context.Context, hours *entity.BusinessHours) error {
	m := r.mapper.HoursToModel(hours)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*hours = *r.mapper.HoursToEntity(m)
	return nil
}
