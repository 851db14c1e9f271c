package service

import (
	"context"
	"strings"
	"time"

	"bizchat-be/internal/dto"
	"bizchat-be/internal/entity"
	"bizchat-be/internal/pkg/apperr"
	"bizchat-be/internal/repository/memory"
	"bizchat-be/internal/repository/specification"
	"bizchat-be/internal/repository/unitofwork"
	"bizchat-be/pkg/scheduling"

	"github.com/google/uuid"
)

type ITenantService interface {
	Create(ctx context.Context, req *dto.CreateTenantRequest) (*dto.CreateTenantResponse, error)
	Profile(ctx context.Context, tenantId uuid.UUID) (*dto.TenantProfileResponse, error)

	// Snapshot resolves a tenant by its public chatbot key, serving from
	// the in-memory cache when fresh.
	Snapshot(ctx context.Context, chatbotKey string) (*entity.TenantSnapshot, error)
}

type tenantService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *memory.SnapshotCache
}

func NewTenantService(uowFactory unitofwork.RepositoryFactory, cache *memory.SnapshotCache) ITenantService {
	return &tenantService{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

func (s *tenantService) Create(ctx context.Context, req *dto.CreateTenantRequest) (*dto.CreateTenantResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	tenant := entity.Tenant{
		Id:          uuid.New(),
		ChatbotKey:  uuid.NewString(),
		Name:        req.Name,
		Industry:    req.Industry,
		Description: req.Description,
		AISettings: &entity.AISettings{
			Personality:    "friendly",
			KnowledgeFocus: "balanced",
		},
		CreatedAt: time.Now(),
	}
	if err := uow.TenantRepository().Create(ctx, &tenant); err != nil {
		return nil, err
	}

	for _, svc := range req.Services {
		duration := svc.DurationMinutes
		if duration <= 0 {
			duration = scheduling.DefaultDurationMinutes
		}
		service := entity.Service{
			Id:              uuid.New(),
			TenantId:        tenant.Id,
			Name:            svc.Name,
			DurationMinutes: duration,
			Price:           svc.Price,
		}
		if err := uow.TenantRepository().CreateService(ctx, &service); err != nil {
			return nil, err
		}
	}

	for _, day := range req.Hours {
		hours, err := hoursFromInput(tenant.Id, &day)
		if err != nil {
			return nil, err
		}
		if err := uow.TenantRepository().CreateBusinessHours(ctx, hours); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.CreateTenantResponse{
		Id:         tenant.Id,
		ChatbotKey: tenant.ChatbotKey,
	}, nil
}

func hoursFromInput(tenantId uuid.UUID, day *dto.BusinessHoursInput) (*entity.BusinessHours, error) {
	hours := entity.BusinessHours{
		Id:       uuid.New(),
		TenantId: tenantId,
		Weekday:  time.Weekday(day.Weekday),
		Closed:   day.Closed,
	}
	if day.Closed {
		return &hours, nil
	}

	open, err := scheduling.ParseClock(day.OpenTime)
	if err != nil {
		return nil, err
	}
	closeMin, err := scheduling.ParseClock(day.CloseTime)
	if err != nil {
		return nil, err
	}
	if closeMin <= open {
		return nil, apperr.ValidationField("close_time", "must be after open_time")
	}
	hours.OpenMinute = open
	hours.CloseMinute = closeMin
	return &hours, nil
}

func (s *tenantService) Profile(ctx context.Context, tenantId uuid.UUID) (*dto.TenantProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tenant, err := uow.TenantRepository().FindOne(ctx, specification.ByID{ID: tenantId})
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, apperr.NotFound("tenant", tenantId.String())
	}

	services, err := uow.TenantRepository().FindServices(ctx, tenant.Id)
	if err != nil {
		return nil, err
	}
	hours, err := uow.TenantRepository().FindBusinessHours(ctx, tenant.Id)
	if err != nil {
		return nil, err
	}
	indexedChunks, err := uow.DocumentChunkRepository().CountByTenant(ctx, tenant.Id)
	if err != nil {
		return nil, err
	}

	res := dto.TenantProfileResponse{
		Id:            tenant.Id,
		Name:          tenant.Name,
		Industry:      tenant.Industry,
		Description:   tenant.Description,
		IndexedChunks: indexedChunks,
		Services:      make([]dto.ServiceItem, 0, len(services)),
		Hours:         make([]dto.BusinessDayOut, 0, len(hours)),
	}
	for _, svc := range services {
		res.Services = append(res.Services, dto.ServiceItem{
			Id:              svc.Id,
			Name:            svc.Name,
			DurationMinutes: svc.DurationMinutes,
			Price:           svc.Price,
		})
	}
	for _, day := range hours {
		out := dto.BusinessDayOut{
			Weekday: int(day.Weekday),
			Closed:  day.Closed,
		}
		if !day.Closed {
			out.OpenTime = scheduling.FormatClock(day.OpenMinute)
			out.CloseTime = scheduling.FormatClock(day.CloseMinute)
		}
		res.Hours = append(res.Hours, out)
	}
	return &res, nil
}

func (s *tenantService) Snapshot(ctx context.Context, chatbotKey string) (*entity.TenantSnapshot, error) {
	key := strings.TrimSpace(chatbotKey)
	if key == "" {
		return nil, apperr.ValidationField("chatbot_key", "required")
	}

	if cached, found := s.cache.Get(key); found {
		return cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	tenant, err := uow.TenantRepository().FindOne(ctx, specification.ByChatbotKey{ChatbotKey: key})
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, apperr.NotFound("tenant", key)
	}

	services, err := uow.TenantRepository().FindServices(ctx, tenant.Id)
	if err != nil {
		return nil, err
	}
	hours, err := uow.TenantRepository().FindBusinessHours(ctx, tenant.Id)
	if err != nil {
		return nil, err
	}

	hoursByDay := make(map[time.Weekday]*entity.BusinessHours, len(hours))
	for _, day := range hours {
		hoursByDay[day.Weekday] = day
	}

	snapshot := &entity.TenantSnapshot{
		Tenant:   tenant,
		Services: services,
		Hours:    hoursByDay,
	}
	s.cache.Save(snapshot)
	return snapshot, nil
}
