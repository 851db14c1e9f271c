package mapper

import (
	"encoding/json"
	"time"

	"bizchat-be/internal/entity"
	"bizchat-be/internal/model"

	"gorm.io/datatypes"
)

type TenantMapper struct{}

func NewTenantMapper() *TenantMapper {
	return &TenantMapper{}
}

func (m *TenantMapper) ToEntity(t *model.Tenant) *entity.Tenant {
	if t == nil {
		return nil
	}

	var settings *entity.AISettings
	if len(t.Metadata) > 0 {
		var s entity.AISettings
		if err := json.Unmarshal(t.Metadata, &s); err == nil {
			settings = &s
		}
	}

	updatedAt := t.UpdatedAt
	return &entity.Tenant{
		Id:          t.Id,
		ChatbotKey:  t.ChatbotKey,
		Name:        t.Name,
		Industry:    t.Industry,
		Description: t.Description,
		Location:    t.Location,
		Website:     t.Website,
		AISettings:  settings,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   &updatedAt,
	}
}

func (m *TenantMapper) ToModel(t *entity.Tenant) *model.Tenant {
	if t == nil {
		return nil
	}

	var metadata datatypes.JSON
	if t.AISettings != nil {
		if raw, err := json.Marshal(t.AISettings); err == nil {
			metadata = raw
		}
	}

	return &model.Tenant{
		Id:          t.Id,
		ChatbotKey:  t.ChatbotKey,
		Name:        t.Name,
		Industry:    t.Industry,
		Description: t.Description,
		Location:    t.Location,
		Website:     t.Website,
		Metadata:    metadata,
		CreatedAt:   t.CreatedAt,
	}
}

func (m *TenantMapper) ServiceToEntity(s *model.Service) *entity.Service {
	if s == nil {
		return nil
	}
	return &entity.Service{
		Id:              s.Id,
		TenantId:        s.TenantId,
		Name:            s.Name,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
	}
}

func (m *TenantMapper) ServiceToModel(s *entity.Service) *model.Service {
	if s == nil {
		return nil
	}
	return &model.Service{
		Id:              s.Id,
		TenantId:        s.TenantId,
		Name:            s.Name,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
	}
}

func (m *TenantMapper) HoursToEntity(h *model.BusinessHours) *entity.BusinessHours {
	if h == nil {
		return nil
	}
	return &entity.BusinessHours{
		Id:          h.Id,
		TenantId:    h.TenantId,
		Weekday:     time.Weekday(h.Weekday),
		OpenMinute:  h.OpenMinute,
		CloseMinute: h.CloseMinute,
		Closed:      h.Closed,
	}
}

func (m *TenantMapper) HoursToModel(h *entity.BusinessHours) *model.BusinessHours {
	if h == nil {
		return nil
	}
	return &model.BusinessHours{
		Id:          h.Id,
		TenantId:    h.TenantId,
		Weekday:     int(h.Weekday),
		OpenMinute:  h.OpenMinute,
		CloseMinute: h.CloseMinute,
		Closed:      h.Closed,
	}
}
