package dto

import "github.com/google/uuid"

type ServiceInput struct {
	Name            string  `json:"name" validate:"required"`
	DurationMinutes int     `json:"duration_minutes" validate:"omitempty,min=1"`
	Price           float64 `json:"price"`
}

type BusinessHoursInput struct {
	Weekday   int    `json:"weekday" validate:"min=0,max=6"`
	OpenTime  string `json:"open_time"`  // H:MM
	CloseTime string `json:"close_time"` // H:MM
	Closed    bool   `json:"closed"`
}

type CreateTenantRequest struct {
	Name        string               `json:"name" validate:"required"`
	Industry    string               `json:"industry"`
	Description string               `json:"description"`
	Services    []ServiceInput       `json:"services" validate:"dive"`
	Hours       []BusinessHoursInput `json:"hours" validate:"dive"`
}

type CreateTenantResponse struct {
	Id         uuid.UUID `json:"id"`
	ChatbotKey string    `json:"chatbot_key"`
}

type TenantProfileResponse struct {
	Id            uuid.UUID        `json:"id"`
	Name          string           `json:"name"`
	Industry      string           `json:"industry"`
	Description   string           `json:"description"`
	IndexedChunks int64            `json:"indexed_chunks"`
	Services      []ServiceItem    `json:"services"`
	Hours         []BusinessDayOut `json:"hours"`
}

type ServiceItem struct {
	Id              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	DurationMinutes int       `json:"duration_minutes"`
	Price           float64   `json:"price"`
}

type BusinessDayOut struct {
	Weekday   int    `json:"weekday"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
	Closed    bool   `json:"closed"`
}
