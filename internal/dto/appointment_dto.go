package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	ChatbotKey    string `json:"chatbot_key" validate:"required"`
	Service       string `json:"service"`
	Date          string `json:"date" validate:"required"` // YYYY-MM-DD
	Time          string `json:"time" validate:"required"` // H:MM or HH:MM
	CustomerName  string `json:"customer_name" validate:"required"`
	CustomerEmail string `json:"customer_email" validate:"omitempty,email"`
	CustomerPhone string `json:"customer_phone"`
	Notes         string `json:"notes"`
}

type CreateAppointmentResponse struct {
	Id        uuid.UUID `json:"id"`
	Service   string    `json:"service"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status"`
}

type AppointmentItem struct {
	Id            uuid.UUID `json:"id"`
	ServiceName   string    `json:"service_name"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	CustomerPhone string    `json:"customer_phone"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Status        string    `json:"status"`
}

type ListAppointmentsResponse struct {
	Appointments []AppointmentItem `json:"appointments"`
}

type AvailableSlotsRequest struct {
	ChatbotKey string `json:"chatbot_key" validate:"required"`
	Date       string `json:"date" validate:"required"` // YYYY-MM-DD
}

type AvailableSlotsResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

type UpdateAppointmentStatusRequest struct {
	Id     uuid.UUID
	Status string    `json:"status" validate:"required,oneof=scheduled cancelled completed"`
}
