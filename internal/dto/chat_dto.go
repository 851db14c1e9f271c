package dto

import (
	"time"

	"github.com/google/uuid"
)

type ChatRequest struct {
	ChatbotKey string `json:"chatbot_key" validate:"required"`
	SessionKey string `json:"session_key" validate:"required"`
	Message    string `json:"message" validate:"required"`
}

type ChatResponse struct {
	Message string `json:"message"`
	// Set when the assistant detected a booking intent but still
	// needs details from the user.
	MissingFields []string `json:"missing_fields,omitempty"`
	// Set when a booking was completed during this turn.
	AppointmentId *uuid.UUID `json:"appointment_id,omitempty"`
}

type ConversationTurnItem struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Sequence  int       `json:"sequence"`
	CreatedAt time.Time `json:"created_at"`
}

type ConversationHistoryResponse struct {
	SessionKey string                 `json:"session_key"`
	Turns      []ConversationTurnItem `json:"turns"`
}
