package dto

import "github.com/google/uuid"

// ReembedDocumentMessage is the payload of the re-embed job queue.
type ReembedDocumentMessage struct {
	DocumentId uuid.UUID `json:"document_id"`
}

// SendConfirmationMessage is the payload of the confirmation email job queue.
type SendConfirmationMessage struct {
	AppointmentId uuid.UUID `json:"appointment_id"`
}
