package service

import (
	"context"
	"encoding/json"
	"log"

	"bizchat-be/internal/dto"
	"bizchat-be/internal/pkg/apperr"
	"bizchat-be/internal/pkg/mailer"
	"bizchat-be/internal/repository/specification"
	"bizchat-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	reembedTopic      string
	confirmationTopic string
	uowFactory        unitofwork.RepositoryFactory
	documentService   IDocumentService
	emailService      mailer.IEmailService
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	reembedTopic string,
	confirmationTopic string,
	uowFactory unitofwork.RepositoryFactory,
	documentService IDocumentService,
	emailService mailer.IEmailService,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		reembedTopic:      reembedTopic,
		confirmationTopic: confirmationTopic,
		uowFactory:        uowFactory,
		documentService:   documentService,
		emailService:      emailService,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	reembedMessages, err := cs.pubSub.Subscribe(ctx, cs.reembedTopic)
	if err != nil {
		return err
	}
	confirmationMessages, err := cs.pubSub.Subscribe(ctx, cs.confirmationTopic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range reembedMessages {
			cs.processReembed(ctx, msg)
		}
	}()
	go func() {
		for msg := range confirmationMessages {
			cs.processConfirmation(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processReembed(ctx context.Context, msg *message.Message) {
	var payload dto.ReembedDocumentMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal reembed message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Re-embedding document %s", payload.DocumentId)

	if err := cs.documentService.Reembed(ctx, payload.DocumentId); err != nil {
		if apperr.IsNotFound(err) {
			log.Printf("[WARN] Document %s gone before re-embed, skipping", payload.DocumentId)
			msg.Ack() // Document deleted? Ack.
			return
		}
		log.Printf("[ERROR] Re-embed of document %s failed: %v", payload.DocumentId, err)
		msg.Nack() // Nack for retriable errors
		return
	}

	msg.Ack()
}

func (cs *consumerService) processConfirmation(ctx context.Context, msg *message.Message) {
	var payload dto.SendConfirmationMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal confirmation message: %v", err)
		msg.Ack()
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	appointment, err := uow.AppointmentRepository().FindOne(ctx, specification.ByID{ID: payload.AppointmentId})
	if err != nil {
		log.Printf("[ERROR] Failed to load appointment %s: %v", payload.AppointmentId, err)
		msg.Nack()
		return
	}
	if appointment == nil || appointment.CustomerEmail == "" {
		msg.Ack()
		return
	}

	tenant, err := uow.TenantRepository().FindOne(ctx, specification.ByID{ID: appointment.TenantId})
	if err != nil {
		log.Printf("[ERROR] Failed to load tenant %s: %v", appointment.TenantId, err)
		msg.Nack()
		return
	}

	businessName := "our business"
	if tenant != nil {
		businessName = tenant.Name
	}

	err = cs.emailService.SendAppointmentConfirmation(&mailer.AppointmentConfirmation{
		ToEmail:      appointment.CustomerEmail,
		CustomerName: appointment.CustomerName,
		BusinessName: businessName,
		ServiceName:  appointment.ServiceName,
		StartTime:    appointment.StartTime,
		EndTime:      appointment.EndTime,
	})
	if err != nil {
		log.Printf("[ERROR] Failed to send confirmation for appointment %s: %v", appointment.Id, err)
		msg.Nack()
		return
	}

	log.Printf("[INFO] Confirmation sent for appointment %s", appointment.Id)
	msg.Ack()
}
