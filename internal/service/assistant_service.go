package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bizchat-be/internal/constant"
	"bizchat-be/internal/dto"
	"bizchat-be/internal/entity"
	"bizchat-be/internal/pkg/apperr"
	"bizchat-be/internal/pkg/logger"
	"bizchat-be/pkg/llm"
	"bizchat-be/pkg/rag/intent"
)

type IAssistantService interface {
	// Chat runs one widget turn: persist the user message, detect
	// booking intent, then either advance the booking flow or answer
	// from the tenant's documents.
	Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)

	History(ctx context.Context, chatbotKey, sessionKey string) (*dto.ConversationHistoryResponse, error)
}

type assistantService struct {
	tenantService       ITenantService
	conversationService IConversationService
	retrievalService    IRetrievalService
	availabilityService IAvailabilityService
	bookingService      IBookingService
	intentExtractor     *intent.Extractor
	llmProvider         llm.LLMProvider
	logger              logger.ILogger
}

func NewAssistantService(
	tenantService ITenantService,
	conversationService IConversationService,
	retrievalService IRetrievalService,
	availabilityService IAvailabilityService,
	bookingService IBookingService,
	intentExtractor *intent.Extractor,
	llmProvider llm.LLMProvider,
	sysLogger logger.ILogger,
) IAssistantService {
	return &assistantService{
		tenantService:       tenantService,
		conversationService: conversationService,
		retrievalService:    retrievalService,
		availabilityService: availabilityService,
		bookingService:      bookingService,
		intentExtractor:     intentExtractor,
		llmProvider:         llmProvider,
		logger:              sysLogger,
	}
}

func (s *assistantService) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	snapshot, err := s.tenantService.Snapshot(ctx, req.ChatbotKey)
	if err != nil {
		return nil, err
	}

	if _, err := s.conversationService.Append(ctx, snapshot.Tenant.Id, req.SessionKey, entity.ConversationRoleUser, req.Message); err != nil {
		return nil, err
	}

	res, err := s.respond(ctx, snapshot, req.Message)
	if err != nil {
		return nil, err
	}

	if _, err := s.conversationService.Append(ctx, snapshot.Tenant.Id, req.SessionKey, entity.ConversationRoleAssistant, res.Message); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *assistantService) respond(ctx context.Context, snapshot *entity.TenantSnapshot, message string) (*dto.ChatResponse, error) {
	serviceNames := make([]string, 0, len(snapshot.Services))
	for _, svc := range snapshot.Services {
		serviceNames = append(serviceNames, svc.Name)
	}

	bookingIntent, err := s.intentExtractor.Extract(ctx, serviceNames, message)
	if err != nil {
		if !apperr.IsParse(err) {
			return nil, err
		}
		// An unparseable extraction is treated as regular chat, but
		// logged so prompt drift shows up in the metrics.
		s.logger.Warn("assistant", "intent extraction unparseable, falling back to chat", map[string]interface{}{
			"tenant_id": snapshot.Tenant.Id,
			"error":     err.Error(),
		})
		bookingIntent = &intent.BookingIntent{Intent: constant.IntentNotAppointment}
	}

	if bookingIntent.IsBooking() {
		return s.respondBooking(ctx, snapshot, bookingIntent)
	}
	return s.respondRAG(ctx, snapshot, message)
}

func (s *assistantService) respondBooking(ctx context.Context, snapshot *entity.TenantSnapshot, bi *intent.BookingIntent) (*dto.ChatResponse, error) {
	details := &BookingDetails{
		Service: bi.Service,
		Date:    bi.Date,
		Time:    bi.Time,
		Name:    bi.Name,
		Email:   bi.Email,
		Phone:   bi.Phone,
	}

	if missing := MissingBookingFields(details); len(missing) > 0 {
		return &dto.ChatResponse{
			Message:       s.askForDetails(ctx, snapshot, details, missing),
			MissingFields: missing,
		}, nil
	}

	appointment, err := s.bookingService.Book(ctx, snapshot, details)
	if err != nil {
		if apperr.IsConflict(err) {
			return &dto.ChatResponse{
				Message: s.offerAlternatives(ctx, snapshot, details),
			}, nil
		}
		if apperr.IsValidation(err) {
			return &dto.ChatResponse{
				Message: fmt.Sprintf("I couldn't book that: %s. Could you pick a different time?", err.Error()),
			}, nil
		}
		return nil, err
	}

	return &dto.ChatResponse{
		Message: fmt.Sprintf(
			"You're all set, %s! Your %s appointment is booked for %s at %s.",
			appointment.CustomerName,
			appointment.ServiceName,
			appointment.StartTime.Format("Monday, January 2"),
			appointment.StartTime.Format("3:04 PM"),
		),
		AppointmentId: &appointment.Id,
	}, nil
}

func (s *assistantService) askForDetails(ctx context.Context, snapshot *entity.TenantSnapshot, details *BookingDetails, missing []string) string {
	var b strings.Builder
	b.WriteString("I'd be happy to help you book an appointment. ")
	b.WriteString(fmt.Sprintf("Could you share your %s?", strings.Join(missing, ", ")))

	if details.Date != "" {
		if slots := s.slotsFor(ctx, snapshot, details.Date); len(slots) > 0 {
			b.WriteString(fmt.Sprintf(" Available times on %s: %s.", details.Date, strings.Join(slots, ", ")))
		}
	}
	return b.String()
}

func (s *assistantService) offerAlternatives(ctx context.Context, snapshot *entity.TenantSnapshot, details *BookingDetails) string {
	msg := fmt.Sprintf("Sorry, %s on %s was just taken.", details.Time, details.Date)
	if slots := s.slotsFor(ctx, snapshot, details.Date); len(slots) > 0 {
		return fmt.Sprintf("%s These times are still open: %s.", msg, strings.Join(slots, ", "))
	}
	return msg + " Could you pick another day?"
}

func (s *assistantService) slotsFor(ctx context.Context, snapshot *entity.TenantSnapshot, date string) []string {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil
	}
	res, err := s.availabilityService.AvailableSlots(ctx, snapshot, day)
	if err != nil {
		s.logger.Warn("assistant", "slot lookup failed", map[string]interface{}{
			"tenant_id": snapshot.Tenant.Id,
			"error":     err.Error(),
		})
		return nil
	}
	return res.Slots
}

func (s *assistantService) respondRAG(ctx context.Context, snapshot *entity.TenantSnapshot, message string) (*dto.ChatResponse, error) {
	documentContext := s.retrievalService.BuildContext(ctx, snapshot.Tenant.Id, message)
	prompt := buildAssistantPrompt(snapshot, documentContext, message)

	answer, err := s.llmProvider.Generate(ctx, prompt)
	if err != nil {
		return nil, apperr.Upstream("text generation", err)
	}

	return &dto.ChatResponse{
		Message: strings.TrimSpace(answer),
	}, nil
}

func buildAssistantPrompt(snapshot *entity.TenantSnapshot, documentContext, message string) string {
	tenant := snapshot.Tenant
	businessContext := buildBusinessContext(snapshot)

	documentBlock := ""
	if documentContext != "" {
		documentBlock = fmt.Sprintf("RELEVANT DOCUMENTS FROM %s:\n%s\n\n", strings.ToUpper(tenant.Name), documentContext)
	}

	settings := tenant.AISettings
	if settings != nil && settings.UseCustomPrompt && settings.CustomPrompt != "" {
		return fmt.Sprintf(
			constant.AssistantCustomPromptTemplateV1,
			settings.CustomPrompt,
			businessContext,
			documentBlock,
			message,
		)
	}

	personality := constant.PersonalityInstructions[constant.PersonalityFriendly]
	focus := constant.FocusInstructions[constant.FocusBalanced]
	var styleInstructions []string
	if settings != nil {
		if p, ok := constant.PersonalityInstructions[settings.Personality]; ok {
			personality = p
		}
		if f, ok := constant.FocusInstructions[settings.KnowledgeFocus]; ok {
			focus = f
		}
		if settings.IsConcise {
			styleInstructions = append(styleInstructions, "Keep responses concise")
		}
		if settings.AskFollowUp {
			styleInstructions = append(styleInstructions, "Ask follow-up questions when helpful")
		}
	}

	return fmt.Sprintf(
		constant.AssistantPromptTemplateV1,
		tenant.Name,
		tenant.Industry,
		personality,
		focus,
		strings.Join(styleInstructions, ". "),
		businessContext,
		documentBlock,
		message,
	)
}

func buildBusinessContext(snapshot *entity.TenantSnapshot) string {
	tenant := snapshot.Tenant

	serviceNames := make([]string, 0, len(snapshot.Services))
	for _, svc := range snapshot.Services {
		serviceNames = append(serviceNames, svc.Name)
	}

	lines := []string{
		fmt.Sprintf("Business Name: %s", tenant.Name),
		fmt.Sprintf("Industry: %s", tenant.Industry),
		fmt.Sprintf("Description: %s", tenant.Description),
		fmt.Sprintf("Services: %s", strings.Join(serviceNames, ", ")),
	}
	if tenant.Location != "" {
		lines = append(lines, fmt.Sprintf("Location: %s", tenant.Location))
	}
	return strings.Join(lines, "\n")
}

func (s *assistantService) History(ctx context.Context, chatbotKey, sessionKey string) (*dto.ConversationHistoryResponse, error) {
	snapshot, err := s.tenantService.Snapshot(ctx, chatbotKey)
	if err != nil {
		return nil, err
	}
	return s.conversationService.History(ctx, snapshot.Tenant.Id, sessionKey)
}
