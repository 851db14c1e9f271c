package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bizchat-be/internal/dto"
	"bizchat-be/internal/entity"
	"bizchat-be/internal/pkg/apperr"
	"bizchat-be/internal/pkg/logger"
	"bizchat-be/internal/repository/specification"
	"bizchat-be/internal/repository/unitofwork"
	"bizchat-be/pkg/events"
	pktNats "bizchat-be/pkg/nats"
	"bizchat-be/pkg/scheduling"

	"github.com/google/uuid"
)

// BookingDetails is the normalized input of a booking attempt,
// whether it came from the REST endpoint or the chat intent extractor.
type BookingDetails struct {
	Service string // optional; unmatched names keep the default duration
	Date    string // YYYY-MM-DD
	Time    string // H:MM
	Name    string
	Email   string
	Phone   string
	Notes   string
}

type IBookingService interface {
	// Book validates the details, re-checks the slot under a row lock
	// and inserts the appointment. A lost race surfaces as ConflictError.
	Book(ctx context.Context, snapshot *entity.TenantSnapshot, details *BookingDetails) (*entity.Appointment, error)

	List(ctx context.Context, tenantId uuid.UUID) (*dto.ListAppointmentsResponse, error)

	// UpdateStatus applies the scheduled -> cancelled/completed state
	// machine. Transitions out of terminal states are rejected.
	UpdateStatus(ctx context.Context, tenantId, id uuid.UUID, status string) error
}

type bookingService struct {
	uowFactory            unitofwork.RepositoryFactory
	confirmationPublisher IPublisherService
	eventPublisher        *pktNats.Publisher
	logger                logger.ILogger
}

func NewBookingService(
	uowFactory unitofwork.RepositoryFactory,
	confirmationPublisher IPublisherService,
	eventPublisher *pktNats.Publisher,
	sysLogger logger.ILogger,
) IBookingService {
	return &bookingService{
		uowFactory:            uowFactory,
		confirmationPublisher: confirmationPublisher,
		eventPublisher:        eventPublisher,
		logger:                sysLogger,
	}
}

// MissingBookingFields lists which details a booking attempt still
// needs. Service is optional (unmatched bookings fall back to the
// default duration); contact is satisfied by either email or phone,
// and when both are absent both are reported.
func MissingBookingFields(details *BookingDetails) []string {
	var missing []string
	if details.Date == "" {
		missing = append(missing, "date")
	}
	if details.Time == "" {
		missing = append(missing, "time")
	}
	if details.Name == "" {
		missing = append(missing, "name")
	}
	if details.Email == "" && details.Phone == "" {
		missing = append(missing, "email", "phone")
	}
	return missing
}

func (s *bookingService) Book(ctx context.Context, snapshot *entity.TenantSnapshot, details *BookingDetails) (*entity.Appointment, error) {
	if missing := MissingBookingFields(details); len(missing) > 0 {
		fields := make(map[string]string, len(missing))
		for _, field := range missing {
			fields[field] = "required"
		}
		return nil, apperr.Validation(fields)
	}

	day, err := time.Parse("2006-01-02", details.Date)
	if err != nil {
		return nil, apperr.ValidationField("date", "must be YYYY-MM-DD")
	}
	startMin, err := scheduling.ParseClock(details.Time)
	if err != nil {
		return nil, err
	}

	duration := scheduling.DefaultDurationMinutes
	serviceName := details.Service
	var serviceId *uuid.UUID
	if matched := scheduling.MatchService(snapshot.Services, details.Service); matched != nil {
		duration = matched.DurationMinutes
		serviceName = matched.Name
		id := matched.Id
		serviceId = &id
	}

	hours, open := snapshot.HoursFor(day.Weekday())
	if !open {
		return nil, apperr.ValidationField("date", "business is closed that day")
	}
	if startMin < hours.OpenMinute || startMin+duration > hours.CloseMinute {
		return nil, apperr.ValidationField("time", "outside business hours")
	}

	startTime := day.Add(time.Duration(startMin) * time.Minute)
	endTime := startTime.Add(time.Duration(duration) * time.Minute)
	candidate := scheduling.Interval{Start: startMin, End: startMin + duration}

	appointment := entity.Appointment{
		Id:              uuid.New(),
		TenantId:        snapshot.Tenant.Id,
		CustomerName:    details.Name,
		CustomerEmail:   details.Email,
		CustomerPhone:   details.Phone,
		ServiceId:       serviceId,
		ServiceName:     serviceName,
		StartTime:       startTime,
		EndTime:         endTime,
		DurationMinutes: duration,
		Status:          entity.AppointmentStatusScheduled,
		Notes:           details.Notes,
		CreatedAt:       time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	// Serialize bookings per tenant on the tenant row. Locking only the
	// day's scheduled appointments is not enough: two inserts into an
	// empty day would each see no rows, pass the overlap check and both
	// commit.
	if _, err := uow.TenantRepository().FindOneLocked(ctx, snapshot.Tenant.Id); err != nil {
		return nil, err
	}

	// Re-check under the lock: anything read before this point may be
	// stale by the time we insert.
	existing, err := uow.AppointmentRepository().FindScheduledForDayLocked(ctx, snapshot.Tenant.Id, day)
	if err != nil {
		return nil, err
	}
	for _, other := range busyIntervals(existing) {
		if scheduling.Overlaps(candidate, other) {
			return nil, apperr.Conflict(fmt.Sprintf("the %s slot on %s is no longer available", details.Time, details.Date))
		}
	}

	if err := uow.AppointmentRepository().Create(ctx, &appointment); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.notifyBooked(ctx, &appointment)
	return &appointment, nil
}

// notifyBooked runs after commit; failures are logged, never surfaced.
func (s *bookingService) notifyBooked(ctx context.Context, appointment *entity.Appointment) {
	if appointment.CustomerEmail != "" {
		msgJson, err := json.Marshal(dto.SendConfirmationMessage{AppointmentId: appointment.Id})
		if err == nil {
			err = s.confirmationPublisher.Publish(ctx, msgJson)
		}
		if err != nil {
			s.logger.Warn("booking", "failed to queue confirmation email", map[string]interface{}{
				"appointment_id": appointment.Id,
				"error":          err.Error(),
			})
		}
	}

	if s.eventPublisher != nil {
		evt := events.NewAppointmentScheduled(appointment.TenantId, appointment.Id, appointment.ServiceName, appointment.StartTime)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("booking", "failed to publish scheduled event", map[string]interface{}{
				"appointment_id": appointment.Id,
				"error":          err.Error(),
			})
		}
	}
}

func (s *bookingService) List(ctx context.Context, tenantId uuid.UUID) (*dto.ListAppointmentsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	appointments, err := uow.AppointmentRepository().FindAll(ctx,
		specification.TenantOwnedBy{TenantID: tenantId},
		specification.OrderBy{Field: "start_time"},
	)
	if err != nil {
		return nil, err
	}

	res := dto.ListAppointmentsResponse{
		Appointments: make([]dto.AppointmentItem, 0, len(appointments)),
	}
	for _, appt := range appointments {
		res.Appointments = append(res.Appointments, dto.AppointmentItem{
			Id:            appt.Id,
			ServiceName:   appt.ServiceName,
			CustomerName:  appt.CustomerName,
			CustomerEmail: appt.CustomerEmail,
			CustomerPhone: appt.CustomerPhone,
			StartTime:     appt.StartTime,
			EndTime:       appt.EndTime,
			Status:        appt.Status,
		})
	}
	return &res, nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, tenantId, id uuid.UUID, status string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	appointment, err := uow.AppointmentRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.TenantOwnedBy{TenantID: tenantId},
	)
	if err != nil {
		return err
	}
	if appointment == nil {
		return apperr.NotFound("appointment", id.String())
	}

	if !appointment.CanTransitionTo(status) {
		return apperr.Conflict(fmt.Sprintf("cannot move appointment from %s to %s", appointment.Status, status))
	}
	if err := uow.AppointmentRepository().UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	if status == entity.AppointmentStatusCancelled && s.eventPublisher != nil {
		evt := events.NewAppointmentCancelled(appointment.TenantId, appointment.Id)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("booking", "failed to publish cancelled event", map[string]interface{}{
				"appointment_id": appointment.Id,
				"error":          err.Error(),
			})
		}
	}
	return nil
}
