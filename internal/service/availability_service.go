package service

import (
	"context"
	"time"

	"bizchat-be/internal/dto"
	"bizchat-be/internal/entity"
	"bizchat-be/internal/repository/specification"
	"bizchat-be/internal/repository/unitofwork"
	"bizchat-be/pkg/scheduling"
)

type IAvailabilityService interface {
	// AvailableSlots lists the free slot start times for one calendar
	// day, honoring the tenant's hours and existing scheduled
	// appointments. Closed days yield an empty list.
	AvailableSlots(ctx context.Context, snapshot *entity.TenantSnapshot, day time.Time) (*dto.AvailableSlotsResponse, error)
}

type availabilityService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAvailabilityService(uowFactory unitofwork.RepositoryFactory) IAvailabilityService {
	return &availabilityService{
		uowFactory: uowFactory,
	}
}

func (s *availabilityService) AvailableSlots(ctx context.Context, snapshot *entity.TenantSnapshot, day time.Time) (*dto.AvailableSlotsResponse, error) {
	res := dto.AvailableSlotsResponse{
		Date:  day.Format("2006-01-02"),
		Slots: []string{},
	}

	hours, open := snapshot.HoursFor(day.Weekday())
	if !open {
		return &res, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	appointments, err := uow.AppointmentRepository().FindAll(ctx,
		specification.TenantOwnedBy{TenantID: snapshot.Tenant.Id},
		specification.StatusIs{Status: entity.AppointmentStatusScheduled},
		specification.StartsOnDay{Day: day},
	)
	if err != nil {
		return nil, err
	}

	busy := busyIntervals(appointments)
	for _, start := range scheduling.ComputeSlots(hours.OpenMinute, hours.CloseMinute, scheduling.SlotGranularityMinutes, busy) {
		res.Slots = append(res.Slots, scheduling.FormatClock(start))
	}
	return &res, nil
}

// busyIntervals projects appointments onto minutes-from-midnight of
// their own day.
func busyIntervals(appointments []*entity.Appointment) []scheduling.Interval {
	busy := make([]scheduling.Interval, 0, len(appointments))
	for _, appt := range appointments {
		busy = append(busy, scheduling.Interval{
			Start: appt.StartTime.Hour()*60 + appt.StartTime.Minute(),
			End:   appt.EndTime.Hour()*60 + appt.EndTime.Minute(),
		})
	}
	return busy
}
