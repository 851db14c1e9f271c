package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"bizchat-be/internal/entity"
	"bizchat-be/internal/pkg/apperr"

	"github.com/google/uuid"
)

func TestMissingBookingFields(t *testing.T) {
	full := BookingDetails{
		Service: "Consultation",
		Date:    "2026-01-05",
		Time:    "10:00",
		Name:    "Jane",
		Email:   "jane@example.com",
	}

	tests := []struct {
		name    string
		mutate  func(d *BookingDetails)
		missing []string
	}{
		{
			name:    "complete with email",
			mutate:  func(d *BookingDetails) {},
			missing: nil,
		},
		{
			name: "complete with phone only",
			mutate: func(d *BookingDetails) {
				d.Email = ""
				d.Phone = "555-0100"
			},
			missing: nil,
		},
		{
			name:    "service is optional",
			mutate:  func(d *BookingDetails) { d.Service = "" },
			missing: nil,
		},
		{
			name:    "no date",
			mutate:  func(d *BookingDetails) { d.Date = "" },
			missing: []string{"date"},
		},
		{
			name:    "no time",
			mutate:  func(d *BookingDetails) { d.Time = "" },
			missing: []string{"time"},
		},
		{
			name:    "no name",
			mutate:  func(d *BookingDetails) { d.Name = "" },
			missing: []string{"name"},
		},
		{
			name:    "no contact at all names both fields",
			mutate:  func(d *BookingDetails) { d.Email = "" },
			missing: []string{"email", "phone"},
		},
		{
			name:    "empty details",
			mutate:  func(d *BookingDetails) { *d = BookingDetails{} },
			missing: []string{"date", "time", "name", "email", "phone"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := full
			tt.mutate(&details)
			got := MissingBookingFields(&details)
			if len(got) != len(tt.missing) {
				t.Fatalf("missing fields = %v, want %v", got, tt.missing)
			}
			for i := range got {
				if got[i] != tt.missing[i] {
					t.Fatalf("missing fields = %v, want %v", got, tt.missing)
				}
			}
		})
	}
}

func newBookingFixture() (*fakeFactory, *fakePublisher, IBookingService, *entity.TenantSnapshot) {
	factory := newFakeFactory()
	confirmations := &fakePublisher{}
	svc := NewBookingService(factory, confirmations, nil, nopLogger{})
	return factory, confirmations, svc, testSnapshot(uuid.New())
}

func TestBookCreatesAppointment(t *testing.T) {
	factory, confirmations, svc, snapshot := newBookingFixture()

	// 2026-01-05 is a Monday, the snapshot's only open day.
	appt, err := svc.Book(context.Background(), snapshot, &BookingDetails{
		Service: "Consultation",
		Date:    "2026-01-05",
		Time:    "10:00",
		Name:    "Jane",
		Email:   "jane@example.com",
		Notes:   "first visit",
	})
	if err != nil {
		t.Fatalf("Book returned error: %v", err)
	}
	if appt.Status != entity.AppointmentStatusScheduled {
		t.Errorf("status = %q, want scheduled", appt.Status)
	}
	if appt.Notes != "first visit" {
		t.Errorf("notes = %q, want them persisted on the appointment", appt.Notes)
	}
	if appt.ServiceName != "Consultation" {
		t.Errorf("service name = %q, want Consultation", appt.ServiceName)
	}
	if appt.DurationMinutes != 30 {
		t.Errorf("duration = %d, want the matched service's 30", appt.DurationMinutes)
	}
	if got := appt.EndTime.Sub(appt.StartTime); got != 30*time.Minute {
		t.Errorf("end-start = %v, want 30m", got)
	}
	if len(factory.store.appointments) != 1 {
		t.Fatalf("stored %d appointments, want 1", len(factory.store.appointments))
	}
	if confirmations.count() != 1 {
		t.Errorf("queued %d confirmations, want 1", confirmations.count())
	}
}

func TestBookMatchesServiceFuzzily(t *testing.T) {
	_, _, svc, snapshot := newBookingFixture()

	appt, err := svc.Book(context.Background(), snapshot, &BookingDetails{
		Service: "cleaning",
		Date:    "2026-01-05",
		Time:    "9:00",
		Name:    "Jane",
		Phone:   "555-0100",
	})
	if err != nil {
		t.Fatalf("Book returned error: %v", err)
	}
	if appt.ServiceName != "Teeth Cleaning" {
		t.Errorf("service name = %q, want Teeth Cleaning", appt.ServiceName)
	}
	if appt.DurationMinutes != 60 {
		t.Errorf("duration = %d, want 60", appt.DurationMinutes)
	}
}

func TestBookWithoutServiceUsesDefaultDuration(t *testing.T) {
	_, _, svc, snapshot := newBookingFixture()

	appt, err := svc.Book(context.Background(), snapshot, &BookingDetails{
		Date:  "2026-01-05",
		Time:  "10:00",
		Name:  "Jane",
		Email: "jane@example.com",
	})
	if err != nil {
		t.Fatalf("Book returned error: %v", err)
	}
	if appt.DurationMinutes != 30 {
		t.Errorf("duration = %d, want the 30-minute default", appt.DurationMinutes)
	}
	if appt.ServiceId != nil {
		t.Errorf("service id = %v, want nil for an unmatched booking", appt.ServiceId)
	}
}

func TestBookConcurrentSameSlotOneWins(t *testing.T) {
	factory, _, svc, snapshot := newBookingFixture()

	details := BookingDetails{
		Service: "Consultation",
		Date:    "2026-01-05",
		Time:    "10:00",
		Name:    "Jane",
		Email:   "jane@example.com",
	}

	const bookers = 2
	var wg sync.WaitGroup
	errs := make(chan error, bookers)
	for i := 0; i < bookers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d := details
			_, err := svc.Book(context.Background(), snapshot, &d)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	successes, conflicts := 0, 0
	for err := range errs {
		switch {
		case err == nil:
			successes++
		case apperr.IsConflict(err):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if successes != 1 || conflicts != 1 {
		t.Errorf("successes = %d, conflicts = %d, want exactly one of each", successes, conflicts)
	}
	if len(factory.store.appointments) != 1 {
		t.Errorf("stored %d appointments, want 1", len(factory.store.appointments))
	}
}

func TestBookSkipsConfirmationWithoutEmail(t *testing.T) {
	_, confirmations, svc, snapshot := newBookingFixture()

	_, err := svc.Book(context.Background(), snapshot, &BookingDetails{
		Service: "Consultation",
		Date:    "2026-01-05",
		Time:    "10:00",
		Name:    "Jane",
		Phone:   "555-0100",
	})
	if err != nil {
		t.Fatalf("Book returned error: %v", err)
	}
	if confirmations.count() != 0 {
		t.Errorf("queued %d confirmations, want 0 for phone-only booking", confirmations.count())
	}
}

func TestBookRejectsOverlap(t *testing.T) {
	_, _, svc, snapshot := newBookingFixture()

	first := BookingDetails{
		Service: "Consultation",
		Date:    "2026-01-05",
		Time:    "10:00",
		Name:    "Jane",
		Email:   "jane@example.com",
	}
	if _, err := svc.Book(context.Background(), snapshot, &first); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	second := first
	second.Name = "John"
	second.Time = "10:15"
	_, err := svc.Book(context.Background(), snapshot, &second)
	if !apperr.IsConflict(err) {
		t.Fatalf("overlapping booking error = %v, want conflict", err)
	}

	// Back-to-back is not an overlap.
	third := first
	third.Name = "Ana"
	third.Time = "10:30"
	if _, err := svc.Book(context.Background(), snapshot, &third); err != nil {
		t.Fatalf("back-to-back booking failed: %v", err)
	}
}

func TestBookValidatesDateAndHours(t *testing.T) {
	_, _, svc, snapshot := newBookingFixture()

	base := BookingDetails{
		Service: "Consultation",
		Name:    "Jane",
		Email:   "jane@example.com",
	}

	tests := []struct {
		name string
		date string
		time string
	}{
		{name: "malformed date", date: "05/01/2026", time: "10:00"},
		{name: "malformed time", date: "2026-01-05", time: "ten"},
		{name: "closed day", date: "2026-01-06", time: "10:00"},
		{name: "before opening", date: "2026-01-05", time: "8:00"},
		{name: "runs past closing", date: "2026-01-05", time: "11:45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := base
			details.Date = tt.date
			details.Time = tt.time
			_, err := svc.Book(context.Background(), snapshot, &details)
			if !apperr.IsValidation(err) {
				t.Fatalf("error = %v, want validation", err)
			}
		})
	}
}

func TestUpdateStatusStateMachine(t *testing.T) {
	_, _, svc, snapshot := newBookingFixture()

	appt, err := svc.Book(context.Background(), snapshot, &BookingDetails{
		Service: "Consultation",
		Date:    "2026-01-05",
		Time:    "10:00",
		Name:    "Jane",
		Email:   "jane@example.com",
	})
	if err != nil {
		t.Fatalf("Book returned error: %v", err)
	}

	if err := svc.UpdateStatus(context.Background(), snapshot.Tenant.Id, appt.Id, entity.AppointmentStatusCompleted); err != nil {
		t.Fatalf("scheduled -> completed failed: %v", err)
	}

	err = svc.UpdateStatus(context.Background(), snapshot.Tenant.Id, appt.Id, entity.AppointmentStatusCancelled)
	if !apperr.IsConflict(err) {
		t.Fatalf("completed -> cancelled error = %v, want conflict", err)
	}

	err = svc.UpdateStatus(context.Background(), snapshot.Tenant.Id, uuid.New(), entity.AppointmentStatusCancelled)
	if !apperr.IsNotFound(err) {
		t.Fatalf("unknown appointment error = %v, want not found", err)
	}
}
