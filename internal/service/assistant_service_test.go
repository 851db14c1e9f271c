package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"bizchat-be/internal/dto"
	"bizchat-be/internal/entity"
	"bizchat-be/pkg/llm"
	"bizchat-be/pkg/rag/intent"

	"github.com/google/uuid"
)

// scriptedLLM replays canned responses in order; the intent extractor
// consumes the first, the answer generation the next.
type scriptedLLM struct {
	mu        sync.Mutex
	responses []string
}

func (s *scriptedLLM) next() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.responses) == 0 {
		return ""
	}
	response := s.responses[0]
	s.responses = s.responses[1:]
	return response
}

func (s *scriptedLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return s.next(), nil
}

func (s *scriptedLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return s.next(), nil
}

type stubTenantService struct {
	snapshot *entity.TenantSnapshot
}

func (s *stubTenantService) Create(ctx context.Context, req *dto.CreateTenantRequest) (*dto.CreateTenantResponse, error) {
	return nil, nil
}

func (s *stubTenantService) Profile(ctx context.Context, tenantId uuid.UUID) (*dto.TenantProfileResponse, error) {
	return nil, nil
}

func (s *stubTenantService) Snapshot(ctx context.Context, chatbotKey string) (*entity.TenantSnapshot, error) {
	return s.snapshot, nil
}

type stubRetrievalService struct {
	context string
}

func (s *stubRetrievalService) BuildContext(ctx context.Context, tenantId uuid.UUID, query string) string {
	return s.context
}

func newAssistantFixture(responses ...string) (*fakeFactory, IAssistantService, *entity.TenantSnapshot) {
	factory := newFakeFactory()
	snapshot := testSnapshot(uuid.New())
	model := &scriptedLLM{responses: responses}

	svc := NewAssistantService(
		&stubTenantService{snapshot: snapshot},
		NewConversationService(factory),
		&stubRetrievalService{},
		NewAvailabilityService(factory),
		NewBookingService(factory, &fakePublisher{}, nil, nopLogger{}),
		intent.NewExtractor(model),
		model,
		nopLogger{},
	)
	return factory, svc, snapshot
}

const notAppointmentJSON = `{"intent": "not_appointment", "service": "missing", "date": "missing", "time": "missing", "name": "missing", "phone": "missing", "email": "missing"}`

func TestChatAnswersQuestions(t *testing.T) {
	factory, svc, _ := newAssistantFixture(notAppointmentJSON, "We open at 9am on weekdays.")

	res, err := svc.Chat(context.Background(), &dto.ChatRequest{
		ChatbotKey: "chatbot_test",
		SessionKey: "sess-1",
		Message:    "when do you open?",
	})
	if err != nil {
		t.Fatalf("Chat returned error: %v", err)
	}
	if res.Message != "We open at 9am on weekdays." {
		t.Errorf("message = %q", res.Message)
	}
	if res.AppointmentId != nil {
		t.Error("question turn should not produce an appointment")
	}

	// Both sides of the exchange are persisted.
	if len(factory.store.turns) != 2 {
		t.Fatalf("stored %d turns, want 2", len(factory.store.turns))
	}
	if factory.store.turns[0].Role != entity.ConversationRoleUser || factory.store.turns[1].Role != entity.ConversationRoleAssistant {
		t.Errorf("turn roles = %q, %q", factory.store.turns[0].Role, factory.store.turns[1].Role)
	}
}

func TestChatFallsBackWhenIntentUnparseable(t *testing.T) {
	_, svc, _ := newAssistantFixture("sorry, I cannot do that", "Happy to help!")

	res, err := svc.Chat(context.Background(), &dto.ChatRequest{
		ChatbotKey: "chatbot_test",
		SessionKey: "sess-1",
		Message:    "hello",
	})
	if err != nil {
		t.Fatalf("Chat returned error: %v", err)
	}
	if res.Message != "Happy to help!" {
		t.Errorf("message = %q, want the chat answer", res.Message)
	}
}

func TestChatAsksForMissingBookingDetails(t *testing.T) {
	_, svc, _ := newAssistantFixture(
		`{"intent": "book_appointment", "service": "Consultation", "date": "2026-01-05", "time": "missing", "name": "missing", "phone": "missing", "email": "missing"}`,
	)

	res, err := svc.Chat(context.Background(), &dto.ChatRequest{
		ChatbotKey: "chatbot_test",
		SessionKey: "sess-1",
		Message:    "book a consultation on the 5th",
	})
	if err != nil {
		t.Fatalf("Chat returned error: %v", err)
	}

	want := []string{"time", "name", "email", "phone"}
	if len(res.MissingFields) != len(want) {
		t.Fatalf("missing fields = %v, want %v", res.MissingFields, want)
	}
	for i := range want {
		if res.MissingFields[i] != want[i] {
			t.Fatalf("missing fields = %v, want %v", res.MissingFields, want)
		}
	}
	// A known date means the reply includes that day's open slots.
	if !strings.Contains(res.Message, "Available times on 2026-01-05") {
		t.Errorf("message %q does not list available times", res.Message)
	}
	if !strings.Contains(res.Message, "9:00") {
		t.Errorf("message %q does not include the opening slot", res.Message)
	}
}

func TestChatBooksWhenDetailsComplete(t *testing.T) {
	factory, svc, _ := newAssistantFixture(
		`{"intent": "book_appointment", "service": "Consultation", "date": "2026-01-05", "time": "10:00", "name": "Jane", "phone": "missing", "email": "jane@example.com"}`,
	)

	res, err := svc.Chat(context.Background(), &dto.ChatRequest{
		ChatbotKey: "chatbot_test",
		SessionKey: "sess-1",
		Message:    "book me for 10am Monday, I'm Jane, jane@example.com",
	})
	if err != nil {
		t.Fatalf("Chat returned error: %v", err)
	}
	if res.AppointmentId == nil {
		t.Fatal("completed booking should return the appointment id")
	}
	if !strings.Contains(res.Message, "You're all set, Jane!") {
		t.Errorf("message = %q", res.Message)
	}
	if len(factory.store.appointments) != 1 {
		t.Fatalf("stored %d appointments, want 1", len(factory.store.appointments))
	}
	if factory.store.appointments[0].Id != *res.AppointmentId {
		t.Error("returned appointment id does not match the stored row")
	}
}

func TestChatOffersAlternativesOnConflict(t *testing.T) {
	factory, svc, snapshot := newAssistantFixture(
		`{"intent": "book_appointment", "service": "Consultation", "date": "2026-01-05", "time": "10:00", "name": "Jane", "phone": "missing", "email": "jane@example.com"}`,
	)

	day := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	factory.store.appointments = append(factory.store.appointments, &entity.Appointment{
		Id:        uuid.New(),
		TenantId:  snapshot.Tenant.Id,
		StartTime: day.Add(10 * time.Hour),
		EndTime:   day.Add(10*time.Hour + 30*time.Minute),
		Status:    entity.AppointmentStatusScheduled,
	})

	res, err := svc.Chat(context.Background(), &dto.ChatRequest{
		ChatbotKey: "chatbot_test",
		SessionKey: "sess-1",
		Message:    "book me for 10am Monday",
	})
	if err != nil {
		t.Fatalf("Chat returned error: %v", err)
	}
	if res.AppointmentId != nil {
		t.Error("conflicting booking should not return an appointment id")
	}
	if !strings.Contains(res.Message, "just taken") {
		t.Errorf("message = %q, want a taken-slot apology", res.Message)
	}
	if !strings.Contains(res.Message, "10:30") {
		t.Errorf("message %q does not offer remaining slots", res.Message)
	}
	if strings.Contains(res.Message, "These times are still open: 10:00") {
		t.Errorf("message %q offers the taken slot", res.Message)
	}
	if len(factory.store.appointments) != 1 {
		t.Errorf("stored %d appointments, want only the pre-existing one", len(factory.store.appointments))
	}
}
