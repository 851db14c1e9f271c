package service

import (
	"context"
	"sync"
	"time"

	"bizchat-be/internal/entity"
	"bizchat-be/internal/repository/contract"
	"bizchat-be/internal/repository/specification"
	"bizchat-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// memoryStore backs the fake repositories. Specifications are not
// interpreted; tests keep their data single-tenant and single-day so
// plain scans are equivalent.
type memoryStore struct {
	mu sync.Mutex

	// bookingMu stands in for the tenant row lock: held from
	// FindOneLocked until the unit of work commits or rolls back.
	bookingMu sync.Mutex
	tenants       []*entity.Tenant
	services      []*entity.Service
	hours         []*entity.BusinessHours
	documents     []*entity.Document
	chunks        []*entity.DocumentChunk
	conversations []*entity.Conversation
	turns         []*entity.ConversationTurn
	appointments  []*entity.Appointment
}

type fakeFactory struct {
	store *memoryStore
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{store: &memoryStore{}}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{store: f.store}
}

type fakeUow struct {
	store        *memoryStore
	tenantLocked bool
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }

func (u *fakeUow) Commit() error {
	u.releaseTenantLock()
	return nil
}

func (u *fakeUow) Rollback() error {
	u.releaseTenantLock()
	return nil
}

func (u *fakeUow) releaseTenantLock() {
	if u.tenantLocked {
		u.tenantLocked = false
		u.store.bookingMu.Unlock()
	}
}

func (u *fakeUow) TenantRepository() contract.TenantRepository {
	return &fakeTenantRepo{store: u.store, uow: u}
}

func (u *fakeUow) DocumentRepository() contract.DocumentRepository {
	return &fakeDocumentRepo{store: u.store}
}

func (u *fakeUow) DocumentChunkRepository() contract.DocumentChunkRepository {
	return &fakeChunkRepo{store: u.store}
}

func (u *fakeUow) ConversationRepository() contract.ConversationRepository {
	return &fakeConversationRepo{store: u.store}
}

func (u *fakeUow) ConversationTurnRepository() contract.ConversationTurnRepository {
	return &fakeTurnRepo{store: u.store}
}

func (u *fakeUow) AppointmentRepository() contract.AppointmentRepository {
	return &fakeAppointmentRepo{store: u.store}
}

type fakeTenantRepo struct {
	store *memoryStore
	uow   *fakeUow
}

func (r *fakeTenantRepo) FindOneLocked(ctx context.Context, id uuid.UUID) (*entity.Tenant, error) {
	r.store.bookingMu.Lock()
	r.uow.tenantLocked = true
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, tenant := range r.store.tenants {
		if tenant.Id == id {
			return tenant, nil
		}
	}
	return nil, nil
}

func (r *fakeTenantRepo) Create(ctx context.Context, tenant *entity.Tenant) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.tenants = append(r.store.tenants, tenant)
	return nil
}

func (r *fakeTenantRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Tenant, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if len(r.store.tenants) == 0 {
		return nil, nil
	}
	return r.store.tenants[0], nil
}

func (r *fakeTenantRepo) FindServices(ctx context.Context, tenantId uuid.UUID) ([]*entity.Service, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return append([]*entity.Service(nil), r.store.services...), nil
}

func (r *fakeTenantRepo) FindBusinessHours(ctx context.Context, tenantId uuid.UUID) ([]*entity.BusinessHours, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return append([]*entity.BusinessHours(nil), r.store.hours...), nil
}

func (r *fakeTenantRepo) CreateService(ctx context.Context, service *entity.Service) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.services = append(r.store.services, service)
	return nil
}

func (r *fakeTenantRepo) CreateBusinessHours(ctx context.Context, hours *entity.BusinessHours) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.hours = append(r.store.hours, hours)
	return nil
}

type fakeDocumentRepo struct {
	store *memoryStore
}

func (r *fakeDocumentRepo) Create(ctx context.Context, document *entity.Document) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.documents = append(r.store.documents, document)
	return nil
}

func (r *fakeDocumentRepo) Update(ctx context.Context, document *entity.Document) error {
	return nil
}

func (r *fakeDocumentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	kept := r.store.documents[:0]
	for _, doc := range r.store.documents {
		if doc.Id != id {
			kept = append(kept, doc)
		}
	}
	r.store.documents = kept
	return nil
}

func (r *fakeDocumentRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Document, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, spec := range specs {
		if byId, ok := spec.(specification.ByID); ok {
			for _, doc := range r.store.documents {
				if doc.Id == byId.ID {
					return doc, nil
				}
			}
			return nil, nil
		}
	}
	if len(r.store.documents) == 0 {
		return nil, nil
	}
	return r.store.documents[0], nil
}

func (r *fakeDocumentRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Document, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return append([]*entity.Document(nil), r.store.documents...), nil
}

type fakeChunkRepo struct {
	store *memoryStore
}

func (r *fakeChunkRepo) CreateBulk(ctx context.Context, chunks []*entity.DocumentChunk) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.chunks = append(r.store.chunks, chunks...)
	return nil
}

func (r *fakeChunkRepo) DeleteByDocumentId(ctx context.Context, documentId uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	kept := r.store.chunks[:0]
	for _, chunk := range r.store.chunks {
		if chunk.DocumentId != documentId {
			kept = append(kept, chunk)
		}
	}
	r.store.chunks = kept
	return nil
}

func (r *fakeChunkRepo) CountByTenant(ctx context.Context, tenantId uuid.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.chunks)), nil
}

func (r *fakeChunkRepo) SearchSimilar(ctx context.Context, tenantId uuid.UUID, embedding []float32, limit int) ([]*entity.ScoredChunk, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	scored := make([]*entity.ScoredChunk, 0, len(r.store.chunks))
	for _, chunk := range r.store.chunks {
		if chunk.TenantId == tenantId {
			scored = append(scored, &entity.ScoredChunk{Chunk: chunk, Similarity: 1})
		}
		if len(scored) == limit {
			break
		}
	}
	return scored, nil
}

type fakeConversationRepo struct {
	store *memoryStore
}

func (r *fakeConversationRepo) Create(ctx context.Context, conversation *entity.Conversation) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.conversations = append(r.store.conversations, conversation)
	return nil
}

func (r *fakeConversationRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Conversation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, spec := range specs {
		if bySession, ok := spec.(specification.BySessionKey); ok {
			for _, conversation := range r.store.conversations {
				if conversation.SessionKey == bySession.SessionKey {
					return conversation, nil
				}
			}
			return nil, nil
		}
	}
	if len(r.store.conversations) == 0 {
		return nil, nil
	}
	return r.store.conversations[0], nil
}

func (r *fakeConversationRepo) FindOneLocked(ctx context.Context, sessionKey string) (*entity.Conversation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, conversation := range r.store.conversations {
		if conversation.SessionKey == sessionKey {
			return conversation, nil
		}
	}
	return nil, nil
}

type fakeTurnRepo struct {
	store *memoryStore
}

func (r *fakeTurnRepo) Create(ctx context.Context, turn *entity.ConversationTurn) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.turns = append(r.store.turns, turn)
	return nil
}

func (r *fakeTurnRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ConversationTurn, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, spec := range specs {
		if byConv, ok := spec.(specification.ByConversationID); ok {
			var turns []*entity.ConversationTurn
			for _, turn := range r.store.turns {
				if turn.ConversationId == byConv.ConversationID {
					turns = append(turns, turn)
				}
			}
			return turns, nil
		}
	}
	return append([]*entity.ConversationTurn(nil), r.store.turns...), nil
}

func (r *fakeTurnRepo) LastSequence(ctx context.Context, conversationId uuid.UUID) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	last := 0
	for _, turn := range r.store.turns {
		if turn.ConversationId == conversationId && turn.SequenceNumber > last {
			last = turn.SequenceNumber
		}
	}
	return last, nil
}

type fakeAppointmentRepo struct {
	store *memoryStore
}

func (r *fakeAppointmentRepo) Create(ctx context.Context, appointment *entity.Appointment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.appointments = append(r.store.appointments, appointment)
	return nil
}

func (r *fakeAppointmentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, appointment := range r.store.appointments {
		if appointment.Id == id {
			appointment.Status = status
		}
	}
	return nil
}

func (r *fakeAppointmentRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Appointment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, spec := range specs {
		if byId, ok := spec.(specification.ByID); ok {
			for _, appointment := range r.store.appointments {
				if appointment.Id == byId.ID {
					return appointment, nil
				}
			}
			return nil, nil
		}
	}
	if len(r.store.appointments) == 0 {
		return nil, nil
	}
	return r.store.appointments[0], nil
}

func (r *fakeAppointmentRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Appointment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	scheduled := make([]*entity.Appointment, 0, len(r.store.appointments))
	for _, appointment := range r.store.appointments {
		if appointment.Status == entity.AppointmentStatusScheduled {
			scheduled = append(scheduled, appointment)
		}
	}
	return scheduled, nil
}

func (r *fakeAppointmentRepo) FindScheduledForDayLocked(ctx context.Context, tenantId uuid.UUID, day time.Time) ([]*entity.Appointment, error) {
	return r.FindAll(ctx)
}

// fakePublisher records queued payloads.
type fakePublisher struct {
	mu       sync.Mutex
	payloads [][]byte
}

func (p *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payloads = append(p.payloads, payload)
	return nil
}

func (p *fakePublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.payloads)
}

// nopLogger satisfies logger.ILogger for tests.
type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func testSnapshot(tenantId uuid.UUID) *entity.TenantSnapshot {
	return &entity.TenantSnapshot{
		Tenant: &entity.Tenant{
			Id:         tenantId,
			ChatbotKey: "chatbot_test",
			Name:       "Bright Smile Dental",
			Industry:   "dental clinic",
		},
		Services: []*entity.Service{
			{Id: uuid.New(), TenantId: tenantId, Name: "Consultation", DurationMinutes: 30},
			{Id: uuid.New(), TenantId: tenantId, Name: "Teeth Cleaning", DurationMinutes: 60},
		},
		Hours: map[time.Weekday]*entity.BusinessHours{
			time.Monday: {TenantId: tenantId, Weekday: time.Monday, OpenMinute: 9 * 60, CloseMinute: 12 * 60},
		},
	}
}
