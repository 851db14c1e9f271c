package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"bizchat-be/internal/entity"

	"github.com/google/uuid"
)

func TestAppendAssignsMonotonicSequences(t *testing.T) {
	factory := newFakeFactory()
	svc := NewConversationService(factory)
	tenantId := uuid.New()

	roles := []string{
		entity.ConversationRoleUser,
		entity.ConversationRoleAssistant,
		entity.ConversationRoleUser,
	}
	for i, role := range roles {
		turn, err := svc.Append(context.Background(), tenantId, "sess-1", role, fmt.Sprintf("message %d", i))
		if err != nil {
			t.Fatalf("Append %d returned error: %v", i, err)
		}
		if turn.SequenceNumber != i+1 {
			t.Errorf("turn %d sequence = %d, want %d", i, turn.SequenceNumber, i+1)
		}
	}

	if len(factory.store.conversations) != 1 {
		t.Errorf("created %d conversations, want 1 reused across turns", len(factory.store.conversations))
	}
}

func TestAppendSeparateSessionsStartAtOne(t *testing.T) {
	factory := newFakeFactory()
	svc := NewConversationService(factory)
	tenantId := uuid.New()

	first, err := svc.Append(context.Background(), tenantId, "sess-1", entity.ConversationRoleUser, "hi")
	if err != nil {
		t.Fatalf("Append returned error: %v", err)
	}
	second, err := svc.Append(context.Background(), tenantId, "sess-2", entity.ConversationRoleUser, "hello")
	if err != nil {
		t.Fatalf("Append returned error: %v", err)
	}
	if first.SequenceNumber != 1 || second.SequenceNumber != 1 {
		t.Errorf("sequences = %d and %d, want both 1", first.SequenceNumber, second.SequenceNumber)
	}
	if first.ConversationId == second.ConversationId {
		t.Error("sessions share a conversation, want one per session key")
	}
}

func TestHistoryReturnsOnlyTheSessionsTurns(t *testing.T) {
	factory := newFakeFactory()
	svc := NewConversationService(factory)
	tenantId := uuid.New()

	for i, content := range []string{"hi", "hello", "anything else?"} {
		role := entity.ConversationRoleUser
		if i%2 == 1 {
			role = entity.ConversationRoleAssistant
		}
		if _, err := svc.Append(context.Background(), tenantId, "sess-1", role, content); err != nil {
			t.Fatalf("Append returned error: %v", err)
		}
	}
	if _, err := svc.Append(context.Background(), tenantId, "sess-2", entity.ConversationRoleUser, "other session"); err != nil {
		t.Fatalf("Append returned error: %v", err)
	}

	res, err := svc.History(context.Background(), tenantId, "sess-1")
	if err != nil {
		t.Fatalf("History returned error: %v", err)
	}
	if res.SessionKey != "sess-1" {
		t.Errorf("session key = %q", res.SessionKey)
	}
	if len(res.Turns) != 3 {
		t.Fatalf("history has %d turns, want 3", len(res.Turns))
	}
	for i, turn := range res.Turns {
		if turn.Sequence != i+1 {
			t.Errorf("turn %d sequence = %d, want %d", i, turn.Sequence, i+1)
		}
		if turn.Content == "other session" {
			t.Error("history leaked a turn from another session")
		}
	}
}

func TestHistoryUnknownSessionIsEmpty(t *testing.T) {
	factory := newFakeFactory()
	svc := NewConversationService(factory)

	res, err := svc.History(context.Background(), uuid.New(), "sess-none")
	if err != nil {
		t.Fatalf("History returned error: %v", err)
	}
	if len(res.Turns) != 0 {
		t.Errorf("history has %d turns, want none for an unknown session", len(res.Turns))
	}
}

func TestAppendConcurrentNeverRepeatsSequence(t *testing.T) {
	factory := newFakeFactory()
	svc := NewConversationService(factory)
	tenantId := uuid.New()

	const writers = 20
	var wg sync.WaitGroup
	seqs := make(chan int, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			turn, err := svc.Append(context.Background(), tenantId, "sess-busy", entity.ConversationRoleUser, fmt.Sprintf("message %d", i))
			if err != nil {
				t.Errorf("Append returned error: %v", err)
				return
			}
			seqs <- turn.SequenceNumber
		}(i)
	}
	wg.Wait()
	close(seqs)

	seen := make(map[int]bool, writers)
	for seq := range seqs {
		if seen[seq] {
			t.Errorf("sequence %d assigned twice", seq)
		}
		seen[seq] = true
	}
	for i := 1; i <= writers; i++ {
		if !seen[i] {
			t.Errorf("sequence %d never assigned", i)
		}
	}
}
