package storage

import (
	"testing"
	"time"

	"textbook-chat-backend/internal/model"
)

func TestMemoryStoreAppendAndTurns(t *testing.T) {
	store := NewMemoryStore()

	store.AppendTurn(model.Turn{ID: "1", Role: model.RoleUser, Content: "hello", Timestamp: time.Now()})
	store.AppendTurn(model.Turn{ID: "2", Role: model.RoleAssistant, Content: "Hi there", Timestamp: time.Now()})

	if store.TurnCount() != 2 {
		t.Fatalf("expected 2 turns, got %d", store.TurnCount())
	}

	turns := store.Turns()
	if turns[0].ID != "1" || turns[1].ID != "2" {
		t.Errorf("turns out of order: %v, %v", turns[0].ID, turns[1].ID)
	}
}

// Turns 返回的切片是副本，后续追加不可见
func TestMemoryStoreTurnsSnapshot(t *testing.T) {
	store := NewMemoryStore()
	store.AppendTurn(model.Turn{ID: "1"})

	snapshot := store.Turns()
	store.AppendTurn(model.Turn{ID: "2"})

	if len(snapshot) != 1 {
		t.Errorf("snapshot grew after append: %d", len(snapshot))
	}
}

func TestMemoryStoreClearKeepsSessionID(t *testing.T) {
	store := NewMemoryStore()
	store.AdoptSessionID("sess-1")
	store.AppendTurn(model.Turn{ID: "1"})

	store.Clear()

	if store.TurnCount() != 0 {
		t.Errorf("expected empty store after clear, got %d turns", store.TurnCount())
	}
	if store.SessionID() != "sess-1" {
		t.Errorf("session id should survive clear, got %q", store.SessionID())
	}
}

func TestMemoryStoreAdoptSessionID(t *testing.T) {
	store := NewMemoryStore()

	if store.AdoptSessionID("") {
		t.Error("empty id should not be adopted")
	}
	if !store.AdoptSessionID("sess-1") {
		t.Error("first non-empty id should be adopted")
	}
	if store.AdoptSessionID("sess-2") {
		t.Error("second id should be rejected")
	}
	if store.SessionID() != "sess-1" {
		t.Errorf("expected sess-1, got %q", store.SessionID())
	}
}
