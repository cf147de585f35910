package storage

import (
	"sync"

	"textbook-chat-backend/internal/model"
)

// MemoryStore 进程内会话存储，本组件不做任何持久化
type MemoryStore struct {
	mu        sync.RWMutex
	sessionID string
	turns     []model.Turn
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		turns: make([]model.Turn, 0),
	}
}

func (m *MemoryStore) AppendTurn(turn model.Turn) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.turns = append(m.turns, turn)
}

// Turns 返回消息副本，调用方不会看到后续追加
func (m *MemoryStore) Turns() []model.Turn {
	m.mu.RLock()
	defer m.mu.RUnlock()

	turns := make([]model.Turn, len(m.turns))
	copy(turns, m.turns)
	return turns
}

func (m *MemoryStore) TurnCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.turns)
}

// Clear 清空消息，会话ID由服务端分配，保留不动
func (m *MemoryStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.turns = m.turns[:0]
}

func (m *MemoryStore) SessionID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.sessionID
}

// AdoptSessionID 仅在尚未持有会话ID时采纳，返回是否采纳成功
func (m *MemoryStore) AdoptSessionID(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sessionID != "" || id == "" {
		return false
	}
	m.sessionID = id
	return true
}
