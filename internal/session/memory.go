package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore 进程内会话存储
// 过期条目在读取时惰性清理，不跑后台协程
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]memoryEntry
}

type memoryEntry struct {
	data      Data
	expiresAt time.Time
}

// NewMemoryStore 创建内存会话存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Get(_ context.Context, id string) (*Data, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.sessions, id)
		return nil, ErrNotFound
	}

	data := entry.data
	return &data, nil
}

func (s *MemoryStore) Save(_ context.Context, id string, data *Data, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[id] = memoryEntry{
		data:      *data,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}
