package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/campuscloset/marketplace/constant"
	"github.com/campuscloset/marketplace/model"
)

// MemoryStore is an in-process Store for tests and local runs. It honors
// the same record semantics as the durable store, including TTL expiry.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	rec       model.RateLimitRecord
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry), now: time.Now}
}

func NewMemoryStoreWithClock(now func() time.Time) *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry), now: now}
}

func memoryKey(identifier string, limitType constant.RateLimitType) string {
	return string(limitType) + ":" + identifier
}

func (s *MemoryStore) Get(_ context.Context, identifier string, limitType constant.RateLimitType) (*model.RateLimitRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := memoryKey(identifier, limitType)
	entry, ok := s.entries[key]
	if !ok {
		return nil, nil
	}
	if !s.now().Before(entry.expiresAt) {
		delete(s.entries, key)
		return nil, nil
	}
	rec := entry.rec
	return &rec, nil
}

func (s *MemoryStore) Put(_ context.Context, identifier string, limitType constant.RateLimitType, rec *model.RateLimitRecord, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[memoryKey(identifier, limitType)] = memoryEntry{
		rec:       *rec,
		expiresAt: s.now().Add(ttl),
	}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, identifier string, limitType constant.RateLimitType) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, memoryKey(identifier, limitType))
	return nil
}
