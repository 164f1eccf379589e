package cache

import (
	"sync"
	"time"
)

// Cache is a key/value store with per-entry TTL. Implementations must be
// safe for concurrent use.
type Cache interface {
	Get(key string) (any, bool)
	Set(key string, value any, ttl time.Duration)
	Delete(key string)
}

type entry struct {
	value     any
	expiresAt time.Time
}

// Memory is an in-process Cache. Expired entries are dropped lazily on
// the next Get for their key.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (m *Memory) Get(key string) (any, bool) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if m.now().After(e.expiresAt) {
		m.Delete(key)
		return nil, false
	}
	return e.value, true
}

func (m *Memory) Set(key string, value any, ttl time.Duration) {
	m.mu.Lock()
	m.entries[key] = entry{
		value:     value,
		expiresAt: m.now().Add(ttl),
	}
	m.mu.Unlock()
}

func (m *Memory) Delete(key string) {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
}

// Len reports the number of entries currently held, expired or not.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
