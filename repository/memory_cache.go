package repository

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryCache is an in-process CacheRepository used when no redis address is
// configured.
type MemoryCache struct {
	mu         sync.RWMutex
	data       map[string]memoryEntry
	maxEntries int
	now        func() time.Time
}

func NewMemoryCache(maxEntries int) *MemoryCache {
	return &MemoryCache{
		data:       make(map[string]memoryEntry),
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	entry, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return "", false
	}
	now := m.now()
	if entry.expired(now) {
		m.expire(key, now)
		return "", false
	}
	return entry.value, true
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// expire deletes key only if it is still expired under the write lock; a
// Set that landed after the read lock was released is kept.
func (m *MemoryCache) expire(key string, now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if entry, ok := m.data[key]; ok && entry.expired(now) {
		delete(m.data, key)
	}
}

func (m *MemoryCache) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.data[key]; !exists && m.maxEntries > 0 && len(m.data) >= m.maxEntries {
		m.evictLocked()
	}

	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = m.now().Add(ttl)
	}
	m.data[key] = entry
	return nil
}

// evictLocked drops expired entries, or an arbitrary one if none expired.
func (m *MemoryCache) evictLocked() {
	now := m.now()
	evicted := false
	for k, e := range m.data {
		if e.expired(now) {
			delete(m.data, k)
			evicted = true
		}
	}
	if evicted {
		return
	}
	for k := range m.data {
		delete(m.data, k)
		return
	}
}

func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
