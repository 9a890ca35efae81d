package repository

import (
	"context"
	"errors"
	"time"
)

type MockCache struct {
	Data     map[string]string
	SetCalls int
	FailSet  bool
}

func NewMockCache() *MockCache {
	return &MockCache{
		Data: make(map[string]string),
	}
}

func (m *MockCache) Get(_ context.Context, key string) (string, bool) {
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(_ context.Context, key string, value string, _ time.Duration) error {
	m.SetCalls++
	if m.FailSet {
		return errors.New("cache unavailable")
	}
	m.Data[key] = value
	return nil
}
