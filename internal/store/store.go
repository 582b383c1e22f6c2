package store

import (
	"context"
	"sync"
)

// Persisted keys.
const (
	UserSpotsKey = "user_spots"
	UsernameKey  = "username"
)

// KV is the persistence contract: string-keyed blobs, full replace on
// every save. Missing keys are reported through ok, not an error.
type KV interface {
	Load(ctx context.Context, key string) (value []byte, ok bool, err error)
	Save(ctx context.Context, key string, value []byte) error
}

// Memory is an in-process KV used when neither Postgres nor Redis is
// available, and in tests.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{data: map[string][]byte{}}
}

func (m *Memory) Load(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Save(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}
