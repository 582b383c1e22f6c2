package session

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/kendea1221/Hiromap/internal/store"
)

// Service holds the single current username. Login and Logout mirror
// the name to the store so a restart resumes the last session; while no
// name is set every mutating social operation is disabled.
type Service struct {
	mu       sync.RWMutex
	kv       store.KV
	username string
}

func New(ctx context.Context, kv store.KV) *Service {
	s := &Service{kv: kv}
	if v, ok, err := kv.Load(ctx, store.UsernameKey); err != nil {
		log.Printf("load username: %v", err)
	} else if ok {
		s.username = strings.TrimSpace(string(v))
	}
	return s
}

// Login sets the current username. Blank names are rejected and leave
// the session unchanged.
func (s *Service) Login(ctx context.Context, name string) (string, bool) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", false
	}
	s.mu.Lock()
	s.username = trimmed
	s.mu.Unlock()

	if err := s.kv.Save(ctx, store.UsernameKey, []byte(trimmed)); err != nil {
		log.Printf("save username: %v", err)
	}
	return trimmed, true
}

func (s *Service) Logout(ctx context.Context) {
	s.mu.Lock()
	s.username = ""
	s.mu.Unlock()

	if err := s.kv.Save(ctx, store.UsernameKey, nil); err != nil {
		log.Printf("clear username: %v", err)
	}
}

// Current returns the active username, empty when logged out.
func (s *Service) Current() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.username
}
