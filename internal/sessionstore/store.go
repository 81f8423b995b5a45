// Package sessionstore persists per-conversation engine state between
// messages. The in-memory backend is the default; Redis is available for
// multi-instance deployments.
package sessionstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/Puneeth067/UpLiftAI-DreamForge-sub000/internal/engine"
)

// Store holds conversation state keyed by user id. Get returns (nil, nil)
// when no state exists for the key.
type Store interface {
	Get(ctx context.Context, userID string) (*engine.State, error)
	Put(ctx context.Context, userID string, st *engine.State) error
	Delete(ctx context.Context, userID string) error
}

// MemoryStore is a process-local Store. State is stored as JSON snapshots so
// callers never share mutable draft structures.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Get(ctx context.Context, userID string) (*engine.State, error) {
	s.mu.RLock()
	raw, ok := s.data[userID]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	var st engine.State
	if err := json.Unmarshal(raw, &st); err != nil {
		return nil, fmt.Errorf("failed to decode session state: %w", err)
	}
	return &st, nil
}

func (s *MemoryStore) Put(ctx context.Context, userID string, st *engine.State) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to encode session state: %w", err)
	}
	s.mu.Lock()
	s.data[userID] = raw
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, userID string) error {
	s.mu.Lock()
	delete(s.data, userID)
	s.mu.Unlock()
	return nil
}
