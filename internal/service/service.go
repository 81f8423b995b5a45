package service

import (
	"sync"

	"github.com/Puneeth067/UpLiftAI-DreamForge-sub000/internal/config"
	"github.com/Puneeth067/UpLiftAI-DreamForge-sub000/internal/engine"
	"github.com/Puneeth067/UpLiftAI-DreamForge-sub000/internal/policy"
	store "github.com/Puneeth067/UpLiftAI-DreamForge-sub000/internal/repository"
	"github.com/Puneeth067/UpLiftAI-DreamForge-sub000/internal/sessionstore"
)

// Service wires the conversation engine to persistence, the session store,
// and the publication policy. It implements engine.Gateway so commits flow
// back through the policy gate into the portfolio table.
type Service struct {
	store        store.Store
	sessions     sessionstore.Store
	policyEngine *policy.Engine
	dialog       *engine.DialogConfig
	config       *config.Config
	engine       *engine.Engine

	// Serializes message processing per user. No two messages for one
	// conversation are ever processed concurrently.
	mu       sync.Mutex
	inFlight map[string]bool
}

func New(st store.Store, sessions sessionstore.Store, policyEngine *policy.Engine, dialog *engine.DialogConfig, cfg *config.Config) *Service {
	s := &Service{
		store:        st,
		sessions:     sessions,
		policyEngine: policyEngine,
		dialog:       dialog,
		config:       cfg,
		inFlight:     make(map[string]bool),
	}
	s.engine = engine.New(dialog, s, cfg.CommitTimeout)
	return s
}

// tryAcquire marks a user's conversation as busy. Returns false when a
// message for that user is already being processed.
func (s *Service) tryAcquire(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[userID] {
		return false
	}
	s.inFlight[userID] = true
	return true
}

func (s *Service) release(userID string) {
	s.mu.Lock()
	delete(s.inFlight, userID)
	s.mu.Unlock()
}
