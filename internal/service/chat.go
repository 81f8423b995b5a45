package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Puneeth067/UpLiftAI-DreamForge-sub000/internal/domain"
	"github.com/Puneeth067/UpLiftAI-DreamForge-sub000/internal/engine"
)

// ProcessChatMessage runs one inbound message through the conversation
// engine: it loads the engine state, applies the message, persists the
// transcript and trace events, and stores the updated state.
func (s *Service) ProcessChatMessage(ctx context.Context, req domain.ChatRequest) (*domain.ChatReply, error) {
	if req.UserID == "" {
		return nil, fmt.Errorf("user_id is required")
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, fmt.Errorf("content is required")
	}

	if !s.tryAcquire(req.UserID) {
		// A previous message for this conversation is still being
		// processed, most likely a commit in flight.
		return &domain.ChatReply{Response: s.dialog.Responses.Busy}, nil
	}
	defer s.release(req.UserID)

	session, err := s.getOrCreateSession(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}

	state, err := s.sessions.Get(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation state: %w", err)
	}
	if state == nil {
		state = engine.NewState()
	}

	userMsg := &domain.Message{
		MessageID: "msg_" + uuid.New().String()[:8],
		SessionID: session.SessionID,
		Role:      "user",
		Content:   req.Content,
		CreatedAt: time.Now(),
	}
	if err := s.store.CreateMessage(ctx, userMsg); err != nil {
		log.Printf("ERROR: failed to save user message: %v", err)
	}

	reply, traces := s.engine.ProcessMessage(ctx, state, req)

	for _, tr := range traces {
		if err := s.recordEvent(ctx, session.SessionID, tr.Type, tr.Payload); err != nil {
			log.Printf("WARN: failed to record %s event: %v", tr.Type, err)
		}
	}

	if err := s.saveAssistantMessage(ctx, session.SessionID, &reply); err != nil {
		log.Printf("ERROR: failed to save assistant message: %v", err)
	}

	if reply.Completed {
		if err := s.sessions.Delete(ctx, req.UserID); err != nil {
			log.Printf("WARN: failed to clear conversation state: %v", err)
		}
	} else if err := s.sessions.Put(ctx, req.UserID, state); err != nil {
		return nil, fmt.Errorf("failed to store conversation state: %w", err)
	}

	return &reply, nil
}

// getOrCreateSession finds the user's session or starts a new one.
func (s *Service) getOrCreateSession(ctx context.Context, req domain.ChatRequest) (*domain.Session, error) {
	session, err := s.store.GetSessionByUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if session != nil {
		return session, nil
	}

	session = &domain.Session{
		SessionID: "ses_" + uuid.New().String()[:8],
		UserID:    req.UserID,
		CreatedAt: time.Now(),
	}
	if req.DisplayName != "" {
		metadata, _ := json.Marshal(map[string]string{"display_name": req.DisplayName})
		session.Metadata = metadata
	}
	if err := s.store.CreateSession(ctx, session); err != nil {
		return nil, err
	}
	if err := s.recordEvent(ctx, session.SessionID, domain.EventTypeSessionStarted, map[string]string{"user_id": req.UserID}); err != nil {
		log.Printf("WARN: failed to record session_started event: %v", err)
	}
	return session, nil
}

// saveAssistantMessage stores the engine's reply in the transcript. Prompt
// and suggestions travel in the message metadata so the chat UI can rebuild
// quick-reply chips from history.
func (s *Service) saveAssistantMessage(ctx context.Context, sessionID string, reply *domain.ChatReply) error {
	metadata, _ := json.Marshal(struct {
		Prompt      string   `json:"prompt,omitempty"`
		Suggestions []string `json:"suggestions,omitempty"`
		Completed   bool     `json:"completed,omitempty"`
	}{reply.Prompt, reply.Suggestions, reply.Completed})

	msg := &domain.Message{
		MessageID: "msg_" + uuid.New().String()[:8],
		SessionID: sessionID,
		Role:      "assistant",
		Content:   reply.Response,
		CreatedAt: time.Now(),
		Metadata:  metadata,
	}
	return s.store.CreateMessage(ctx, msg)
}
