package service

import (
	"context"
	"fmt"

	"github.com/Puneeth067/UpLiftAI-DreamForge-sub000/internal/domain"
)

// GetSessionMessages returns the transcript for a user's session. A nil
// slice with no error means the user has no session yet.
func (s *Service) GetSessionMessages(ctx context.Context, userID string, limit int, before string) ([]domain.Message, error) {
	session, err := s.store.GetSessionByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, nil
	}
	messages, err := s.store.GetMessages(ctx, session.SessionID, limit, before)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}
	return messages, nil
}

// GetSessionEvents returns the trace events for a user's session.
func (s *Service) GetSessionEvents(ctx context.Context, userID string, afterTs int64, types []string, limit int) ([]domain.Event, error) {
	session, err := s.store.GetSessionByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, nil
	}
	events, err := s.store.GetEvents(ctx, session.SessionID, afterTs, types, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	return events, nil
}

// GetPortfolio returns the committed portfolio for a user, or nil when none
// has been published.
func (s *Service) GetPortfolio(ctx context.Context, userID string) (*domain.Portfolio, error) {
	portfolio, err := s.store.GetPortfolioByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get portfolio: %w", err)
	}
	return portfolio, nil
}
