// Package store persists conversation history, trace events, and committed
// portfolios.
package store

import (
	"context"

	"github.com/Puneeth067/UpLiftAI-DreamForge-sub000/internal/domain"
)

// Store is the persistence interface for the portfolio engine service.
type Store interface {
	// Sessions
	CreateSession(ctx context.Context, session *domain.Session) error
	GetSession(ctx context.Context, sessionID string) (*domain.Session, error)
	GetSessionByUser(ctx context.Context, userID string) (*domain.Session, error)

	// Messages
	CreateMessage(ctx context.Context, message *domain.Message) error
	GetMessages(ctx context.Context, sessionID string, limit int, before string) ([]domain.Message, error)

	// Events
	CreateEvent(ctx context.Context, event *domain.Event) error
	GetEvents(ctx context.Context, sessionID string, afterTs int64, types []string, limit int) ([]domain.Event, error)

	// Portfolios
	UpsertPortfolio(ctx context.Context, portfolio *domain.Portfolio) error
	GetPortfolioByUser(ctx context.Context, userID string) (*domain.Portfolio, error)

	Close() error
}
