package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/Puneeth067/UpLiftAI-DreamForge-sub000/internal/domain"
)

// Commit implements engine.Gateway. The draft snapshot is checked against
// the publication policy and, when allowed, written as the user's portfolio.
// The engine treats any returned error as a failed commit and keeps the
// draft for retry.
func (s *Service) Commit(ctx context.Context, userID string, draft domain.PortfolioDraft) (string, error) {
	input := map[string]interface{}{
		"user_id":      userID,
		"title":        draft.Title,
		"bio":          draft.Bio,
		"skills":       draft.Skills,
		"projects":     draft.Projects,
		"experience":   draft.Experience,
		"social_links": draft.SocialLinks,
	}
	decision, reason, err := s.policyEngine.Evaluate(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to evaluate publication policy: %w", err)
	}

	if session, serr := s.store.GetSessionByUser(ctx, userID); serr == nil && session != nil {
		payload := domain.PolicyDecisionPayload{Decision: decision, Reason: reason}
		if err := s.recordEvent(ctx, session.SessionID, domain.EventTypePolicyDecision, payload); err != nil {
			log.Printf("WARN: failed to record policy_decision event: %v", err)
		}
	}

	if decision != "allow" {
		return "", fmt.Errorf("publication blocked by policy: %s", reason)
	}

	now := time.Now()
	portfolio := &domain.Portfolio{
		PortfolioID: "pf_" + uuid.New().String()[:8],
		UserID:      userID,
		Title:       draft.Title,
		Bio:         draft.Bio,
		Skills:      draft.Skills,
		Projects:    draft.Projects,
		Experience:  draft.Experience,
		SocialLinks: draft.SocialLinks,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.UpsertPortfolio(ctx, portfolio); err != nil {
		return "", fmt.Errorf("failed to store portfolio: %w", err)
	}
	return portfolio.PortfolioID, nil
}
