package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Puneeth067/UpLiftAI-DreamForge-sub000/internal/domain"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStoreSessionAndMessages(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	session := &domain.Session{
		SessionID: "s1",
		UserID:    "u1",
		CreatedAt: time.Now(),
		Metadata:  json.RawMessage(`{"display_name":"Ada"}`),
	}
	if err := store.CreateSession(ctx, session); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	gotSession, err := store.GetSession(ctx, "s1")
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if gotSession == nil || gotSession.UserID != "u1" {
		t.Fatalf("unexpected session: %+v", gotSession)
	}

	byUser, err := store.GetSessionByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("GetSessionByUser failed: %v", err)
	}
	if byUser == nil || byUser.SessionID != "s1" {
		t.Fatalf("unexpected session: %+v", byUser)
	}

	missing, err := store.GetSessionByUser(ctx, "nobody")
	if err != nil {
		t.Fatalf("GetSessionByUser failed: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil session, got %+v", missing)
	}

	msg := &domain.Message{
		MessageID: "m1",
		SessionID: "s1",
		Role:      "user",
		Content:   "create portfolio",
		CreatedAt: time.Now(),
	}
	if err := store.CreateMessage(ctx, msg); err != nil {
		t.Fatalf("CreateMessage failed: %v", err)
	}

	messages, err := store.GetMessages(ctx, "s1", 10, "")
	if err != nil {
		t.Fatalf("GetMessages failed: %v", err)
	}
	if len(messages) != 1 || messages[0].Content != "create portfolio" {
		t.Fatalf("unexpected messages: %+v", messages)
	}
}

func TestSQLiteStoreEvents(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	session := &domain.Session{SessionID: "s1", UserID: "u1", CreatedAt: time.Now()}
	if err := store.CreateSession(ctx, session); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	base := time.Now().UnixMilli()
	events := []domain.Event{
		{EventID: "e1", SessionID: "s1", Ts: base, Type: domain.EventTypeSessionStarted},
		{EventID: "e2", SessionID: "s1", Ts: base + 1, Type: domain.EventTypeStepAdvanced, Payload: json.RawMessage(`{"from":"none","to":"bio"}`)},
		{EventID: "e3", SessionID: "s1", Ts: base + 2, Type: domain.EventTypeItemAdded, Payload: json.RawMessage(`{"step":"projects","count":1}`)},
	}
	for i := range events {
		if err := store.CreateEvent(ctx, &events[i]); err != nil {
			t.Fatalf("CreateEvent failed: %v", err)
		}
	}

	got, err := store.GetEvents(ctx, "s1", 0, nil, 10)
	if err != nil {
		t.Fatalf("GetEvents failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 events, got %d", len(got))
	}
	if got[0].Type != domain.EventTypeSessionStarted {
		t.Fatalf("expected events ordered by ts, got %+v", got)
	}

	filtered, err := store.GetEvents(ctx, "s1", base, []string{string(domain.EventTypeItemAdded)}, 10)
	if err != nil {
		t.Fatalf("GetEvents failed: %v", err)
	}
	if len(filtered) != 1 || filtered[0].EventID != "e3" {
		t.Fatalf("unexpected filtered events: %+v", filtered)
	}
}

func TestSQLiteStorePortfolioUpsert(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	now := time.Now()
	portfolio := &domain.Portfolio{
		PortfolioID: "pf_1",
		UserID:      "u1",
		Title:       "Ada's Portfolio",
		Bio:         "a bio long enough to have passed validation upstream",
		Skills:      []string{"JS", "React", "Node"},
		Projects: []domain.Project{
			{Title: "MyApp", Description: "A full stack app built with react and node", Image: "/assets/project-placeholder.png"},
		},
		Experience: []domain.Experience{},
		SocialLinks: map[domain.Platform]string{
			domain.PlatformGitHub:    "octocat",
			domain.PlatformTwitter:   "tw_user",
			domain.PlatformLinkedIn:  "li_user",
			domain.PlatformInstagram: "ig_user",
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := store.UpsertPortfolio(ctx, portfolio); err != nil {
		t.Fatalf("UpsertPortfolio failed: %v", err)
	}

	got, err := store.GetPortfolioByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("GetPortfolioByUser failed: %v", err)
	}
	if got == nil || got.PortfolioID != "pf_1" {
		t.Fatalf("unexpected portfolio: %+v", got)
	}
	if len(got.Skills) != 3 || len(got.Projects) != 1 || len(got.SocialLinks) != 4 {
		t.Fatalf("collections did not round-trip: %+v", got)
	}

	// A second commit for the same user replaces the record.
	portfolio.PortfolioID = "pf_2"
	portfolio.Title = "Ada's New Portfolio"
	if err := store.UpsertPortfolio(ctx, portfolio); err != nil {
		t.Fatalf("UpsertPortfolio failed: %v", err)
	}
	got, err = store.GetPortfolioByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("GetPortfolioByUser failed: %v", err)
	}
	if got.Title != "Ada's New Portfolio" {
		t.Fatalf("expected updated title, got %q", got.Title)
	}
	if got.PortfolioID != "pf_1" {
		t.Fatalf("expected original portfolio id to be kept, got %q", got.PortfolioID)
	}

	missing, err := store.GetPortfolioByUser(ctx, "nobody")
	if err != nil {
		t.Fatalf("GetPortfolioByUser failed: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil portfolio, got %+v", missing)
	}
}
