package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Puneeth067/UpLiftAI-DreamForge-sub000/internal/config"
	"github.com/Puneeth067/UpLiftAI-DreamForge-sub000/internal/domain"
	"github.com/Puneeth067/UpLiftAI-DreamForge-sub000/internal/engine"
	"github.com/Puneeth067/UpLiftAI-DreamForge-sub000/internal/policy"
	store "github.com/Puneeth067/UpLiftAI-DreamForge-sub000/internal/repository"
	"github.com/Puneeth067/UpLiftAI-DreamForge-sub000/internal/service"
	"github.com/Puneeth067/UpLiftAI-DreamForge-sub000/internal/sessionstore"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	db, err := store.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	policyEngine, err := policy.NewEngine(context.Background(), policy.DefaultPolicy)
	if err != nil {
		t.Fatalf("failed to create policy engine: %v", err)
	}

	dialog, err := engine.LoadDialogConfig("")
	if err != nil {
		t.Fatalf("failed to load dialog config: %v", err)
	}

	cfg := &config.Config{CommitTimeout: 5 * time.Second}
	svc := service.New(db, sessionstore.NewMemoryStore(), policyEngine, dialog, cfg)
	return NewHandler(svc)
}

func runConversation(t *testing.T, h *Handler, userID string) {
	t.Helper()
	inputs := []string{
		"create portfolio",
		"I am a backend developer from Berlin who enjoys building small tools and distributed systems",
		"JS, React, Node",
		"MyApp|A full stack app built with react and node",
		"done",
		"done",
		"octocat",
		"tw_user",
		"li_user",
		"ig_user",
	}
	for _, in := range inputs {
		if _, err := h.service.ProcessChatMessage(context.Background(), domain.ChatRequest{UserID: userID, Content: in}); err != nil {
			t.Fatalf("ProcessChatMessage failed: %v", err)
		}
	}
}

func TestPostChatMessage(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t)

	body := `{"user_id":"u1","display_name":"Ada","content":"hello"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/chat/messages", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.PostChatMessage(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var reply domain.ChatReply
	if err := json.Unmarshal(rec.Body.Bytes(), &reply); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.Contains(reply.Response, "Ada") {
		t.Fatalf("expected greeting to address Ada, got %q", reply.Response)
	}
}

func TestPostChatMessageRequiresUserID(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t)

	body := `{"content":"hello"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/chat/messages", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.PostChatMessage(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetSessionMessages(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t)

	if _, err := h.service.ProcessChatMessage(context.Background(), domain.ChatRequest{UserID: "u1", Content: "hello"}); err != nil {
		t.Fatalf("ProcessChatMessage failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/sessions/u1/messages", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("user_id")
	c.SetParamValues("u1")

	if err := h.GetSessionMessages(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Messages []domain.Message `json:"messages"`
		HasMore  bool             `json:"has_more"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Messages) != 2 || resp.HasMore {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Messages[0].Role != "user" || resp.Messages[1].Role != "assistant" {
		t.Fatalf("unexpected roles: %+v", resp.Messages)
	}
}

func TestGetSessionMessagesPagination(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t)

	// One exchange yields exactly two messages (user + assistant).
	if _, err := h.service.ProcessChatMessage(context.Background(), domain.ChatRequest{UserID: "u1", Content: "hello"}); err != nil {
		t.Fatalf("ProcessChatMessage failed: %v", err)
	}

	getPage := func(limit string) (int, bool) {
		req := httptest.NewRequest(http.MethodGet, "/v1/sessions/u1/messages?limit="+limit, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("user_id")
		c.SetParamValues("u1")
		if err := h.GetSessionMessages(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var resp struct {
			Messages []domain.Message `json:"messages"`
			HasMore  bool             `json:"has_more"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		return len(resp.Messages), resp.HasMore
	}

	// Transcript length equal to the page size is not "more".
	if count, hasMore := getPage("2"); count != 2 || hasMore {
		t.Fatalf("limit=2: got %d messages, has_more=%v", count, hasMore)
	}
	if count, hasMore := getPage("1"); count != 1 || !hasMore {
		t.Fatalf("limit=1: got %d messages, has_more=%v", count, hasMore)
	}
}

func TestGetSessionEvents(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t)
	runConversation(t, h, "u1")

	req := httptest.NewRequest(http.MethodGet, "/v1/sessions/u1/events?types=commit_succeeded", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("user_id")
	c.SetParamValues("u1")

	if err := h.GetSessionEvents(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Events []domain.Event `json:"events"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Events) != 1 {
		t.Fatalf("expected 1 commit_succeeded event, got %d", len(resp.Events))
	}
}

func TestGetPortfolio(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t)
	runConversation(t, h, "u1")

	req := httptest.NewRequest(http.MethodGet, "/v1/portfolios/u1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("user_id")
	c.SetParamValues("u1")

	if err := h.GetPortfolio(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var portfolio domain.Portfolio
	if err := json.Unmarshal(rec.Body.Bytes(), &portfolio); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(portfolio.SocialLinks) != 4 || len(portfolio.Skills) != 3 {
		t.Fatalf("unexpected portfolio: %+v", portfolio)
	}
}

func TestGetPortfolioNotFound(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/portfolios/nobody", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("user_id")
	c.SetParamValues("nobody")

	if err := h.GetPortfolio(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Health(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
