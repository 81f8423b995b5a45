package v1

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// GetSessionMessages retrieves the transcript for a user's session.
// GET /v1/sessions/:user_id/messages
func (h *Handler) GetSessionMessages(c echo.Context) error {
	userID := c.Param("user_id")
	limit := 50
	if l := c.QueryParam("limit"); l != "" {
		if val, err := strconv.Atoi(l); err == nil {
			limit = val
		}
	}
	before := c.QueryParam("before")

	ctx := c.Request().Context()

	// Fetch one past the page size so has_more is exact.
	fetchLimit := 0
	if limit > 0 {
		fetchLimit = limit + 1
	}
	messages, err := h.service.GetSessionMessages(ctx, userID, fetchLimit, before)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	hasMore := false
	if limit > 0 && len(messages) > limit {
		hasMore = true
		messages = messages[:limit]
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"messages": messages,
		"has_more": hasMore,
	})
}

// GetSessionEvents retrieves the trace events for a user's session.
// GET /v1/sessions/:user_id/events
func (h *Handler) GetSessionEvents(c echo.Context) error {
	userID := c.Param("user_id")
	limit := 100
	if l := c.QueryParam("limit"); l != "" {
		if val, err := strconv.Atoi(l); err == nil {
			limit = val
		}
	}
	afterTs := int64(0)
	if t := c.QueryParam("after_ts"); t != "" {
		if val, err := strconv.ParseInt(t, 10, 64); err == nil {
			afterTs = val
		}
	}
	var types []string
	if raw := c.QueryParam("types"); raw != "" {
		types = strings.Split(raw, ",")
	}

	ctx := c.Request().Context()

	events, err := h.service.GetSessionEvents(ctx, userID, afterTs, types, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"events": events,
	})
}
