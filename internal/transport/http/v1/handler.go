// Package v1 provides the public HTTP API for the portfolio engine.
package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Puneeth067/UpLiftAI-DreamForge-sub000/internal/service"
)

// Handler handles HTTP requests.
type Handler struct {
	service *service.Service
}

// NewHandler creates a new handler.
func NewHandler(service *service.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Conversation API
	e.POST("/v1/chat/messages", h.PostChatMessage)

	// Session history API
	e.GET("/v1/sessions/:user_id/messages", h.GetSessionMessages)
	e.GET("/v1/sessions/:user_id/events", h.GetSessionEvents)

	// Portfolio API
	e.GET("/v1/portfolios/:user_id", h.GetPortfolio)

	e.GET("/health", h.Health)
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": "0.1.0",
	})
}
