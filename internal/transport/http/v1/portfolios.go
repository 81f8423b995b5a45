package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetPortfolio retrieves the committed portfolio for a user.
// GET /v1/portfolios/:user_id
func (h *Handler) GetPortfolio(c echo.Context) error {
	userID := c.Param("user_id")

	portfolio, err := h.service.GetPortfolio(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if portfolio == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "portfolio not found"})
	}
	return c.JSON(http.StatusOK, portfolio)
}
