package http

import (
	"net/http"
	"strconv"

	"github.com/MEMAtest/horizon-scanner-backend/internal/api/service"
	"github.com/MEMAtest/horizon-scanner-backend/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AlertHandler handles HTTP requests for regulatory alerts.
type AlertHandler struct {
	alertService service.AlertService
	logger       *logger.Logger
}

// NewAlertHandler creates a new AlertHandler.
func NewAlertHandler(alertService service.AlertService, logger *logger.Logger) *AlertHandler {
	return &AlertHandler{alertService: alertService, logger: logger}
}

// RegisterRoutes registers the alert routes to the Echo group.
func (h *AlertHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetAlerts)
	g.POST("/:id/read", h.MarkRead)
}

// GetAlerts godoc
// @Summary List alerts for a firm profile
// @Tags alerts
// @Produce  json
// @Param   firm_profile_id  query    int  true     "Firm profile ID"
// @Param   unread_only      query    bool false    "Only unread alerts"
// @Success 200 {array} dto.AlertResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /alerts [get]
func (h *AlertHandler) GetAlerts(c echo.Context) error {
	profileID, err := strconv.ParseUint(c.QueryParam("firm_profile_id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "firm_profile_id is required"})
	}
	unreadOnly, _ := strconv.ParseBool(c.QueryParam("unread_only"))

	resp, err := h.alertService.GetAlerts(c.Request().Context(), uint(profileID), unreadOnly)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch alerts"})
	}
	return c.JSON(http.StatusOK, resp)
}

// MarkRead godoc
// @Summary Mark an alert as read
// @Tags alerts
// @Produce  json
// @Param   id  path    int true    "Alert ID"
// @Success 204 {object} nil
// @Failure 500 {object} dto.ErrorResponse
// @Router /alerts/{id}/read [post]
func (h *AlertHandler) MarkRead(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid alert ID"})
	}

	if err := h.alertService.MarkRead(c.Request().Context(), uint(id)); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to mark alert read"})
	}
	return c.NoContent(http.StatusNoContent)
}
