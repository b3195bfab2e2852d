package http

import (
	"net/http"
	"strconv"

	"github.com/MEMAtest/horizon-scanner-backend/internal/api/dto"
	"github.com/MEMAtest/horizon-scanner-backend/internal/api/service"
	"github.com/MEMAtest/horizon-scanner-backend/pkg/logger"

	"github.com/labstack/echo/v4"
)

// UpdateHandler handles HTTP requests for regulatory updates.
type UpdateHandler struct {
	updateService service.UpdateService
	logger        *logger.Logger
}

// NewUpdateHandler creates a new UpdateHandler.
func NewUpdateHandler(updateService service.UpdateService, logger *logger.Logger) *UpdateHandler {
	return &UpdateHandler{updateService: updateService, logger: logger}
}

// RegisterRoutes registers the update routes to the Echo group.
func (h *UpdateHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetUpdates)
	g.GET("/:id", h.GetUpdateByID)
}

// GetUpdates godoc
// @Summary List regulatory updates
// @Description Paginated fetch with authority, sector, impact, urgency, search and date-range filters
// @Tags updates
// @Produce  json
// @Param   authority  query    string false    "Authority filter"
// @Param   sector     query    string false    "Sector filter"
// @Param   impact     query    string false    "Impact level filter"
// @Param   urgency    query    string false    "Urgency filter"
// @Param   search     query    string false    "Free text search"
// @Param   limit      query    int    false    "Page size"
// @Param   offset     query    int    false    "Page offset"
// @Success 200 {object} service.UpdatePage
// @Failure 500 {object} dto.ErrorResponse
// @Router /updates [get]
func (h *UpdateHandler) GetUpdates(c echo.Context) error {
	var filter dto.UpdateFilter
	if err := c.Bind(&filter); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid filter parameters"})
	}

	page, err := h.updateService.GetUpdates(c.Request().Context(), filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch updates"})
	}
	return c.JSON(http.StatusOK, page)
}

// GetUpdateByID godoc
// @Summary Get a regulatory update by ID
// @Tags updates
// @Produce  json
// @Param   id  path    int true    "Update ID"
// @Success 200 {object} entity.RegulatoryUpdate
// @Failure 404 {object} dto.ErrorResponse
// @Router /updates/{id} [get]
func (h *UpdateHandler) GetUpdateByID(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid update ID"})
	}

	update, err := h.updateService.GetUpdateByID(c.Request().Context(), uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Update not found"})
	}
	return c.JSON(http.StatusOK, update)
}
