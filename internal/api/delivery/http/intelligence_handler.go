package http

import (
	"net/http"

	"github.com/MEMAtest/horizon-scanner-backend/internal/api/dto"
	"github.com/MEMAtest/horizon-scanner-backend/internal/api/service"
	"github.com/MEMAtest/horizon-scanner-backend/pkg/logger"

	"github.com/labstack/echo/v4"
)

// IntelligenceHandler serves the personalized intelligence endpoint.
type IntelligenceHandler struct {
	intelligenceService service.IntelligenceService
	logger              *logger.Logger
}

// NewIntelligenceHandler creates a new IntelligenceHandler.
func NewIntelligenceHandler(intelligenceService service.IntelligenceService, logger *logger.Logger) *IntelligenceHandler {
	return &IntelligenceHandler{intelligenceService: intelligenceService, logger: logger}
}

// RegisterRoutes registers the intelligence route to the Echo group.
func (h *IntelligenceHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.BuildIntelligence)
}

// BuildIntelligence godoc
// @Summary Run a personalized scoring pass
// @Description Scores recent regulatory updates against a firm profile and returns the relevant updates plus derived insights
// @Tags intelligence
// @Accept  json
// @Produce  json
// @Param   request  body    dto.IntelligenceRequest   true    "Profile reference or inline profile"
// @Success 200 {object} scoring.IntelligenceBundle
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /intelligence [post]
func (h *IntelligenceHandler) BuildIntelligence(c echo.Context) error {
	var req dto.IntelligenceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	bundle, err := h.intelligenceService.BuildIntelligence(c.Request().Context(), &req)
	if err != nil {
		h.logger.Error("Failed to build intelligence", logger.ErrorField(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, bundle)
}
