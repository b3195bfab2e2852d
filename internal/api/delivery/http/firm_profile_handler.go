package http

import (
	"net/http"
	"strconv"

	"github.com/MEMAtest/horizon-scanner-backend/internal/api/dto"
	"github.com/MEMAtest/horizon-scanner-backend/internal/api/service"
	"github.com/MEMAtest/horizon-scanner-backend/pkg/logger"

	"github.com/labstack/echo/v4"
)

// FirmProfileHandler handles HTTP requests for firm profiles.
type FirmProfileHandler struct {
	profileService service.FirmProfileService
	logger         *logger.Logger
}

// NewFirmProfileHandler creates a new FirmProfileHandler.
func NewFirmProfileHandler(profileService service.FirmProfileService, logger *logger.Logger) *FirmProfileHandler {
	return &FirmProfileHandler{profileService: profileService, logger: logger}
}

// RegisterRoutes registers the firm profile routes to the Echo group.
func (h *FirmProfileHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateProfile)
	g.GET("/:id", h.GetProfileByID)
	g.GET("/active/:userID", h.GetActiveProfile)
	g.PUT("/:id", h.UpdateProfile)
	g.DELETE("/:id", h.DeactivateProfile)
}

// CreateProfile godoc
// @Summary Create a firm profile
// @Description Create a firm profile used to personalize regulatory scoring
// @Tags profiles
// @Accept  json
// @Produce  json
// @Param   profile  body    dto.CreateFirmProfileRequest   true    "Profile to create"
// @Success 201 {object} dto.FirmProfileResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /profiles [post]
func (h *FirmProfileHandler) CreateProfile(c echo.Context) error {
	var req dto.CreateFirmProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	resp, err := h.profileService.CreateProfile(c.Request().Context(), &req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, resp)
}

// GetProfileByID godoc
// @Summary Get a firm profile by ID
// @Tags profiles
// @Produce  json
// @Param   id  path    int true    "Profile ID"
// @Success 200 {object} dto.FirmProfileResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /profiles/{id} [get]
func (h *FirmProfileHandler) GetProfileByID(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid profile ID"})
	}

	resp, err := h.profileService.GetProfileByID(c.Request().Context(), uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Profile not found"})
	}
	return c.JSON(http.StatusOK, resp)
}

// GetActiveProfile godoc
// @Summary Get the active firm profile for a user
// @Tags profiles
// @Produce  json
// @Param   userID  path    string true    "User ID"
// @Success 200 {object} dto.FirmProfileResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /profiles/active/{userID} [get]
func (h *FirmProfileHandler) GetActiveProfile(c echo.Context) error {
	resp, err := h.profileService.GetActiveProfile(c.Request().Context(), c.Param("userID"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "No active profile for user"})
	}
	return c.JSON(http.StatusOK, resp)
}

// UpdateProfile godoc
// @Summary Update a firm profile
// @Tags profiles
// @Accept  json
// @Produce  json
// @Param   id  path    int true    "Profile ID"
// @Param   profile  body    dto.UpdateFirmProfileRequest   true    "Profile fields"
// @Success 200 {object} dto.FirmProfileResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /profiles/{id} [put]
func (h *FirmProfileHandler) UpdateProfile(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid profile ID"})
	}

	var req dto.UpdateFirmProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	resp, err := h.profileService.UpdateProfile(c.Request().Context(), uint(id), &req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, resp)
}

// DeactivateProfile godoc
// @Summary Deactivate a firm profile
// @Description Profiles are soft-deactivated, never hard-deleted
// @Tags profiles
// @Produce  json
// @Param   id  path    int true    "Profile ID"
// @Success 204 {object} nil
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /profiles/{id} [delete]
func (h *FirmProfileHandler) DeactivateProfile(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid profile ID"})
	}

	if err := h.profileService.DeactivateProfile(c.Request().Context(), uint(id)); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to deactivate profile"})
	}
	return c.NoContent(http.StatusNoContent)
}
