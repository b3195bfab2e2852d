package http

import (
	"net/http"
	"strconv"

	"github.com/MEMAtest/horizon-scanner-backend/internal/api/dto"
	"github.com/MEMAtest/horizon-scanner-backend/internal/api/service"
	"github.com/MEMAtest/horizon-scanner-backend/pkg/logger"

	"github.com/labstack/echo/v4"
)

// WatchListHandler handles HTTP requests for watch lists and their matches.
type WatchListHandler struct {
	watchListService service.WatchListService
	logger           *logger.Logger
}

// NewWatchListHandler creates a new WatchListHandler.
func NewWatchListHandler(watchListService service.WatchListService, logger *logger.Logger) *WatchListHandler {
	return &WatchListHandler{watchListService: watchListService, logger: logger}
}

// RegisterRoutes registers the watch list routes to the Echo group.
func (h *WatchListHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateWatchList)
	g.GET("", h.GetWatchLists)
	g.GET("/:id", h.GetWatchListByID)
	g.PUT("/:id", h.UpdateWatchList)
	g.DELETE("/:id", h.DeleteWatchList)
	g.GET("/:id/matches", h.GetMatches)
}

// RegisterMatchRoutes registers the match dismissal route.
func (h *WatchListHandler) RegisterMatchRoutes(g *echo.Group) {
	g.POST("/:id/dismiss", h.DismissMatch)
}

// CreateWatchList godoc
// @Summary Create a watch list
// @Tags watchlists
// @Accept  json
// @Produce  json
// @Param   watchlist  body    dto.CreateWatchListRequest   true    "Watch list to create"
// @Success 201 {object} dto.WatchListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /watchlists [post]
func (h *WatchListHandler) CreateWatchList(c echo.Context) error {
	var req dto.CreateWatchListRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	resp, err := h.watchListService.CreateWatchList(c.Request().Context(), &req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, resp)
}

// GetWatchLists godoc
// @Summary List watch lists for a user
// @Tags watchlists
// @Produce  json
// @Param   user_id  query    string true    "User ID"
// @Success 200 {array} dto.WatchListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /watchlists [get]
func (h *WatchListHandler) GetWatchLists(c echo.Context) error {
	resp, err := h.watchListService.GetWatchListsByUser(c.Request().Context(), c.QueryParam("user_id"))
	if err != nil {
		h.logger.Error("Failed to list watch lists", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to list watch lists"})
	}
	return c.JSON(http.StatusOK, resp)
}

// GetWatchListByID godoc
// @Summary Get a watch list by ID
// @Tags watchlists
// @Produce  json
// @Param   id  path    int true    "Watch list ID"
// @Success 200 {object} dto.WatchListResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /watchlists/{id} [get]
func (h *WatchListHandler) GetWatchListByID(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid watch list ID"})
	}

	resp, err := h.watchListService.GetWatchListByID(c.Request().Context(), uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Watch list not found"})
	}
	return c.JSON(http.StatusOK, resp)
}

// UpdateWatchList godoc
// @Summary Update a watch list
// @Tags watchlists
// @Accept  json
// @Produce  json
// @Param   id  path    int true    "Watch list ID"
// @Param   watchlist  body    dto.UpdateWatchListRequest   true    "Watch list fields"
// @Success 200 {object} dto.WatchListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /watchlists/{id} [put]
func (h *WatchListHandler) UpdateWatchList(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid watch list ID"})
	}

	var req dto.UpdateWatchListRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	resp, err := h.watchListService.UpdateWatchList(c.Request().Context(), uint(id), &req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, resp)
}

// DeleteWatchList godoc
// @Summary Delete a watch list and its matches
// @Tags watchlists
// @Produce  json
// @Param   id  path    int true    "Watch list ID"
// @Success 204 {object} nil
// @Failure 500 {object} dto.ErrorResponse
// @Router /watchlists/{id} [delete]
func (h *WatchListHandler) DeleteWatchList(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid watch list ID"})
	}

	if err := h.watchListService.DeleteWatchList(c.Request().Context(), uint(id)); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete watch list"})
	}
	return c.NoContent(http.StatusNoContent)
}

// GetMatches godoc
// @Summary List matches for a watch list
// @Tags watchlists
// @Produce  json
// @Param   id  path    int true    "Watch list ID"
// @Param   include_dismissed  query    bool false    "Include dismissed matches"
// @Success 200 {array} dto.WatchListMatchResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /watchlists/{id}/matches [get]
func (h *WatchListHandler) GetMatches(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid watch list ID"})
	}

	includeDismissed, _ := strconv.ParseBool(c.QueryParam("include_dismissed"))
	resp, err := h.watchListService.GetMatches(c.Request().Context(), uint(id), includeDismissed)
	if err != nil {
		h.logger.Error("Failed to list matches", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to list matches"})
	}
	return c.JSON(http.StatusOK, resp)
}

// DismissMatch godoc
// @Summary Dismiss a watch list match
// @Tags watchlists
// @Produce  json
// @Param   id  path    int true    "Match ID"
// @Success 204 {object} nil
// @Failure 500 {object} dto.ErrorResponse
// @Router /matches/{id}/dismiss [post]
func (h *WatchListHandler) DismissMatch(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid match ID"})
	}

	if err := h.watchListService.DismissMatch(c.Request().Context(), uint(id)); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to dismiss match"})
	}
	return c.NoContent(http.StatusNoContent)
}
