package api

import (
	"errors"
	"net/http"

	"canteen-reservation/internal/handler/dto/request"
	resdto "canteen-reservation/internal/handler/dto/response"
	"canteen-reservation/internal/handler/httperr"
	"canteen-reservation/internal/infra"
	"canteen-reservation/internal/usecase/commands"
	"canteen-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CanteenHandler struct {
	canteenCommands commands.CanteenCommands
	canteenQueries  queries.CanteenQueries
}

func NewCanteenHandler(canteenCommands commands.CanteenCommands, canteenQueries queries.CanteenQueries) *CanteenHandler {
	return &CanteenHandler{
		canteenCommands: canteenCommands,
		canteenQueries:  canteenQueries,
	}
}

// @Summary List canteens
// @Description All canteens with their working hours
// @Tags canteens
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CanteenResponse
// @Failure 401 {object} httperr.Response
// @Router /canteens [get]
func (h *CanteenHandler) List(c *gin.Context) {
	views, err := h.canteenQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	response := make([]*resdto.CanteenResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromCanteenView(view)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get canteen
// @Description Get canteen by ID
// @Tags canteens
// @Produce json
// @Security BearerAuth
// @Param id path string true "Canteen ID"
// @Success 200 {object} resdto.CanteenResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /canteens/{id} [get]
func (h *CanteenHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid canteen ID format")
		return
	}

	view, err := h.canteenQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Canteen not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromCanteenView(view))
}

// @Summary Create canteen
// @Description Register a canteen with capacity and working hours
// @Tags canteens
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.CreateCanteenRequest true "Canteen request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /canteens [post]
func (h *CanteenHandler) Create(c *gin.Context) {
	var req request.CreateCanteenRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	id, err := h.canteenCommands.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data")
		case errors.Is(err, commands.ErrCanteenAlreadyExists):
			httperr.AbortWithError(c, http.StatusConflict, err, "Canteen already exists")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Update canteen
// @Description Change name, location, capacity or working hours; omitted fields keep their value
// @Tags canteens
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Canteen ID"
// @Param request body request.UpdateCanteenRequest true "Canteen update"
// @Success 200 {object} resdto.CanteenResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /canteens/{id} [patch]
func (h *CanteenHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid canteen ID format")
		return
	}

	var req request.UpdateCanteenRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	if err := h.canteenCommands.Update(c.Request.Context(), id, req); err != nil {
		switch {
		case errors.Is(err, commands.ErrCanteenNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Canteen not found")
		case errors.Is(err, commands.ErrCanteenAlreadyExists):
			httperr.AbortWithError(c, http.StatusConflict, err, "Canteen already exists")
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	view, err := h.canteenQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromCanteenView(view))
}

// @Summary Create schedule override
// @Description Replace working hours for a date window; reservations that no longer fit are cancelled
// @Tags canteens
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Canteen ID"
// @Param request body request.CreateOverrideRequest true "Override request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /canteens/{id}/overrides [post]
func (h *CanteenHandler) CreateOverride(c *gin.Context) {
	canteenID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid canteen ID format")
		return
	}

	var req request.CreateOverrideRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	id, err := h.canteenCommands.CreateOverride(c.Request.Context(), canteenID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCanteenNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Canteen not found")
		case errors.Is(err, commands.ErrOverrideWindowOverlap):
			httperr.AbortWithError(c, http.StatusConflict, err, "Override window overlaps an existing one")
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}
