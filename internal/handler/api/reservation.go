package api

import (
	"errors"
	"net/http"

	"canteen-reservation/internal/handler/dto/request"
	resdto "canteen-reservation/internal/handler/dto/response"
	"canteen-reservation/internal/handler/httperr"
	"canteen-reservation/internal/handler/middleware"
	"canteen-reservation/internal/infra"
	"canteen-reservation/internal/pkg/errs"
	"canteen-reservation/internal/usecase/commands"
	"canteen-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Set by the auth middleware; its absence on a protected route means
// the middleware chain is miswired, not a client fault.
var errMissingIdentity = errs.New("authenticated student id missing from context")

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
}

func NewReservationHandler(
	reservationCommands commands.ReservationCommands,
	reservationQueries queries.ReservationQueries,
) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
		reservationQueries:  reservationQueries,
	}
}

// @Summary Create reservation
// @Description Reserve a meal slot at a canteen
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	studentID, ok := middleware.GetStudentID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error")
		return
	}

	var req request.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	view, err := h.reservationCommands.Create(c.Request.Context(), studentID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid slot")
		case errors.Is(err, commands.ErrStudentNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Student not found")
		case errors.Is(err, commands.ErrCanteenNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Canteen not found")
		case errors.Is(err, commands.ErrCanteenClosed):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Canteen is closed for the requested slot")
		case errors.Is(err, commands.ErrStudentRestricted):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Student is currently restricted")
		case errors.Is(err, commands.ErrActiveReservationExists):
			httperr.AbortWithError(c, http.StatusConflict, err, "An active reservation already exists")
		case errors.Is(err, commands.ErrSlotFull):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slot is fully booked")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary Get reservation
// @Description Get reservation by ID
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format")
		return
	}

	view, err := h.reservationQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	// Students only see their own reservations; admins see all.
	studentID, _ := middleware.GetStudentID(c)
	if view.StudentID != studentID && !middleware.IsAdmin(c) {
		httperr.AbortWithError(c, http.StatusNotFound, nil, "Reservation not found")
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List own reservations
// @Description Full reservation history of the caller, newest first
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationListResponse
// @Failure 401 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	studentID, ok := middleware.GetStudentID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error")
		return
	}

	items, err := h.reservationQueries.ListByStudent(c.Request.Context(), studentID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	response := make([]*resdto.ReservationListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromReservationListItem(item)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get active reservation
// @Description The caller's single active reservation, if any
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ReservationResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/active [get]
func (h *ReservationHandler) Active(c *gin.Context) {
	studentID, ok := middleware.GetStudentID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error")
		return
	}

	view, err := h.reservationQueries.ActiveByStudent(c.Request.Context(), studentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "No active reservation")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Cancel reservation
// @Description Cancel an active reservation owned by the caller
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	studentID, ok := middleware.GetStudentID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format")
		return
	}

	err = h.reservationCommands.Cancel(c.Request.Context(), id, studentID, middleware.IsAdmin(c))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found")
		case errors.Is(err, commands.ErrNotReservationOwner):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Reservation belongs to another student")
		case errors.Is(err, commands.ErrReservationNotCancellable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Reservation is not cancellable")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
