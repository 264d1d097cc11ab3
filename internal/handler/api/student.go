package api

import (
	"errors"
	"net/http"

	"canteen-reservation/internal/handler/dto/request"
	resdto "canteen-reservation/internal/handler/dto/response"
	"canteen-reservation/internal/handler/httperr"
	"canteen-reservation/internal/usecase/commands"
	"canteen-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StudentHandler struct {
	restrictionCommands commands.RestrictionCommands
	studentQueries      queries.StudentQueries
	restrictionQueries  queries.RestrictionQueries
}

func NewStudentHandler(
	restrictionCommands commands.RestrictionCommands,
	studentQueries queries.StudentQueries,
	restrictionQueries queries.RestrictionQueries,
) *StudentHandler {
	return &StudentHandler{
		restrictionCommands: restrictionCommands,
		studentQueries:      studentQueries,
		restrictionQueries:  restrictionQueries,
	}
}

// @Summary List students
// @Description All student accounts, newest first
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.StudentResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /students [get]
func (h *StudentHandler) List(c *gin.Context) {
	views, err := h.studentQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	response := make([]*resdto.StudentResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromStudentView(view)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary List restrictions
// @Description Restriction history for a student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {array} resdto.RestrictionResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /students/{id}/restrictions [get]
func (h *StudentHandler) ListRestrictions(c *gin.Context) {
	studentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid student ID format")
		return
	}

	views, err := h.restrictionQueries.ListByStudent(c.Request.Context(), studentID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	response := make([]*resdto.RestrictionResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromRestrictionView(view)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Create restriction
// @Description Impose a time-bounded reservation ban on a student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Param request body request.CreateRestrictionRequest true "Restriction request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /students/{id}/restrictions [post]
func (h *StudentHandler) CreateRestriction(c *gin.Context) {
	studentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid student ID format")
		return
	}

	var req request.CreateRestrictionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}
	// The path, not the body, names the target student.
	req.StudentID = studentID

	id, err := h.restrictionCommands.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrStudentNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Student not found")
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}
