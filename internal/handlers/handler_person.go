package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quickquid/quickquid_backend/internal/apperrors"
	portssvc "github.com/quickquid/quickquid_backend/internal/core/ports/services"
	"github.com/quickquid/quickquid_backend/internal/dto"
	"github.com/quickquid/quickquid_backend/internal/middleware"
)

// personHandler handles HTTP requests related to persons.
type personHandler struct {
	personService portssvc.PersonSvcFacade
}

// newPersonHandler creates a new personHandler.
func newPersonHandler(ps portssvc.PersonSvcFacade) *personHandler {
	return &personHandler{personService: ps}
}

// registerPersonRoutes registers routes related to persons.
func registerPersonRoutes(rg *gin.RouterGroup, personService portssvc.PersonSvcFacade) {
	h := newPersonHandler(personService)

	persons := rg.Group("/persons")
	{
		persons.POST("", h.createPerson)
	}
}

// createPerson godoc
// @Summary Create a new person
// @Description Creates a new person record with first and last name
// @Tags persons
// @Accept  json
// @Produce  json
// @Param   person body dto.CreatePersonRequest true "Person details"
// @Success 201 {object} map[string]dto.PersonResponse
// @Failure 400 {object} map[string]string "Missing required fields"
// @Failure 500 {object} map[string]string "Failed to create person"
// @Router /persons [post]
func (h *personHandler) createPerson(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePerson", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: 'firstName' and 'lastName'"})
		return
	}

	person, err := h.personService.CreatePerson(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating person", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create person in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create person"})
		}
		return
	}

	logger.Info("Person created successfully", slog.Int64("person_id", person.PersonID))
	c.JSON(http.StatusCreated, gin.H{"person": dto.ToPersonResponse(person)})
}
