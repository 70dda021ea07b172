package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gestac/gestac-backend/internal/model"
	"github.com/gestac/gestac-backend/internal/response"
	"github.com/gestac/gestac-backend/internal/service"
	"github.com/gestac/gestac-backend/internal/store"
	"github.com/gestac/gestac-backend/internal/validator"
)

type InstructorHandler struct {
	catalogService *service.CatalogService
}

func NewInstructorHandler(catalogService *service.CatalogService) *InstructorHandler {
	return &InstructorHandler{catalogService: catalogService}
}

// List godoc
// GET /api/v1/instructors
func (h *InstructorHandler) List(c *gin.Context) {
	instructors := h.catalogService.ListInstructors(c.Request.Context())
	response.Success(c, http.StatusOK, gin.H{"instructors": instructors})
}

// Create godoc
// POST /api/v1/instructors
func (h *InstructorHandler) Create(c *gin.Context) {
	var req model.CreateInstructorRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	instructor, err := h.catalogService.CreateInstructor(c.Request.Context(), model.Instructor{
		Name:      req.Name,
		Email:     req.Email,
		Specialty: req.Specialty,
	})
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"instructor": instructor})
}

// Update godoc
// PATCH /api/v1/instructors/:id
func (h *InstructorHandler) Update(c *gin.Context) {
	var patch model.InstructorPatch
	if fields := validator.Bind(c, &patch); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	instructor, err := h.catalogService.UpdateInstructor(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"instructor": instructor})
}

// Delete godoc
// DELETE /api/v1/instructors/:id
func (h *InstructorHandler) Delete(c *gin.Context) {
	if err := h.catalogService.DeleteInstructor(c.Request.Context(), c.Param("id")); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "instructor deleted"})
}
