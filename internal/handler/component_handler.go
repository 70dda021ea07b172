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

type ComponentHandler struct {
	catalogService *service.CatalogService
}

func NewComponentHandler(catalogService *service.CatalogService) *ComponentHandler {
	return &ComponentHandler{catalogService: catalogService}
}

// List godoc
// GET /api/v1/components
func (h *ComponentHandler) List(c *gin.Context) {
	components := h.catalogService.ListComponents(c.Request.Context())
	response.Success(c, http.StatusOK, gin.H{"components": components})
}

// Create godoc
// POST /api/v1/components
func (h *ComponentHandler) Create(c *gin.Context) {
	var req model.CreateComponentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	component, err := h.catalogService.CreateComponent(c.Request.Context(), model.CourseComponent{
		Program:     req.Program,
		Semester:    req.Semester,
		Name:        req.Name,
		WeeklyHours: req.WeeklyHours,
		Requirement: req.Requirement,
		Code:        req.Code,
		Instructors: req.Instructors,
	})
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"component": component})
}

// Update godoc
// PATCH /api/v1/components/:id
func (h *ComponentHandler) Update(c *gin.Context) {
	var patch model.ComponentPatch
	if fields := validator.Bind(c, &patch); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	component, err := h.catalogService.UpdateComponent(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"component": component})
}

// Delete godoc
// DELETE /api/v1/components/:id
func (h *ComponentHandler) Delete(c *gin.Context) {
	if err := h.catalogService.DeleteComponent(c.Request.Context(), c.Param("id")); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "component deleted"})
}
