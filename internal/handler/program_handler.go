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

type ProgramHandler struct {
	catalogService *service.CatalogService
}

func NewProgramHandler(catalogService *service.CatalogService) *ProgramHandler {
	return &ProgramHandler{catalogService: catalogService}
}

// List godoc
// GET /api/v1/programs
func (h *ProgramHandler) List(c *gin.Context) {
	programs := h.catalogService.ListPrograms(c.Request.Context())
	response.Success(c, http.StatusOK, gin.H{"programs": programs})
}

// Create godoc
// POST /api/v1/programs
func (h *ProgramHandler) Create(c *gin.Context) {
	var req model.CreateProgramRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	program, err := h.catalogService.CreateProgram(c.Request.Context(), model.Program{
		Name:  req.Name,
		Shift: req.Shift,
	})
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"program": program})
}

// Update godoc
// PATCH /api/v1/programs/:id
func (h *ProgramHandler) Update(c *gin.Context) {
	var patch model.ProgramPatch
	if fields := validator.Bind(c, &patch); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	program, err := h.catalogService.UpdateProgram(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"program": program})
}

// Delete godoc
// DELETE /api/v1/programs/:id
func (h *ProgramHandler) Delete(c *gin.Context) {
	if err := h.catalogService.DeleteProgram(c.Request.Context(), c.Param("id")); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "program deleted"})
}
