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

type AllocationHandler struct {
	allocationService *service.AllocationService
}

func NewAllocationHandler(allocationService *service.AllocationService) *AllocationHandler {
	return &AllocationHandler{allocationService: allocationService}
}

// List godoc
// GET /api/v1/allocations
func (h *AllocationHandler) List(c *gin.Context) {
	allocations := h.allocationService.List(c.Request.Context())
	response.Success(c, http.StatusOK, gin.H{"allocations": allocations})
}

// Create godoc
// POST /api/v1/allocations
func (h *AllocationHandler) Create(c *gin.Context) {
	var req model.CreateAssignmentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	allocation, err := h.allocationService.Create(c.Request.Context(), model.Assignment{
		ComponentID:  req.ComponentID,
		InstructorID: req.InstructorID,
		Weekdays:     req.Weekdays,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
	})
	if err != nil {
		failAllocation(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"allocation": allocation})
}

// Update godoc
// PATCH /api/v1/allocations/:id
func (h *AllocationHandler) Update(c *gin.Context) {
	var patch model.AssignmentPatch
	if fields := validator.Bind(c, &patch); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	allocation, err := h.allocationService.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		failAllocation(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"allocation": allocation})
}

// Delete godoc
// DELETE /api/v1/allocations/:id
func (h *AllocationHandler) Delete(c *gin.Context) {
	if err := h.allocationService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "allocation deleted"})
}

// Conflicts godoc
// GET /api/v1/conflicts
func (h *AllocationHandler) Conflicts(c *gin.Context) {
	conflicts := h.allocationService.Conflicts(c.Request.Context())
	response.Success(c, http.StatusOK, gin.H{"conflicts": conflicts})
}

// Recheck godoc
// POST /api/v1/conflicts/recheck
func (h *AllocationHandler) Recheck(c *gin.Context) {
	conflicts := h.allocationService.Recheck(c.Request.Context())
	response.Success(c, http.StatusOK, gin.H{"conflicts": conflicts})
}

func failAllocation(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	case errors.Is(err, store.ErrInvalidTimeWindow):
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidTimeWindow)
	case errors.Is(err, store.ErrInvalidWeekday), errors.Is(err, store.ErrNoWeekdays):
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidWeekday)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
