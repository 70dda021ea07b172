package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gestac/gestac-backend/internal/importer"
	"github.com/gestac/gestac-backend/internal/response"
	"github.com/gestac/gestac-backend/internal/service"
)

type ImportHandler struct {
	importService  *service.ImportService
	maxUploadBytes int64
}

func NewImportHandler(importService *service.ImportService, maxUploadBytes int64) *ImportHandler {
	return &ImportHandler{importService: importService, maxUploadBytes: maxUploadBytes}
}

// Import godoc
// POST /api/v1/import
// Accepts a multipart "file" field holding a CSV or XLSX catalog.
func (h *ImportHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
		return
	}
	if h.maxUploadBytes > 0 && fileHeader.Size > h.maxUploadBytes {
		response.Fail(c, http.StatusRequestEntityTooLarge, response.ErrFileTooLarge)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	defer f.Close()

	stats, err := h.importService.Import(c.Request.Context(), fileHeader.Filename, f)
	if err != nil {
		switch {
		case errors.Is(err, importer.ErrUnsupportedFormat):
			response.Fail(c, http.StatusBadRequest, response.ErrUnsupportedFile)
		case errors.Is(err, importer.ErrDecode), errors.Is(err, importer.ErrEmptyFile):
			// Decode failures surface as a single user-facing message;
			// no partial import is applied.
			response.Fail(c, http.StatusBadRequest, response.ErrDecodeFailed)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}

// Clear godoc
// DELETE /api/v1/data
func (h *ImportHandler) Clear(c *gin.Context) {
	if err := h.importService.Clear(c.Request.Context()); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "all data cleared"})
}
