package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gestac/gestac-backend/internal/response"
	"github.com/gestac/gestac-backend/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct {
	exportService *service.ExportService
}

func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// CSV godoc
// GET /api/v1/export/csv
func (h *ExportHandler) CSV(c *gin.Context) {
	data, err := h.exportService.AllocationsCSV(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="alocacoes.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// XLSX godoc
// GET /api/v1/export/xlsx
func (h *ExportHandler) XLSX(c *gin.Context) {
	buf, err := h.exportService.AllocationsXLSX(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="alocacoes.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
