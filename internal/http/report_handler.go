package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/menu-service/internal/service"
)

// ReportHandler provides HTTP handlers for count report routes.
type ReportHandler struct {
	reports *service.CountReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reports *service.CountReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// CountReport handles GET /api/reports/count/:id. The optional format query
// parameter selects the rendering: "csv" and "text" return plain documents,
// anything else returns the structured report as JSON.
func (h *ReportHandler) CountReport(c *gin.Context) {
	builder := NewResponseBuilder(c)

	report, err := h.reports.Generate(c.Request.Context(), c.Param("id"))
	if err != nil {
		builder.Error(http.StatusInternalServerError, "Failed to generate count report", err)
		return
	}
	if report == nil {
		builder.Error(http.StatusNotFound, "Count session not found", nil)
		return
	}

	switch c.Query("format") {
	case "csv":
		csvText, err := h.reports.RenderGLCSV(report)
		if err != nil {
			builder.Error(http.StatusInternalServerError, "Failed to render report CSV", err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="count-`+report.Session.ID+`.csv"`)
		c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csvText))
	case "text":
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(h.reports.RenderText(report)))
	default:
		builder.SuccessOK(report)
	}
}
