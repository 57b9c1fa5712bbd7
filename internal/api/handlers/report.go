package handlers

import (
	"fmt"
	"net/http"

	"trackflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves rendered reports
type ReportHandler struct {
	reportService service.ReportServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService service.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// ProjectReport handles GET /projects/:id/report
// @Summary Download a project report
// @Description Render a PDF with task counts by status and a task table with logged hours
// @Tags reports
// @Produce application/pdf
// @Param id path string true "Project ID (UUID)"
// @Success 200 {file} binary "PDF document"
// @Failure 400 {object} map[string]interface{} "Invalid project ID"
// @Failure 403 {object} map[string]interface{} "Not a project member"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /projects/{id}/report [get]
func (h *ReportHandler) ProjectReport(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	projectID, ok := parseIDParam(c, "id", "project")
	if !ok {
		return
	}

	report, err := h.reportService.ProjectReport(c.Request.Context(), actor, projectID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.FileName))
	c.Data(http.StatusOK, "application/pdf", report.Content)
}
