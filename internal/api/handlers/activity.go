package handlers

import (
	"net/http"
	"strconv"

	"trackflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ActivityHandler serves the activity log
type ActivityHandler struct {
	activityService service.ActivityServiceInterface
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService service.ActivityServiceInterface) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
	}
}

// ListProjectActivity handles GET /projects/:id/activity
// @Summary List a project's activity
// @Tags activity
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param limit query int false "Maximum entries" default(50)
// @Success 200 {array} models.ActivityLog "Activity entries, newest first"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 403 {object} map[string]interface{} "Not a project member"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /projects/{id}/activity [get]
func (h *ActivityHandler) ListProjectActivity(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	projectID, ok := parseIDParam(c, "id", "project")
	if !ok {
		return
	}
	limit, ok := parseLimit(c)
	if !ok {
		return
	}

	entries, err := h.activityService.ListByProject(c.Request.Context(), actor, projectID, limit)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// ListMyActivity handles GET /activity/mine
// @Summary List my activity
// @Tags activity
// @Produce json
// @Param limit query int false "Maximum entries" default(50)
// @Success 200 {array} models.ActivityLog "Activity entries, newest first"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /activity/mine [get]
func (h *ActivityHandler) ListMyActivity(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	limit, ok := parseLimit(c)
	if !ok {
		return
	}

	entries, err := h.activityService.ListMine(c.Request.Context(), actor, limit)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

func parseLimit(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return 0, false
	}
	return limit, true
}
