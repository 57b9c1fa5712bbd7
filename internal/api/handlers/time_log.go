package handlers

import (
	"net/http"

	"trackflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TimeLogHandler handles HTTP requests for time tracking
type TimeLogHandler struct {
	timeLogService service.TimeLogServiceInterface
}

// NewTimeLogHandler creates a new time log handler
func NewTimeLogHandler(timeLogService service.TimeLogServiceInterface) *TimeLogHandler {
	return &TimeLogHandler{
		timeLogService: timeLogService,
	}
}

// LogTime handles POST /tasks/:id/time-logs
// @Summary Log time on a task
// @Tags time-logs
// @Accept json
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Param body body service.CreateTimeLogRequest true "Time spent"
// @Success 201 {object} models.TimeLog "Time logged"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Not a project member"
// @Failure 404 {object} map[string]interface{} "Task not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tasks/{id}/time-logs [post]
func (h *TimeLogHandler) LogTime(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "id", "task")
	if !ok {
		return
	}
	var req service.CreateTimeLogRequest
	if !bindJSON(c, &req) {
		return
	}

	timeLog, err := h.timeLogService.Log(c.Request.Context(), actor, taskID, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, timeLog)
}

// ListTimeLogs handles GET /tasks/:id/time-logs
// @Summary List a task's time logs
// @Description List time logs with the total minutes spent
// @Tags time-logs
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Success 200 {object} service.TimeLogListResponse "Time logs"
// @Failure 400 {object} map[string]interface{} "Invalid task ID"
// @Failure 403 {object} map[string]interface{} "Not a project member"
// @Failure 404 {object} map[string]interface{} "Task not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tasks/{id}/time-logs [get]
func (h *TimeLogHandler) ListTimeLogs(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "id", "task")
	if !ok {
		return
	}

	logs, err := h.timeLogService.ListByTask(c.Request.Context(), actor, taskID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, logs)
}

// DeleteTimeLog handles DELETE /time-logs/:id
// @Summary Delete a time log
// @Description Delete a time log. Author only.
// @Tags time-logs
// @Param id path string true "Time log ID (UUID)"
// @Success 204 "Time log deleted"
// @Failure 400 {object} map[string]interface{} "Invalid time log ID"
// @Failure 403 {object} map[string]interface{} "Not the author"
// @Failure 404 {object} map[string]interface{} "Time log not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /time-logs/{id} [delete]
func (h *TimeLogHandler) DeleteTimeLog(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id", "time log")
	if !ok {
		return
	}

	if err := h.timeLogService.Delete(c.Request.Context(), actor, id); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
