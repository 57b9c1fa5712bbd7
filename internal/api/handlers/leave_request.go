package handlers

import (
	"net/http"

	"trackflow-backend/internal/database/models"
	"trackflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LeaveRequestHandler handles HTTP requests for the leave request workflow
type LeaveRequestHandler struct {
	leaveRequestService service.LeaveRequestServiceInterface
}

// NewLeaveRequestHandler creates a new leave request handler
func NewLeaveRequestHandler(leaveRequestService service.LeaveRequestServiceInterface) *LeaveRequestHandler {
	return &LeaveRequestHandler{
		leaveRequestService: leaveRequestService,
	}
}

// Submit handles POST /teams/:id/leave-requests
// @Summary Ask to leave a team
// @Description Create a pending leave request with a reason of at least five characters
// @Tags leave-requests
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param body body service.CreateLeaveRequest true "Reason"
// @Success 201 {object} models.LeaveRequest "Leave request created"
// @Failure 400 {object} map[string]interface{} "Reason too short, not a member or a request is pending"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /teams/{id}/leave-requests [post]
func (h *LeaveRequestHandler) Submit(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	teamID, ok := parseIDParam(c, "id", "team")
	if !ok {
		return
	}
	var req service.CreateLeaveRequest
	if !bindJSON(c, &req) {
		return
	}

	request, err := h.leaveRequestService.Submit(c.Request.Context(), actor, teamID, req.Reason)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, request)
}

// ListByTeam handles GET /teams/:id/leave-requests
// @Summary List a team's leave requests
// @Description List leave requests for a team with the requester's name and email. Team creator only.
// @Tags leave-requests
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param status query string false "Filter by status" Enums(pending, accepted, declined)
// @Success 200 {array} models.RequestWithUser "Leave requests"
// @Failure 400 {object} map[string]interface{} "Invalid status filter"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 403 {object} map[string]interface{} "Not the team creator"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /teams/{id}/leave-requests [get]
func (h *LeaveRequestHandler) ListByTeam(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	teamID, ok := parseIDParam(c, "id", "team")
	if !ok {
		return
	}

	requests, err := h.leaveRequestService.ListByTeam(c.Request.Context(), actor, teamID, models.RequestStatus(c.Query("status")))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, requests)
}

// Resolve handles PUT /leave-requests/:id
// @Summary Accept or decline a leave request
// @Description Resolve a pending leave request. Accepting removes the requester from the team.
// @Tags leave-requests
// @Accept json
// @Produce json
// @Param id path string true "Leave request ID (UUID)"
// @Param body body service.ResolveRequest true "Decision"
// @Success 200 {object} service.LeaveRequestResolution "Resolution"
// @Failure 400 {object} map[string]interface{} "Invalid decision"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 403 {object} map[string]interface{} "Not the team creator"
// @Failure 404 {object} map[string]interface{} "Leave request not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /leave-requests/{id} [put]
func (h *LeaveRequestHandler) Resolve(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	requestID, ok := parseIDParam(c, "id", "leave request")
	if !ok {
		return
	}
	var req service.ResolveRequest
	if !bindJSON(c, &req) {
		return
	}

	resolution, err := h.leaveRequestService.Resolve(c.Request.Context(), actor, requestID, req.Status)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resolution)
}
