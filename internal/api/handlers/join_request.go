package handlers

import (
	"net/http"

	"trackflow-backend/internal/database/models"
	"trackflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// JoinRequestHandler handles HTTP requests for the join request workflow
type JoinRequestHandler struct {
	joinRequestService service.JoinRequestServiceInterface
}

// NewJoinRequestHandler creates a new join request handler
func NewJoinRequestHandler(joinRequestService service.JoinRequestServiceInterface) *JoinRequestHandler {
	return &JoinRequestHandler{
		joinRequestService: joinRequestService,
	}
}

// Submit handles POST /teams/:id/join-requests
// @Summary Ask to join a team
// @Description Create a pending join request for the current user and notify the team creator
// @Tags join-requests
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 201 {object} models.JoinRequest "Join request created"
// @Failure 400 {object} map[string]interface{} "Already a member or a request is pending"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /teams/{id}/join-requests [post]
func (h *JoinRequestHandler) Submit(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	teamID, ok := parseIDParam(c, "id", "team")
	if !ok {
		return
	}

	request, err := h.joinRequestService.Submit(c.Request.Context(), actor, teamID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, request)
}

// ListByTeam handles GET /teams/:id/join-requests
// @Summary List a team's join requests
// @Description List join requests for a team with the requester's name and email. Team creator only.
// @Tags join-requests
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param status query string false "Filter by status" Enums(pending, accepted, declined)
// @Success 200 {array} models.RequestWithUser "Join requests"
// @Failure 400 {object} map[string]interface{} "Invalid status filter"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 403 {object} map[string]interface{} "Not the team creator"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /teams/{id}/join-requests [get]
func (h *JoinRequestHandler) ListByTeam(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	teamID, ok := parseIDParam(c, "id", "team")
	if !ok {
		return
	}

	requests, err := h.joinRequestService.ListByTeam(c.Request.Context(), actor, teamID, models.RequestStatus(c.Query("status")))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, requests)
}

// ListMine handles GET /join-requests/mine
// @Summary List my join requests
// @Description List the join requests the current user has submitted
// @Tags join-requests
// @Produce json
// @Success 200 {array} models.JoinRequest "Join requests"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /join-requests/mine [get]
func (h *JoinRequestHandler) ListMine(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	requests, err := h.joinRequestService.ListMine(c.Request.Context(), actor)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, requests)
}

// Resolve handles PUT /join-requests/:id
// @Summary Accept or decline a join request
// @Description Resolve a pending join request. Accepting adds the requester to the team. A request that was already resolved is reported with already_processed set.
// @Tags join-requests
// @Accept json
// @Produce json
// @Param id path string true "Join request ID (UUID)"
// @Param body body service.ResolveRequest true "Decision"
// @Success 200 {object} service.JoinRequestResolution "Resolution"
// @Failure 400 {object} map[string]interface{} "Invalid decision"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 403 {object} map[string]interface{} "Not the team creator"
// @Failure 404 {object} map[string]interface{} "Join request not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /join-requests/{id} [put]
func (h *JoinRequestHandler) Resolve(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	requestID, ok := parseIDParam(c, "id", "join request")
	if !ok {
		return
	}
	var req service.ResolveRequest
	if !bindJSON(c, &req) {
		return
	}

	resolution, err := h.joinRequestService.Resolve(c.Request.Context(), actor, requestID, req.Status)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resolution)
}
