package handlers

import (
	"net/http"

	"trackflow-backend/internal/database/models"
	"trackflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// InvitationHandler handles HTTP requests for workspace invitations
type InvitationHandler struct {
	invitationService service.InvitationServiceInterface
}

// NewInvitationHandler creates a new invitation handler
func NewInvitationHandler(invitationService service.InvitationServiceInterface) *InvitationHandler {
	return &InvitationHandler{
		invitationService: invitationService,
	}
}

// Invite handles POST /teams/:id/invitations
// @Summary Invite a user to a workspace
// @Description Create a pending invitation and notify the invitee. The inviter must be a member.
// @Tags invitations
// @Accept json
// @Produce json
// @Param id path string true "Workspace (team) ID (UUID)"
// @Param body body service.CreateInvitationRequest true "Invitee"
// @Success 201 {object} models.Invitation "Invitation created"
// @Failure 400 {object} map[string]interface{} "Invalid input or an invitation is pending"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /teams/{id}/invitations [post]
func (h *InvitationHandler) Invite(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	workspaceID, ok := parseIDParam(c, "id", "workspace")
	if !ok {
		return
	}
	var req service.CreateInvitationRequest
	if !bindJSON(c, &req) {
		return
	}

	invitation, err := h.invitationService.Invite(c.Request.Context(), actor, workspaceID, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, invitation)
}

// ListMine handles GET /invitations/mine
// @Summary List my invitations
// @Description List invitations addressed to the current user
// @Tags invitations
// @Produce json
// @Param status query string false "Filter by status" Enums(pending, accepted, declined)
// @Success 200 {array} models.Invitation "Invitations"
// @Failure 400 {object} map[string]interface{} "Invalid status filter"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /invitations/mine [get]
func (h *InvitationHandler) ListMine(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	invitations, err := h.invitationService.ListMine(c.Request.Context(), actor, models.RequestStatus(c.Query("status")))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, invitations)
}

// Respond handles PUT /invitations/:id
// @Summary Accept or decline an invitation
// @Description Respond to an invitation addressed to the current user. Accepting adds the membership with the invited role.
// @Tags invitations
// @Accept json
// @Produce json
// @Param id path string true "Invitation ID (UUID)"
// @Param body body service.RespondInvitationRequest true "Decision"
// @Success 200 {object} service.InvitationResponse "Response"
// @Failure 400 {object} map[string]interface{} "Invalid decision"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 403 {object} map[string]interface{} "Not the invitee"
// @Failure 404 {object} map[string]interface{} "Invitation not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /invitations/{id} [put]
func (h *InvitationHandler) Respond(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	invitationID, ok := parseIDParam(c, "id", "invitation")
	if !ok {
		return
	}
	var req service.RespondInvitationRequest
	if !bindJSON(c, &req) {
		return
	}

	response, err := h.invitationService.Respond(c.Request.Context(), actor, invitationID, req.Status)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
