package handlers_test

import (
	"net/http"
	"testing"

	"trackflow-backend/internal/api/handlers"
	"trackflow-backend/internal/database/models"
	apperrors "trackflow-backend/internal/errors"
	"trackflow-backend/internal/mocks"
	"trackflow-backend/internal/service"
	"trackflow-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// MembershipHandlerTestSuite covers the join, leave and invitation endpoints
type MembershipHandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	joins      *mocks.MockJoinRequestServiceInterface
	leaves     *mocks.MockLeaveRequestServiceInterface
	invites    *mocks.MockInvitationServiceInterface
	httpSuite  *testutils.HTTPTestSuite
	actor      service.Actor
	teamID     uuid.UUID
	teamPrefix string
}

// SetupTest sets up the test suite
func (suite *MembershipHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.joins = mocks.NewMockJoinRequestServiceInterface(suite.ctrl)
	suite.leaves = mocks.NewMockLeaveRequestServiceInterface(suite.ctrl)
	suite.invites = mocks.NewMockInvitationServiceInterface(suite.ctrl)
	suite.actor = service.Actor{ID: uuid.New(), Name: "Bob", Email: "bob@example.com"}
	suite.teamID = uuid.New()
	suite.teamPrefix = "/api/v1/teams/" + suite.teamID.String()

	joinHandler := handlers.NewJoinRequestHandler(suite.joins)
	leaveHandler := handlers.NewLeaveRequestHandler(suite.leaves)
	invitationHandler := handlers.NewInvitationHandler(suite.invites)

	suite.httpSuite = testutils.SetupAuthenticatedHTTPTest(suite.actor)
	v1 := suite.httpSuite.Router.Group("/api/v1")
	{
		v1.POST("/teams/:id/join-requests", joinHandler.Submit)
		v1.GET("/teams/:id/join-requests", joinHandler.ListByTeam)
		v1.GET("/join-requests/mine", joinHandler.ListMine)
		v1.PUT("/join-requests/:id", joinHandler.Resolve)

		v1.POST("/teams/:id/leave-requests", leaveHandler.Submit)
		v1.GET("/teams/:id/leave-requests", leaveHandler.ListByTeam)
		v1.PUT("/leave-requests/:id", leaveHandler.Resolve)

		v1.POST("/teams/:id/invitations", invitationHandler.Invite)
		v1.GET("/invitations/mine", invitationHandler.ListMine)
		v1.PUT("/invitations/:id", invitationHandler.Respond)
	}
}

// TearDownTest cleans up after each test
func (suite *MembershipHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MembershipHandlerTestSuite) TestSubmitJoinRequest() {
	request := &models.JoinRequest{
		BaseModel: models.BaseModel{ID: uuid.New()},
		TeamID:    suite.teamID,
		UserID:    suite.actor.ID,
		Status:    models.RequestStatusPending,
	}
	suite.joins.EXPECT().Submit(gomock.Any(), suite.actor, suite.teamID).Return(request, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.teamPrefix+"/join-requests", nil)

	var response models.JoinRequest
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	suite.Equal(request.ID, response.ID)
	suite.Equal(models.RequestStatusPending, response.Status)
}

func (suite *MembershipHandlerTestSuite) TestSubmitJoinRequestDuplicate() {
	suite.joins.EXPECT().Submit(gomock.Any(), suite.actor, suite.teamID).Return(nil, apperrors.ErrJoinRequestPending)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.teamPrefix+"/join-requests", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "pending join request")
}

func (suite *MembershipHandlerTestSuite) TestSubmitJoinRequestUnknownTeam() {
	suite.joins.EXPECT().Submit(gomock.Any(), suite.actor, suite.teamID).Return(nil, apperrors.ErrTeamNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.teamPrefix+"/join-requests", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "team not found")
}

func (suite *MembershipHandlerTestSuite) TestListJoinRequestsPassesStatusFilter() {
	rows := []models.RequestWithUser{{ID: uuid.New(), TeamID: suite.teamID, UserName: "Carol", UserEmail: "carol@example.com", Status: models.RequestStatusPending}}
	suite.joins.EXPECT().
		ListByTeam(gomock.Any(), suite.actor, suite.teamID, models.RequestStatusPending).
		Return(rows, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.teamPrefix+"/join-requests?status=pending", nil)

	var response []models.RequestWithUser
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Require().Len(response, 1)
	suite.Equal("carol@example.com", response[0].UserEmail)
}

func (suite *MembershipHandlerTestSuite) TestListJoinRequestsNotCreator() {
	suite.joins.EXPECT().
		ListByTeam(gomock.Any(), suite.actor, suite.teamID, models.RequestStatus("")).
		Return(nil, apperrors.ErrNotTeamCreator)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.teamPrefix+"/join-requests", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "team creator")
}

func (suite *MembershipHandlerTestSuite) TestListMyJoinRequests() {
	suite.joins.EXPECT().ListMine(gomock.Any(), suite.actor).Return([]models.JoinRequest{}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/join-requests/mine", nil)

	var response []models.JoinRequest
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Empty(response)
}

func (suite *MembershipHandlerTestSuite) TestResolveJoinRequest() {
	id := uuid.New()
	resolved := &models.JoinRequest{BaseModel: models.BaseModel{ID: id}, Status: models.RequestStatusAccepted}
	suite.joins.EXPECT().
		Resolve(gomock.Any(), suite.actor, id, models.RequestStatusAccepted).
		Return(&service.JoinRequestResolution{Request: resolved}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/join-requests/"+id.String(), map[string]string{"status": "accepted"})

	var response service.JoinRequestResolution
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.False(response.AlreadyProcessed)
	suite.Equal(models.RequestStatusAccepted, response.Request.Status)
}

func (suite *MembershipHandlerTestSuite) TestResolveJoinRequestAlreadyProcessed() {
	id := uuid.New()
	previous := &models.JoinRequest{BaseModel: models.BaseModel{ID: id}, Status: models.RequestStatusDeclined}
	suite.joins.EXPECT().
		Resolve(gomock.Any(), suite.actor, id, models.RequestStatusAccepted).
		Return(&service.JoinRequestResolution{Request: previous, AlreadyProcessed: true}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/join-requests/"+id.String(), map[string]string{"status": "accepted"})

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(true, response["already_processed"])
}

func (suite *MembershipHandlerTestSuite) TestResolveJoinRequestInvalidDecision() {
	id := uuid.New()
	suite.joins.EXPECT().
		Resolve(gomock.Any(), suite.actor, id, models.RequestStatusPending).
		Return(nil, apperrors.ErrInvalidStatus)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/join-requests/"+id.String(), map[string]string{"status": "pending"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "accepted, declined")
}

func (suite *MembershipHandlerTestSuite) TestResolveJoinRequestInvalidID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/join-requests/42", map[string]string{"status": "accepted"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid join request ID")
}

func (suite *MembershipHandlerTestSuite) TestSubmitLeaveRequest() {
	request := &models.LeaveRequest{
		BaseModel: models.BaseModel{ID: uuid.New()},
		TeamID:    suite.teamID,
		UserID:    suite.actor.ID,
		Reason:    "Moving on",
		Status:    models.RequestStatusPending,
	}
	suite.leaves.EXPECT().Submit(gomock.Any(), suite.actor, suite.teamID, "Moving on").Return(request, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.teamPrefix+"/leave-requests", map[string]string{"reason": "Moving on"})

	var response models.LeaveRequest
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	suite.Equal("Moving on", response.Reason)
}

func (suite *MembershipHandlerTestSuite) TestSubmitLeaveRequestShortReason() {
	suite.leaves.EXPECT().Submit(gomock.Any(), suite.actor, suite.teamID, "bye").Return(nil, apperrors.ErrReasonTooShort)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.teamPrefix+"/leave-requests", map[string]string{"reason": "bye"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "at least 5 characters")
}

func (suite *MembershipHandlerTestSuite) TestResolveLeaveRequestNotCreator() {
	id := uuid.New()
	suite.leaves.EXPECT().
		Resolve(gomock.Any(), suite.actor, id, models.RequestStatusAccepted).
		Return(nil, apperrors.ErrNotTeamCreator)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/leave-requests/"+id.String(), map[string]string{"status": "accepted"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "team creator")
}

func (suite *MembershipHandlerTestSuite) TestInvite() {
	invitee := uuid.New()
	req := &service.CreateInvitationRequest{Email: "dev@example.com", UserID: invitee, Role: models.InvitationRoleMember}
	invitation := &models.Invitation{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		WorkspaceID: suite.teamID,
		InvitedBy:   suite.actor.ID,
		UserID:      invitee,
		Email:       "dev@example.com",
		Role:        models.InvitationRoleMember,
		Status:      models.RequestStatusPending,
	}
	suite.invites.EXPECT().Invite(gomock.Any(), suite.actor, suite.teamID, req).Return(invitation, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.teamPrefix+"/invitations", map[string]interface{}{
		"email":   "dev@example.com",
		"user_id": invitee,
		"role":    "member",
	})

	var response models.Invitation
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	suite.Equal(invitation.ID, response.ID)
	suite.Equal(invitee, response.UserID)
}

func (suite *MembershipHandlerTestSuite) TestInviteDuplicate() {
	suite.invites.EXPECT().Invite(gomock.Any(), suite.actor, suite.teamID, gomock.Any()).Return(nil, apperrors.ErrInvitationPending)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.teamPrefix+"/invitations", map[string]interface{}{
		"email":   "dev@example.com",
		"user_id": uuid.New(),
		"role":    "member",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "pending invitation")
}

func (suite *MembershipHandlerTestSuite) TestListMyInvitations() {
	suite.invites.EXPECT().
		ListMine(gomock.Any(), suite.actor, models.RequestStatusPending).
		Return([]models.Invitation{{BaseModel: models.BaseModel{ID: uuid.New()}, Status: models.RequestStatusPending}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/invitations/mine?status=pending", nil)

	var response []models.Invitation
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Len(response, 1)
}

func (suite *MembershipHandlerTestSuite) TestRespondNotInvitee() {
	id := uuid.New()
	suite.invites.EXPECT().
		Respond(gomock.Any(), suite.actor, id, models.RequestStatusAccepted).
		Return(nil, apperrors.ErrNotInvitee)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/invitations/"+id.String(), map[string]string{"status": "accepted"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "invited user")
}

func (suite *MembershipHandlerTestSuite) TestRespondAccepted() {
	id := uuid.New()
	invitation := &models.Invitation{BaseModel: models.BaseModel{ID: id}, Status: models.RequestStatusAccepted}
	suite.invites.EXPECT().
		Respond(gomock.Any(), suite.actor, id, models.RequestStatusAccepted).
		Return(&service.InvitationResponse{Invitation: invitation}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/invitations/"+id.String(), map[string]string{"status": "accepted"})

	var response service.InvitationResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(models.RequestStatusAccepted, response.Invitation.Status)
	suite.False(response.AlreadyProcessed)
}

func TestMembershipHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipHandlerTestSuite))
}
