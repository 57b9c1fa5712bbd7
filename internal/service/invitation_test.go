package service_test

import (
	"context"
	"testing"

	"trackflow-backend/internal/database/models"
	apperrors "trackflow-backend/internal/errors"
	"trackflow-backend/internal/mocks"
	"trackflow-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// InvitationServiceTestSuite defines the test suite for InvitationService
type InvitationServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	txm        *mocks.MockTransactionManagerInterface
	teamRepo   *mocks.MockTeamRepositoryInterface
	userRepo   *mocks.MockUserRepositoryInterface
	invRepo    *mocks.MockInvitationRepositoryInterface
	memberRepo *mocks.MockMembershipRepositoryInterface
	notifier   *mocks.MockNotifier
	activity   *mocks.MockActivityRecorder
	svc        *service.InvitationService

	inviter service.Actor
	invitee *models.User
	team    *models.Team
}

func (suite *InvitationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.txm = mocks.NewMockTransactionManagerInterface(suite.ctrl)
	suite.teamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.userRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.invRepo = mocks.NewMockInvitationRepositoryInterface(suite.ctrl)
	suite.memberRepo = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.notifier = mocks.NewMockNotifier(suite.ctrl)
	suite.activity = mocks.NewMockActivityRecorder(suite.ctrl)
	suite.svc = service.NewInvitationService(suite.txm, suite.teamRepo, suite.userRepo, suite.invRepo,
		suite.memberRepo, suite.notifier, suite.activity, service.NewValidator())

	suite.inviter = service.Actor{ID: uuid.New(), Name: "Alice"}
	suite.invitee = &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Dave",
		Email:     "dave@example.com",
	}
	suite.team = &models.Team{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Platform",
		CreatedBy: suite.inviter.ID,
	}
}

func (suite *InvitationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *InvitationServiceTestSuite) request(role models.InvitationRole) *service.CreateInvitationRequest {
	return &service.CreateInvitationRequest{
		Email:  suite.invitee.Email,
		UserID: suite.invitee.ID,
		Role:   role,
	}
}

func (suite *InvitationServiceTestSuite) TestInviteNotifiesInvitee() {
	suite.teamRepo.EXPECT().GetByID(gomock.Any(), suite.team.ID).Return(suite.team, nil)
	suite.memberRepo.EXPECT().IsMember(gomock.Any(), suite.team.ID, suite.inviter.ID).Return(true, nil)
	suite.userRepo.EXPECT().GetByID(gomock.Any(), suite.invitee.ID).Return(suite.invitee, nil)
	suite.memberRepo.EXPECT().IsMember(gomock.Any(), suite.team.ID, suite.invitee.ID).Return(false, nil)
	suite.invRepo.EXPECT().HasPending(gomock.Any(), suite.team.ID, suite.invitee.ID).Return(false, nil)
	runInline(suite.txm)
	suite.invRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	suite.notifier.EXPECT().Notify(gomock.Any(), suite.invitee.ID, models.NotificationTeamInvitation,
		"Alice invited you to join Platform as admin", gomock.Any()).Return(nil)
	suite.activity.EXPECT().Record(gomock.Any(), gomock.Any())

	inv, err := suite.svc.Invite(context.Background(), suite.inviter, suite.team.ID, suite.request(models.InvitationRoleAdmin))

	suite.Require().NoError(err)
	suite.Equal(models.RequestStatusPending, inv.Status)
	suite.Equal(suite.team.ID, inv.WorkspaceID)
	suite.Equal(suite.inviter.ID, inv.InvitedBy)
	suite.Equal(models.InvitationRoleAdmin, inv.Role)
}

func (suite *InvitationServiceTestSuite) TestInviteValidation() {
	testCases := []struct {
		name    string
		request *service.CreateInvitationRequest
	}{
		{name: "missing email", request: &service.CreateInvitationRequest{UserID: uuid.New(), Role: models.InvitationRoleMember}},
		{name: "malformed email", request: &service.CreateInvitationRequest{Email: "nope", UserID: uuid.New(), Role: models.InvitationRoleMember}},
		{name: "missing user", request: &service.CreateInvitationRequest{Email: "a@example.com", Role: models.InvitationRoleMember}},
		{name: "unknown role", request: &service.CreateInvitationRequest{Email: "a@example.com", UserID: uuid.New(), Role: "owner"}},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			_, err := suite.svc.Invite(context.Background(), suite.inviter, suite.team.ID, tc.request)
			suite.True(apperrors.IsValidation(err), "got %v", err)
		})
	}
}

func (suite *InvitationServiceTestSuite) TestInviteUnknownWorkspace() {
	suite.teamRepo.EXPECT().GetByID(gomock.Any(), suite.team.ID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.svc.Invite(context.Background(), suite.inviter, suite.team.ID, suite.request(models.InvitationRoleMember))

	suite.True(apperrors.IsValidation(err))
}

func (suite *InvitationServiceTestSuite) TestInviteEmailMismatch() {
	suite.teamRepo.EXPECT().GetByID(gomock.Any(), suite.team.ID).Return(suite.team, nil)
	suite.memberRepo.EXPECT().IsMember(gomock.Any(), suite.team.ID, suite.inviter.ID).Return(true, nil)
	suite.userRepo.EXPECT().GetByID(gomock.Any(), suite.invitee.ID).Return(suite.invitee, nil)

	req := suite.request(models.InvitationRoleMember)
	req.Email = "someone-else@example.com"
	_, err := suite.svc.Invite(context.Background(), suite.inviter, suite.team.ID, req)

	suite.True(apperrors.IsValidation(err))
}

func (suite *InvitationServiceTestSuite) TestInviteByOutsider() {
	suite.teamRepo.EXPECT().GetByID(gomock.Any(), suite.team.ID).Return(suite.team, nil)
	suite.memberRepo.EXPECT().IsMember(gomock.Any(), suite.team.ID, suite.inviter.ID).Return(false, nil)

	_, err := suite.svc.Invite(context.Background(), suite.inviter, suite.team.ID, suite.request(models.InvitationRoleMember))

	suite.ErrorIs(err, apperrors.ErrNotTeamMember)
}

func (suite *InvitationServiceTestSuite) TestInviteDuplicatePending() {
	suite.teamRepo.EXPECT().GetByID(gomock.Any(), suite.team.ID).Return(suite.team, nil)
	suite.memberRepo.EXPECT().IsMember(gomock.Any(), suite.team.ID, suite.inviter.ID).Return(true, nil)
	suite.userRepo.EXPECT().GetByID(gomock.Any(), suite.invitee.ID).Return(suite.invitee, nil)
	suite.memberRepo.EXPECT().IsMember(gomock.Any(), suite.team.ID, suite.invitee.ID).Return(false, nil)
	suite.invRepo.EXPECT().HasPending(gomock.Any(), suite.team.ID, suite.invitee.ID).Return(true, nil)

	_, err := suite.svc.Invite(context.Background(), suite.inviter, suite.team.ID, suite.request(models.InvitationRoleMember))

	suite.ErrorIs(err, apperrors.ErrInvitationPending)
}

func (suite *InvitationServiceTestSuite) pendingInvitation(role models.InvitationRole) *models.Invitation {
	return &models.Invitation{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		WorkspaceID: suite.team.ID,
		InvitedBy:   suite.inviter.ID,
		UserID:      suite.invitee.ID,
		Email:       suite.invitee.Email,
		Role:        role,
		Status:      models.RequestStatusPending,
	}
}

func (suite *InvitationServiceTestSuite) TestRespondAcceptedGrantsInvitationRole() {
	testCases := []struct {
		role     models.InvitationRole
		expected models.MembershipRole
	}{
		{role: models.InvitationRoleAdmin, expected: models.MembershipRoleAdmin},
		{role: models.InvitationRoleMember, expected: models.MembershipRoleMember},
	}

	for _, tc := range testCases {
		suite.Run(string(tc.role), func() {
			inv := suite.pendingInvitation(tc.role)
			suite.invRepo.EXPECT().GetByID(gomock.Any(), inv.ID).Return(inv, nil)
			runInline(suite.txm)
			suite.invRepo.EXPECT().Respond(gomock.Any(), inv.ID, models.RequestStatusAccepted, gomock.Any()).Return(true, nil)
			suite.memberRepo.EXPECT().AddMember(gomock.Any(), suite.team.ID, suite.invitee.ID, tc.expected).Return(nil)
			suite.activity.EXPECT().Record(gomock.Any(), gomock.Any())

			invitee := service.Actor{ID: suite.invitee.ID, Name: suite.invitee.Name}
			result, err := suite.svc.Respond(context.Background(), invitee, inv.ID, models.RequestStatusAccepted)

			suite.Require().NoError(err)
			suite.False(result.AlreadyProcessed)
			suite.Equal(models.RequestStatusAccepted, result.Invitation.Status)
			suite.NotNil(result.Invitation.RespondedAt)
		})
	}
}

func (suite *InvitationServiceTestSuite) TestRespondDeclined() {
	inv := suite.pendingInvitation(models.InvitationRoleMember)
	suite.invRepo.EXPECT().GetByID(gomock.Any(), inv.ID).Return(inv, nil)
	runInline(suite.txm)
	suite.invRepo.EXPECT().Respond(gomock.Any(), inv.ID, models.RequestStatusDeclined, gomock.Any()).Return(true, nil)
	suite.activity.EXPECT().Record(gomock.Any(), gomock.Any())

	result, err := suite.svc.Respond(context.Background(), service.Actor{ID: suite.invitee.ID}, inv.ID, models.RequestStatusDeclined)

	suite.Require().NoError(err)
	suite.Equal(models.RequestStatusDeclined, result.Invitation.Status)
}

func (suite *InvitationServiceTestSuite) TestRespondByOtherUser() {
	inv := suite.pendingInvitation(models.InvitationRoleMember)
	suite.invRepo.EXPECT().GetByID(gomock.Any(), inv.ID).Return(inv, nil)

	_, err := suite.svc.Respond(context.Background(), suite.inviter, inv.ID, models.RequestStatusAccepted)

	suite.ErrorIs(err, apperrors.ErrNotInvitee)
}

func (suite *InvitationServiceTestSuite) TestRespondAlreadyProcessed() {
	inv := suite.pendingInvitation(models.InvitationRoleMember)
	inv.Status = models.RequestStatusDeclined
	suite.invRepo.EXPECT().GetByID(gomock.Any(), inv.ID).Return(inv, nil)

	result, err := suite.svc.Respond(context.Background(), service.Actor{ID: suite.invitee.ID}, inv.ID, models.RequestStatusAccepted)

	suite.Require().NoError(err)
	suite.True(result.AlreadyProcessed)
	suite.Equal(models.RequestStatusDeclined, result.Invitation.Status)
}

func (suite *InvitationServiceTestSuite) TestRespondInvalidStatus() {
	_, err := suite.svc.Respond(context.Background(), service.Actor{ID: suite.invitee.ID}, uuid.New(), models.RequestStatusPending)

	suite.ErrorIs(err, apperrors.ErrInvalidStatus)
}

func (suite *InvitationServiceTestSuite) TestListMine() {
	invs := []models.Invitation{*suite.pendingInvitation(models.InvitationRoleMember)}
	suite.invRepo.EXPECT().ListByUser(gomock.Any(), suite.invitee.ID, models.RequestStatusPending).Return(invs, nil)

	result, err := suite.svc.ListMine(context.Background(), service.Actor{ID: suite.invitee.ID}, models.RequestStatusPending)

	suite.Require().NoError(err)
	suite.Len(result, 1)
}

func TestInvitationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvitationServiceTestSuite))
}
