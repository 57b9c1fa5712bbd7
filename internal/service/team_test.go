package service_test

import (
	"context"
	"errors"
	"strings"
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

// TeamServiceTestSuite defines the test suite for TeamService
type TeamServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	txm         *mocks.MockTransactionManagerInterface
	teamRepo    *mocks.MockTeamRepositoryInterface
	memberRepo  *mocks.MockMembershipRepositoryInterface
	joinRepo    *mocks.MockJoinRequestRepositoryInterface
	leaveRepo   *mocks.MockLeaveRequestRepositoryInterface
	invRepo     *mocks.MockInvitationRepositoryInterface
	projectRepo *mocks.MockProjectRepositoryInterface
	activity    *mocks.MockActivityRecorder
	svc         *service.TeamService

	actor service.Actor
}

func (suite *TeamServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.txm = mocks.NewMockTransactionManagerInterface(suite.ctrl)
	suite.teamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.memberRepo = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.joinRepo = mocks.NewMockJoinRequestRepositoryInterface(suite.ctrl)
	suite.leaveRepo = mocks.NewMockLeaveRequestRepositoryInterface(suite.ctrl)
	suite.invRepo = mocks.NewMockInvitationRepositoryInterface(suite.ctrl)
	suite.projectRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.activity = mocks.NewMockActivityRecorder(suite.ctrl)
	suite.svc = service.NewTeamService(suite.txm, service.TeamRepositories{
		Teams:         suite.teamRepo,
		Memberships:   suite.memberRepo,
		JoinRequests:  suite.joinRepo,
		LeaveRequests: suite.leaveRepo,
		Invitations:   suite.invRepo,
		Projects:      suite.projectRepo,
	}, suite.activity, service.NewValidator())

	suite.actor = service.Actor{ID: uuid.New(), Name: "Alice"}
}

func (suite *TeamServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamServiceTestSuite) TestCreateMakesCreatorLeader() {
	runInline(suite.txm)
	suite.teamRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	suite.memberRepo.EXPECT().AddMember(gomock.Any(), gomock.Any(), suite.actor.ID, models.MembershipRoleLeader).Return(nil)
	suite.activity.EXPECT().Record(gomock.Any(), gomock.Any())

	team, err := suite.svc.Create(context.Background(), suite.actor, &service.CreateTeamRequest{Name: "Platform"})

	suite.Require().NoError(err)
	suite.Equal("Platform", team.Name)
	suite.Equal(suite.actor.ID, team.CreatedBy)
	suite.Nil(team.ProjectID)
}

func (suite *TeamServiceTestSuite) TestCreateWithProjectJoinsProjectSet() {
	projectID := uuid.New()
	suite.projectRepo.EXPECT().GetByID(gomock.Any(), projectID).Return(&models.Project{BaseModel: models.BaseModel{ID: projectID}}, nil)
	suite.projectRepo.EXPECT().IsMember(gomock.Any(), projectID, suite.actor.ID).Return(true, nil)
	runInline(suite.txm)
	suite.teamRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	suite.memberRepo.EXPECT().AddMember(gomock.Any(), gomock.Any(), suite.actor.ID, models.MembershipRoleLeader).Return(nil)
	suite.projectRepo.EXPECT().AddMember(gomock.Any(), projectID, suite.actor.ID).Return(nil)
	suite.activity.EXPECT().Record(gomock.Any(), gomock.Any())

	team, err := suite.svc.Create(context.Background(), suite.actor, &service.CreateTeamRequest{Name: "Platform", ProjectID: &projectID})

	suite.Require().NoError(err)
	suite.Equal(&projectID, team.ProjectID)
}

func (suite *TeamServiceTestSuite) TestCreateValidation() {
	testCases := []struct {
		name    string
		request *service.CreateTeamRequest
		field   string
	}{
		{name: "empty name", request: &service.CreateTeamRequest{}, field: "name"},
		{name: "name too long", request: &service.CreateTeamRequest{Name: strings.Repeat("a", 101)}, field: "name"},
		{name: "description too long", request: &service.CreateTeamRequest{Name: "ok", Description: strings.Repeat("d", 501)}, field: "description"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			_, err := suite.svc.Create(context.Background(), suite.actor, tc.request)

			var vErr *apperrors.ValidationError
			suite.Require().True(errors.As(err, &vErr), "got %v", err)
			suite.Equal(tc.field, vErr.Field)
		})
	}
}

func (suite *TeamServiceTestSuite) TestCreateRollsBackWhenLeaderInsertFails() {
	runInline(suite.txm)
	suite.teamRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	suite.memberRepo.EXPECT().AddMember(gomock.Any(), gomock.Any(), suite.actor.ID, models.MembershipRoleLeader).Return(errors.New("boom"))

	_, err := suite.svc.Create(context.Background(), suite.actor, &service.CreateTeamRequest{Name: "Platform"})

	suite.ErrorContains(err, "failed to add team leader")
}

func (suite *TeamServiceTestSuite) TestListMembersHiddenFromOutsiders() {
	team := &models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, CreatedBy: uuid.New()}
	suite.teamRepo.EXPECT().GetByID(gomock.Any(), team.ID).Return(team, nil)
	suite.memberRepo.EXPECT().IsMember(gomock.Any(), team.ID, suite.actor.ID).Return(false, nil)

	_, err := suite.svc.ListMembers(context.Background(), suite.actor, team.ID)

	suite.ErrorIs(err, apperrors.ErrNotTeamVisible)
}

func (suite *TeamServiceTestSuite) TestListMembersForCreator() {
	team := &models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, CreatedBy: suite.actor.ID}
	members := []models.TeamMemberWithUser{{TeamID: team.ID, UserID: suite.actor.ID, Role: models.MembershipRoleLeader}}
	suite.teamRepo.EXPECT().GetByID(gomock.Any(), team.ID).Return(team, nil)
	suite.memberRepo.EXPECT().ListByTeam(gomock.Any(), team.ID).Return(members, nil)

	result, err := suite.svc.ListMembers(context.Background(), suite.actor, team.ID)

	suite.Require().NoError(err)
	suite.Equal(members, result)
}

func (suite *TeamServiceTestSuite) TestDeleteCascades() {
	team := &models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Platform", CreatedBy: suite.actor.ID}
	suite.teamRepo.EXPECT().GetByID(gomock.Any(), team.ID).Return(team, nil)
	runInline(suite.txm)
	gomock.InOrder(
		suite.memberRepo.EXPECT().DeleteByTeam(gomock.Any(), team.ID).Return(nil),
		suite.joinRepo.EXPECT().DeleteByTeam(gomock.Any(), team.ID).Return(nil),
		suite.leaveRepo.EXPECT().DeleteByTeam(gomock.Any(), team.ID).Return(nil),
		suite.invRepo.EXPECT().DeleteByWorkspace(gomock.Any(), team.ID).Return(nil),
		suite.teamRepo.EXPECT().Delete(gomock.Any(), team.ID).Return(nil),
	)
	suite.activity.EXPECT().Record(gomock.Any(), gomock.Any())

	suite.NoError(suite.svc.Delete(context.Background(), suite.actor, team.ID))
}

func (suite *TeamServiceTestSuite) TestDeleteByNonCreator() {
	team := &models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, CreatedBy: uuid.New()}
	suite.teamRepo.EXPECT().GetByID(gomock.Any(), team.ID).Return(team, nil)

	err := suite.svc.Delete(context.Background(), suite.actor, team.ID)

	suite.ErrorIs(err, apperrors.ErrNotTeamCreator)
}

func (suite *TeamServiceTestSuite) TestGetByIDNotFound() {
	id := uuid.New()
	suite.teamRepo.EXPECT().GetByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.svc.GetByID(context.Background(), id)

	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
}

func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
