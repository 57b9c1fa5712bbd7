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
)

// LeaveRequestServiceTestSuite defines the test suite for LeaveRequestService
type LeaveRequestServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	txm        *mocks.MockTransactionManagerInterface
	teamRepo   *mocks.MockTeamRepositoryInterface
	leaveRepo  *mocks.MockLeaveRequestRepositoryInterface
	memberRepo *mocks.MockMembershipRepositoryInterface
	notifier   *mocks.MockNotifier
	activity   *mocks.MockActivityRecorder
	svc        *service.LeaveRequestService

	creator service.Actor
	member  service.Actor
	team    *models.Team
}

func (suite *LeaveRequestServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.txm = mocks.NewMockTransactionManagerInterface(suite.ctrl)
	suite.teamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.leaveRepo = mocks.NewMockLeaveRequestRepositoryInterface(suite.ctrl)
	suite.memberRepo = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.notifier = mocks.NewMockNotifier(suite.ctrl)
	suite.activity = mocks.NewMockActivityRecorder(suite.ctrl)
	suite.svc = service.NewLeaveRequestService(suite.txm, suite.teamRepo, suite.leaveRepo,
		suite.memberRepo, suite.notifier, suite.activity)

	suite.creator = service.Actor{ID: uuid.New(), Name: "Alice"}
	suite.member = service.Actor{ID: uuid.New(), Name: "Carol"}
	suite.team = &models.Team{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Platform",
		CreatedBy: suite.creator.ID,
	}
}

func (suite *LeaveRequestServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *LeaveRequestServiceTestSuite) expectSubmit(reason string) {
	suite.teamRepo.EXPECT().GetByID(gomock.Any(), suite.team.ID).Return(suite.team, nil)
	suite.memberRepo.EXPECT().IsMember(gomock.Any(), suite.team.ID, suite.member.ID).Return(true, nil)
	suite.leaveRepo.EXPECT().HasPending(gomock.Any(), suite.team.ID, suite.member.ID).Return(false, nil)
	runInline(suite.txm)
	suite.leaveRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	suite.notifier.EXPECT().Notify(gomock.Any(), suite.creator.ID, models.NotificationLeaveRequest,
		"Carol has requested to leave your team Platform. Reason: "+reason, gomock.Any()).Return(nil)
	suite.activity.EXPECT().Record(gomock.Any(), gomock.Any())
}

func (suite *LeaveRequestServiceTestSuite) TestSubmitReasonLength() {
	testCases := []struct {
		name        string
		reason      string
		expectError bool
	}{
		{name: "four characters", reason: "abcd", expectError: true},
		{name: "padding does not count", reason: "  abcd   ", expectError: true},
		{name: "empty", reason: "", expectError: true},
		{name: "five characters", reason: "abcde"},
		{name: "multibyte characters count once", reason: "ñandú"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			if !tc.expectError {
				suite.expectSubmit(tc.reason)
			}

			req, err := suite.svc.Submit(context.Background(), suite.member, suite.team.ID, tc.reason)

			if tc.expectError {
				suite.ErrorIs(err, apperrors.ErrReasonTooShort)
				return
			}
			suite.Require().NoError(err)
			suite.Equal(tc.reason, req.Reason)
			suite.Equal(models.RequestStatusPending, req.Status)
		})
	}
}

func (suite *LeaveRequestServiceTestSuite) TestSubmitTrimsReason() {
	suite.expectSubmit("switching teams")

	req, err := suite.svc.Submit(context.Background(), suite.member, suite.team.ID, "  switching teams \n")

	suite.Require().NoError(err)
	suite.Equal("switching teams", req.Reason)
}

func (suite *LeaveRequestServiceTestSuite) TestSubmitByCreator() {
	suite.teamRepo.EXPECT().GetByID(gomock.Any(), suite.team.ID).Return(suite.team, nil)

	_, err := suite.svc.Submit(context.Background(), suite.creator, suite.team.ID, "burned out")

	suite.ErrorIs(err, apperrors.ErrLeaderCannotLeave)
}

func (suite *LeaveRequestServiceTestSuite) TestSubmitByNonMember() {
	suite.teamRepo.EXPECT().GetByID(gomock.Any(), suite.team.ID).Return(suite.team, nil)
	suite.memberRepo.EXPECT().IsMember(gomock.Any(), suite.team.ID, suite.member.ID).Return(false, nil)

	_, err := suite.svc.Submit(context.Background(), suite.member, suite.team.ID, "not my team")

	suite.ErrorIs(err, apperrors.ErrNotTeamMember)
}

func (suite *LeaveRequestServiceTestSuite) TestSubmitDuplicatePending() {
	suite.teamRepo.EXPECT().GetByID(gomock.Any(), suite.team.ID).Return(suite.team, nil)
	suite.memberRepo.EXPECT().IsMember(gomock.Any(), suite.team.ID, suite.member.ID).Return(true, nil)
	suite.leaveRepo.EXPECT().HasPending(gomock.Any(), suite.team.ID, suite.member.ID).Return(true, nil)

	_, err := suite.svc.Submit(context.Background(), suite.member, suite.team.ID, "second try")

	suite.ErrorIs(err, apperrors.ErrLeaveRequestPending)
}

func (suite *LeaveRequestServiceTestSuite) TestResolveAcceptedRemovesMembership() {
	req := &models.LeaveRequest{
		BaseModel: models.BaseModel{ID: uuid.New()},
		TeamID:    suite.team.ID,
		UserID:    suite.member.ID,
		Reason:    "relocating",
		Status:    models.RequestStatusPending,
	}
	suite.leaveRepo.EXPECT().GetByID(gomock.Any(), req.ID).Return(req, nil)
	suite.teamRepo.EXPECT().GetByID(gomock.Any(), suite.team.ID).Return(suite.team, nil)
	runInline(suite.txm)
	suite.leaveRepo.EXPECT().Resolve(gomock.Any(), req.ID, models.RequestStatusAccepted, suite.creator.ID, gomock.Any()).Return(true, nil)
	suite.memberRepo.EXPECT().RemoveMember(gomock.Any(), suite.team.ID, suite.member.ID).Return(int64(1), nil)
	suite.notifier.EXPECT().Notify(gomock.Any(), suite.member.ID, models.NotificationLeaveRequestResponse,
		"Your request to leave Platform has been accepted", gomock.Any()).Return(nil)
	suite.activity.EXPECT().Record(gomock.Any(), gomock.Any())

	result, err := suite.svc.Resolve(context.Background(), suite.creator, req.ID, models.RequestStatusAccepted)

	suite.Require().NoError(err)
	suite.False(result.AlreadyProcessed)
	suite.Equal(models.RequestStatusAccepted, result.Request.Status)
}

func (suite *LeaveRequestServiceTestSuite) TestResolveLostRace() {
	req := &models.LeaveRequest{
		BaseModel: models.BaseModel{ID: uuid.New()},
		TeamID:    suite.team.ID,
		UserID:    suite.member.ID,
		Status:    models.RequestStatusPending,
	}
	current := *req
	current.Status = models.RequestStatusAccepted
	gomock.InOrder(
		suite.leaveRepo.EXPECT().GetByID(gomock.Any(), req.ID).Return(req, nil),
		suite.leaveRepo.EXPECT().GetByID(gomock.Any(), req.ID).Return(&current, nil),
	)
	suite.teamRepo.EXPECT().GetByID(gomock.Any(), suite.team.ID).Return(suite.team, nil)
	runInline(suite.txm)
	suite.leaveRepo.EXPECT().Resolve(gomock.Any(), req.ID, models.RequestStatusAccepted, suite.creator.ID, gomock.Any()).Return(false, nil)

	result, err := suite.svc.Resolve(context.Background(), suite.creator, req.ID, models.RequestStatusAccepted)

	suite.Require().NoError(err)
	suite.True(result.AlreadyProcessed)
}

func (suite *LeaveRequestServiceTestSuite) TestResolveByNonCreator() {
	req := &models.LeaveRequest{
		BaseModel: models.BaseModel{ID: uuid.New()},
		TeamID:    suite.team.ID,
		UserID:    suite.member.ID,
		Status:    models.RequestStatusPending,
	}
	suite.leaveRepo.EXPECT().GetByID(gomock.Any(), req.ID).Return(req, nil)
	suite.teamRepo.EXPECT().GetByID(gomock.Any(), suite.team.ID).Return(suite.team, nil)

	_, err := suite.svc.Resolve(context.Background(), suite.member, req.ID, models.RequestStatusAccepted)

	suite.ErrorIs(err, apperrors.ErrNotTeamCreator)
}

func TestLeaveRequestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LeaveRequestServiceTestSuite))
}
