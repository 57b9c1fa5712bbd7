package repository

import (
	"context"
	"time"

	"trackflow-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TransactionManagerInterface runs a function inside a database transaction.
// Repositories called with the ctx passed to fn join that transaction.
type TransactionManagerInterface interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.User, error)
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error)
	ListByMember(ctx context.Context, userID uuid.UUID) ([]models.TeamWithMemberCount, error)
	ClearProject(ctx context.Context, projectID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// MembershipRepositoryInterface defines the membership ledger operations
type MembershipRepositoryInterface interface {
	AddMember(ctx context.Context, teamID, userID uuid.UUID, role models.MembershipRole) error
	RemoveMember(ctx context.Context, teamID, userID uuid.UUID) (int64, error)
	ListByTeam(ctx context.Context, teamID uuid.UUID) ([]models.TeamMemberWithUser, error)
	CountByTeam(ctx context.Context, teamID uuid.UUID) (int64, error)
	IsMember(ctx context.Context, teamID, userID uuid.UUID) (bool, error)
	DeleteByTeam(ctx context.Context, teamID uuid.UUID) error
}

// JoinRequestRepositoryInterface defines the interface for join request repository operations
type JoinRequestRepositoryInterface interface {
	Create(ctx context.Context, req *models.JoinRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.JoinRequest, error)
	HasPending(ctx context.Context, teamID, userID uuid.UUID) (bool, error)
	ListByTeam(ctx context.Context, teamID uuid.UUID, status models.RequestStatus) ([]models.RequestWithUser, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.JoinRequest, error)
	Resolve(ctx context.Context, id uuid.UUID, to models.RequestStatus, resolvedBy uuid.UUID, at time.Time) (bool, error)
	DeleteByTeam(ctx context.Context, teamID uuid.UUID) error
}

// LeaveRequestRepositoryInterface defines the interface for leave request repository operations
type LeaveRequestRepositoryInterface interface {
	Create(ctx context.Context, req *models.LeaveRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.LeaveRequest, error)
	HasPending(ctx context.Context, teamID, userID uuid.UUID) (bool, error)
	ListByTeam(ctx context.Context, teamID uuid.UUID, status models.RequestStatus) ([]models.RequestWithUser, error)
	Resolve(ctx context.Context, id uuid.UUID, to models.RequestStatus, resolvedBy uuid.UUID, at time.Time) (bool, error)
	DeleteByTeam(ctx context.Context, teamID uuid.UUID) error
}

// InvitationRepositoryInterface defines the interface for invitation repository operations
type InvitationRepositoryInterface interface {
	Create(ctx context.Context, inv *models.Invitation) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Invitation, error)
	HasPending(ctx context.Context, workspaceID, userID uuid.UUID) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID, status models.RequestStatus) ([]models.Invitation, error)
	Respond(ctx context.Context, id uuid.UUID, to models.RequestStatus, at time.Time) (bool, error)
	DeleteByWorkspace(ctx context.Context, workspaceID uuid.UUID) error
}

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	ListByMember(ctx context.Context, userID uuid.UUID) ([]models.Project, error)
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	AddMember(ctx context.Context, projectID, userID uuid.UUID) error
	IsMember(ctx context.Context, projectID, userID uuid.UUID) (bool, error)
	ListMembers(ctx context.Context, projectID uuid.UUID) ([]models.ProjectMemberWithUser, error)
	DeleteMembers(ctx context.Context, projectID uuid.UUID) error
}

// TaskFilter narrows ListByProject; zero values match everything
type TaskFilter struct {
	Status     models.TaskStatus
	AssigneeID *uuid.UUID
}

// TaskRepositoryInterface defines the interface for task repository operations
type TaskRepositoryInterface interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	ListByProject(ctx context.Context, projectID uuid.UUID, filter TaskFilter) ([]models.Task, error)
	ListAllByProject(ctx context.Context, projectID uuid.UUID) ([]models.Task, error)
	ListSubtasks(ctx context.Context, parentID uuid.UUID) ([]models.Task, error)
	CountByStatus(ctx context.Context, projectID uuid.UUID) (map[models.TaskStatus]int64, error)
	Update(ctx context.Context, task *models.Task) error
	TreeIDs(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error)
	IDsByProject(ctx context.Context, projectID uuid.UUID) ([]uuid.UUID, error)
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) error
}

// CommentRepositoryInterface defines the interface for comment repository operations
type CommentRepositoryInterface interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Comment, error)
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]models.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByTasks(ctx context.Context, taskIDs []uuid.UUID) error
}

// TimeLogRepositoryInterface defines the interface for time log repository operations
type TimeLogRepositoryInterface interface {
	Create(ctx context.Context, log *models.TimeLog) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.TimeLog, error)
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]models.TimeLog, error)
	TotalMinutesByTasks(ctx context.Context, taskIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByTasks(ctx context.Context, taskIDs []uuid.UUID) error
}

// AttachmentRepositoryInterface defines the interface for attachment metadata operations
type AttachmentRepositoryInterface interface {
	Create(ctx context.Context, attachment *models.Attachment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Attachment, error)
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]models.Attachment, error)
	ListByTasks(ctx context.Context, taskIDs []uuid.UUID) ([]models.Attachment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByTasks(ctx context.Context, taskIDs []uuid.UUID) error
}

// NotificationRepositoryInterface defines the interface for notification repository operations
type NotificationRepositoryInterface interface {
	Create(ctx context.Context, notification *models.Notification) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Notification, error)
	ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]models.Notification, int64, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
}

// ActivityLogRepositoryInterface is implemented by the postgres and mongo activity stores
type ActivityLogRepositoryInterface interface {
	Create(ctx context.Context, entry *models.ActivityLog) error
	ListByProject(ctx context.Context, projectID uuid.UUID, limit int) ([]models.ActivityLog, error)
	ListByActor(ctx context.Context, actorID uuid.UUID, limit int) ([]models.ActivityLog, error)
}
