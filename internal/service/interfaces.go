package service

import (
	"context"
	"io"

	"trackflow-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// Actor is the authenticated user performing an operation
type Actor struct {
	ID    uuid.UUID
	Name  string
	Email string
}

// Notifier appends a notification for a user. Called with a transactional
// context, the insert joins that transaction.
type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, notificationType models.NotificationType, message string, data map[string]string) error
}

// ActivityRecorder appends an audit entry. Failures are logged, never returned.
type ActivityRecorder interface {
	Record(ctx context.Context, entry *models.ActivityLog)
}

// ObjectStorage keeps attachment bytes
type ObjectStorage interface {
	Put(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error
	Remove(ctx context.Context, objectName string) error
	PresignedGetURL(ctx context.Context, objectName, downloadName string) (string, error)
}

// JoinRequestServiceInterface defines the interface for the join request workflow
type JoinRequestServiceInterface interface {
	Submit(ctx context.Context, actor Actor, teamID uuid.UUID) (*models.JoinRequest, error)
	ListByTeam(ctx context.Context, actor Actor, teamID uuid.UUID, status models.RequestStatus) ([]models.RequestWithUser, error)
	ListMine(ctx context.Context, actor Actor) ([]models.JoinRequest, error)
	Resolve(ctx context.Context, actor Actor, requestID uuid.UUID, decision models.RequestStatus) (*JoinRequestResolution, error)
}

// LeaveRequestServiceInterface defines the interface for the leave request workflow
type LeaveRequestServiceInterface interface {
	Submit(ctx context.Context, actor Actor, teamID uuid.UUID, reason string) (*models.LeaveRequest, error)
	ListByTeam(ctx context.Context, actor Actor, teamID uuid.UUID, status models.RequestStatus) ([]models.RequestWithUser, error)
	Resolve(ctx context.Context, actor Actor, requestID uuid.UUID, decision models.RequestStatus) (*LeaveRequestResolution, error)
}

// InvitationServiceInterface defines the interface for the invitation workflow
type InvitationServiceInterface interface {
	Invite(ctx context.Context, actor Actor, workspaceID uuid.UUID, req *CreateInvitationRequest) (*models.Invitation, error)
	ListMine(ctx context.Context, actor Actor, status models.RequestStatus) ([]models.Invitation, error)
	Respond(ctx context.Context, actor Actor, invitationID uuid.UUID, status models.RequestStatus) (*InvitationResponse, error)
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	Create(ctx context.Context, actor Actor, req *CreateTeamRequest) (*models.Team, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error)
	ListMine(ctx context.Context, actor Actor) ([]models.TeamWithMemberCount, error)
	ListMembers(ctx context.Context, actor Actor, teamID uuid.UUID) ([]models.TeamMemberWithUser, error)
	Delete(ctx context.Context, actor Actor, teamID uuid.UUID) error
}

// ProjectServiceInterface defines the interface for project service
type ProjectServiceInterface interface {
	Create(ctx context.Context, actor Actor, req *CreateProjectRequest) (*models.Project, error)
	GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*models.Project, error)
	ListMine(ctx context.Context, actor Actor) ([]models.Project, error)
	Update(ctx context.Context, actor Actor, id uuid.UUID, req *UpdateProjectRequest) (*models.Project, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
	AddMember(ctx context.Context, actor Actor, id, userID uuid.UUID) error
	ListMembers(ctx context.Context, actor Actor, id uuid.UUID) ([]models.ProjectMemberWithUser, error)
}

// TaskServiceInterface defines the interface for task service
type TaskServiceInterface interface {
	Create(ctx context.Context, actor Actor, projectID uuid.UUID, req *CreateTaskRequest) (*models.Task, error)
	GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*models.Task, error)
	ListByProject(ctx context.Context, actor Actor, projectID uuid.UUID, status models.TaskStatus, assigneeID *uuid.UUID) ([]models.Task, error)
	ListSubtasks(ctx context.Context, actor Actor, taskID uuid.UUID) ([]models.Task, error)
	Update(ctx context.Context, actor Actor, id uuid.UUID, req *UpdateTaskRequest) (*models.Task, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
}

// CommentServiceInterface defines the interface for comment service
type CommentServiceInterface interface {
	Add(ctx context.Context, actor Actor, taskID uuid.UUID, req *CreateCommentRequest) (*models.Comment, error)
	List(ctx context.Context, actor Actor, taskID uuid.UUID) ([]models.Comment, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
}

// TimeLogServiceInterface defines the interface for time log service
type TimeLogServiceInterface interface {
	Log(ctx context.Context, actor Actor, taskID uuid.UUID, req *CreateTimeLogRequest) (*models.TimeLog, error)
	ListByTask(ctx context.Context, actor Actor, taskID uuid.UUID) (*TimeLogListResponse, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
}

// NotificationServiceInterface defines the interface for notification service
type NotificationServiceInterface interface {
	ListMine(ctx context.Context, actor Actor, unreadOnly bool, page, pageSize int) (*NotificationListResponse, error)
	UnreadCount(ctx context.Context, actor Actor) (int64, error)
	MarkRead(ctx context.Context, actor Actor, id uuid.UUID) error
	MarkAllRead(ctx context.Context, actor Actor) (int64, error)
}

// ActivityServiceInterface defines the interface for reading the activity log
type ActivityServiceInterface interface {
	ListByProject(ctx context.Context, actor Actor, projectID uuid.UUID, limit int) ([]models.ActivityLog, error)
	ListMine(ctx context.Context, actor Actor, limit int) ([]models.ActivityLog, error)
}

// AttachmentServiceInterface defines the interface for attachment service
type AttachmentServiceInterface interface {
	Upload(ctx context.Context, actor Actor, taskID uuid.UUID, file *UploadFile) (*models.Attachment, error)
	List(ctx context.Context, actor Actor, taskID uuid.UUID) ([]models.Attachment, error)
	DownloadURL(ctx context.Context, actor Actor, id uuid.UUID) (string, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
}

// ReportServiceInterface defines the interface for PDF reporting
type ReportServiceInterface interface {
	ProjectReport(ctx context.Context, actor Actor, projectID uuid.UUID) (*Report, error)
}
