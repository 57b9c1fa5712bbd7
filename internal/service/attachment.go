package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"trackflow-backend/internal/database/models"
	apperrors "trackflow-backend/internal/errors"
	"trackflow-backend/internal/logger"
	"trackflow-backend/internal/repository"
	"trackflow-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttachmentService stores task files in object storage
type AttachmentService struct {
	attachmentRepo repository.AttachmentRepositoryInterface
	taskRepo       repository.TaskRepositoryInterface
	projectRepo    repository.ProjectRepositoryInterface
	storage        ObjectStorage
	activity       ActivityRecorder
	maxSize        int64
}

// NewAttachmentService creates a new attachment service. A nil storage makes
// every operation fail with ErrStorageNotConfigured.
func NewAttachmentService(
	attachmentRepo repository.AttachmentRepositoryInterface,
	taskRepo repository.TaskRepositoryInterface,
	projectRepo repository.ProjectRepositoryInterface,
	storage ObjectStorage,
	activity ActivityRecorder,
	maxSize int64,
) *AttachmentService {
	return &AttachmentService{
		attachmentRepo: attachmentRepo,
		taskRepo:       taskRepo,
		projectRepo:    projectRepo,
		storage:        storage,
		activity:       activity,
		maxSize:        maxSize,
	}
}

// UploadFile is an incoming file
type UploadFile struct {
	Name        string
	Size        int64
	ContentType string
	Content     io.Reader
}

// AttachmentURLResponse carries a presigned download link
type AttachmentURLResponse struct {
	URL       string `json:"url"`
	ExpiresIn int    `json:"expires_in"`
}

// Upload stores a file for a task; project members only
func (s *AttachmentService) Upload(ctx context.Context, actor Actor, taskID uuid.UUID, file *UploadFile) (*models.Attachment, error) {
	if s.storage == nil {
		return nil, apperrors.ErrStorageNotConfigured
	}
	if file == nil || file.Size <= 0 {
		return nil, apperrors.ErrEmptyFile
	}
	if file.Size > s.maxSize {
		return nil, apperrors.ErrFileTooLarge
	}

	task, err := taskForMember(ctx, s.taskRepo, s.projectRepo, taskID, actor.ID)
	if err != nil {
		return nil, err
	}

	contentType := file.ContentType
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = storage.ContentType(file.Name)
	}

	attachment := &models.Attachment{
		TaskID:      task.ID,
		UploadedBy:  actor.ID,
		FileName:    file.Name,
		ObjectName:  storage.TaskObjectName(task.ID, file.Name),
		ContentType: contentType,
		Size:        file.Size,
	}

	if err := s.storage.Put(ctx, attachment.ObjectName, file.Content, file.Size, contentType); err != nil {
		return nil, fmt.Errorf("failed to upload file: %w", err)
	}

	if err := s.attachmentRepo.Create(ctx, attachment); err != nil {
		if rmErr := s.storage.Remove(context.WithoutCancel(ctx), attachment.ObjectName); rmErr != nil {
			logger.WithContext(ctx).WithError(rmErr).WithField("object", attachment.ObjectName).Warn("failed to remove orphaned object")
		}
		return nil, fmt.Errorf("failed to save attachment: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"object": attachment.ObjectName,
		"size":   attachment.Size,
	}).Info("attachment uploaded")

	s.activity.Record(ctx, &models.ActivityLog{
		ActorID:    actor.ID,
		Action:     "attachment.uploaded",
		EntityType: "task",
		EntityID:   task.ID,
		ProjectID:  &task.ProjectID,
		Details:    map[string]string{"attachment_id": attachment.ID.String(), "file_name": attachment.FileName},
	})

	return attachment, nil
}

// List lists a task's attachments
func (s *AttachmentService) List(ctx context.Context, actor Actor, taskID uuid.UUID) ([]models.Attachment, error) {
	if _, err := taskForMember(ctx, s.taskRepo, s.projectRepo, taskID, actor.ID); err != nil {
		return nil, err
	}
	attachments, err := s.attachmentRepo.ListByTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}
	return attachments, nil
}

// DownloadURL returns a presigned link to an attachment
func (s *AttachmentService) DownloadURL(ctx context.Context, actor Actor, id uuid.UUID) (string, error) {
	if s.storage == nil {
		return "", apperrors.ErrStorageNotConfigured
	}
	attachment, _, err := s.attachmentForMember(ctx, actor, id)
	if err != nil {
		return "", err
	}
	u, err := s.storage.PresignedGetURL(ctx, attachment.ObjectName, attachment.FileName)
	if err != nil {
		return "", fmt.Errorf("failed to create download url: %w", err)
	}
	return u, nil
}

// Delete removes an attachment; the uploader or the project owner only
func (s *AttachmentService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	if s.storage == nil {
		return apperrors.ErrStorageNotConfigured
	}
	attachment, task, err := s.attachmentForMember(ctx, actor, id)
	if err != nil {
		return err
	}

	if attachment.UploadedBy != actor.ID {
		project, err := getProject(ctx, s.projectRepo, task.ProjectID)
		if err != nil {
			return err
		}
		if project.OwnerID != actor.ID {
			return apperrors.ErrNotResourceAuthor
		}
	}

	if err := s.storage.Remove(ctx, attachment.ObjectName); err != nil {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	if err := s.attachmentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete attachment: %w", err)
	}

	s.activity.Record(ctx, &models.ActivityLog{
		ActorID:    actor.ID,
		Action:     "attachment.deleted",
		EntityType: "task",
		EntityID:   task.ID,
		ProjectID:  &task.ProjectID,
		Details:    map[string]string{"attachment_id": attachment.ID.String()},
	})
	return nil
}

func (s *AttachmentService) attachmentForMember(ctx context.Context, actor Actor, id uuid.UUID) (*models.Attachment, *models.Task, error) {
	attachment, err := s.attachmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrAttachmentNotFound
		}
		return nil, nil, fmt.Errorf("failed to get attachment: %w", err)
	}
	task, err := taskForMember(ctx, s.taskRepo, s.projectRepo, attachment.TaskID, actor.ID)
	if err != nil {
		return nil, nil, err
	}
	return attachment, task, nil
}
