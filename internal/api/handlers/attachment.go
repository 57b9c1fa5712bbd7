package handlers

import (
	"errors"
	"net/http"

	"trackflow-backend/internal/service"
	"trackflow-backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// multipartOverhead is the slack allowed on top of the file for form boundaries and headers
const multipartOverhead = 1 << 20

// AttachmentHandler handles HTTP requests for task attachments
type AttachmentHandler struct {
	attachmentService service.AttachmentServiceInterface
	maxUploadSize     int64
}

// NewAttachmentHandler creates a new attachment handler
func NewAttachmentHandler(attachmentService service.AttachmentServiceInterface, maxUploadSize int64) *AttachmentHandler {
	return &AttachmentHandler{
		attachmentService: attachmentService,
		maxUploadSize:     maxUploadSize,
	}
}

// UploadAttachment handles POST /tasks/:id/attachments
// @Summary Upload an attachment
// @Description Upload a file to a task as multipart form field "file"
// @Tags attachments
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Param file formData file true "File to upload"
// @Success 201 {object} models.Attachment "Attachment stored"
// @Failure 400 {object} map[string]interface{} "Missing, empty or oversized file"
// @Failure 403 {object} map[string]interface{} "Not a project member"
// @Failure 404 {object} map[string]interface{} "Task not found"
// @Failure 503 {object} map[string]interface{} "Object storage not configured"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tasks/{id}/attachments [post]
func (h *AttachmentHandler) UploadAttachment(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "id", "task")
	if !ok {
		return
	}

	if h.maxUploadSize > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadSize+multipartOverhead)
	}
	header, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file exceeds the maximum upload size"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	file, err := header.Open()
	if err != nil {
		handleError(c, err)
		return
	}
	defer file.Close()

	attachment, err := h.attachmentService.Upload(c.Request.Context(), actor, taskID, &service.UploadFile{
		Name:        header.Filename,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
		Content:     file,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, attachment)
}

// ListAttachments handles GET /tasks/:id/attachments
// @Summary List a task's attachments
// @Tags attachments
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Success 200 {array} models.Attachment "Attachments"
// @Failure 400 {object} map[string]interface{} "Invalid task ID"
// @Failure 403 {object} map[string]interface{} "Not a project member"
// @Failure 404 {object} map[string]interface{} "Task not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tasks/{id}/attachments [get]
func (h *AttachmentHandler) ListAttachments(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "id", "task")
	if !ok {
		return
	}

	attachments, err := h.attachmentService.List(c.Request.Context(), actor, taskID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, attachments)
}

// DownloadAttachment handles GET /attachments/:id/download
// @Summary Get a download link
// @Description Return a presigned link to the attachment, valid for 15 minutes
// @Tags attachments
// @Produce json
// @Param id path string true "Attachment ID (UUID)"
// @Success 200 {object} service.AttachmentURLResponse "Download link"
// @Failure 400 {object} map[string]interface{} "Invalid attachment ID"
// @Failure 403 {object} map[string]interface{} "Not a project member"
// @Failure 404 {object} map[string]interface{} "Attachment not found"
// @Failure 503 {object} map[string]interface{} "Object storage not configured"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /attachments/{id}/download [get]
func (h *AttachmentHandler) DownloadAttachment(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id", "attachment")
	if !ok {
		return
	}

	url, err := h.attachmentService.DownloadURL(c.Request.Context(), actor, id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, service.AttachmentURLResponse{
		URL:       url,
		ExpiresIn: int(storage.PresignExpiry.Seconds()),
	})
}

// DeleteAttachment handles DELETE /attachments/:id
// @Summary Delete an attachment
// @Description Delete an attachment and its stored object. Uploader or project owner only.
// @Tags attachments
// @Param id path string true "Attachment ID (UUID)"
// @Success 204 "Attachment deleted"
// @Failure 400 {object} map[string]interface{} "Invalid attachment ID"
// @Failure 403 {object} map[string]interface{} "Not allowed to delete this attachment"
// @Failure 404 {object} map[string]interface{} "Attachment not found"
// @Failure 503 {object} map[string]interface{} "Object storage not configured"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /attachments/{id} [delete]
func (h *AttachmentHandler) DeleteAttachment(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id", "attachment")
	if !ok {
		return
	}

	if err := h.attachmentService.Delete(c.Request.Context(), actor, id); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
