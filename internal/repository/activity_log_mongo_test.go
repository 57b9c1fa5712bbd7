package repository

import (
	"testing"
	"time"

	"trackflow-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityDocumentConversion(t *testing.T) {
	projectID := uuid.New()
	entry := &models.ActivityLog{
		ID:         uuid.New(),
		ActorID:    uuid.New(),
		Action:     "task.created",
		EntityType: "task",
		EntityID:   uuid.New(),
		ProjectID:  &projectID,
		Details:    map[string]string{"title": "Write docs"},
		CreatedAt:  time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	doc := toActivityDocument(entry)
	assert.Equal(t, entry.ID.String(), doc.ID)
	assert.Equal(t, projectID.String(), doc.ProjectID)

	back, err := doc.toModel()
	require.NoError(t, err)
	assert.Equal(t, *entry, back)
}

func TestActivityDocumentWithoutProject(t *testing.T) {
	entry := &models.ActivityLog{
		ID:         uuid.New(),
		ActorID:    uuid.New(),
		Action:     "team.created",
		EntityType: "team",
		EntityID:   uuid.New(),
	}

	doc := toActivityDocument(entry)
	assert.Empty(t, doc.ProjectID)

	back, err := doc.toModel()
	require.NoError(t, err)
	assert.Nil(t, back.ProjectID)
}

func TestActivityDocumentInvalidID(t *testing.T) {
	doc := activityDocument{ID: "not-a-uuid"}
	_, err := doc.toModel()
	assert.Error(t, err)
}
