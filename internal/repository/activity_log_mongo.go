package repository

import (
	"context"
	"fmt"
	"time"

	"trackflow-backend/internal/database/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const activityLogCollection = "activity_logs"

// activityDocument is the bson shape of an activity entry; ids are kept as strings
type activityDocument struct {
	ID         string            `bson:"_id"`
	ActorID    string            `bson:"actor_id"`
	Action     string            `bson:"action"`
	EntityType string            `bson:"entity_type"`
	EntityID   string            `bson:"entity_id"`
	ProjectID  string            `bson:"project_id,omitempty"`
	Details    map[string]string `bson:"details,omitempty"`
	CreatedAt  time.Time         `bson:"created_at"`
}

// MongoActivityLogRepository stores activity entries in a mongo collection
type MongoActivityLogRepository struct {
	collection *mongo.Collection
}

// NewMongoActivityLogRepository creates a repository over the activity_logs collection of db
func NewMongoActivityLogRepository(db *mongo.Database) *MongoActivityLogRepository {
	return &MongoActivityLogRepository{collection: db.Collection(activityLogCollection)}
}

// EnsureIndexes creates the lookup indexes used by the list queries
func (r *MongoActivityLogRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "project_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "actor_id", Value: 1}, {Key: "created_at", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create activity log indexes: %w", err)
	}
	return nil
}

// Create appends an entry
func (r *MongoActivityLogRepository) Create(ctx context.Context, entry *models.ActivityLog) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	if _, err := r.collection.InsertOne(ctx, toActivityDocument(entry)); err != nil {
		return fmt.Errorf("failed to insert activity log: %w", err)
	}
	return nil
}

// ListByProject lists a project's newest entries
func (r *MongoActivityLogRepository) ListByProject(ctx context.Context, projectID uuid.UUID, limit int) ([]models.ActivityLog, error) {
	return r.list(ctx, bson.M{"project_id": projectID.String()}, limit)
}

// ListByActor lists an actor's newest entries
func (r *MongoActivityLogRepository) ListByActor(ctx context.Context, actorID uuid.UUID, limit int) ([]models.ActivityLog, error) {
	return r.list(ctx, bson.M{"actor_id": actorID.String()}, limit)
}

func (r *MongoActivityLogRepository) list(ctx context.Context, filter bson.M, limit int) ([]models.ActivityLog, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity logs: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []activityDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode activity logs: %w", err)
	}

	entries := make([]models.ActivityLog, 0, len(docs))
	for _, doc := range docs {
		entry, err := doc.toModel()
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func toActivityDocument(entry *models.ActivityLog) activityDocument {
	doc := activityDocument{
		ID:         entry.ID.String(),
		ActorID:    entry.ActorID.String(),
		Action:     entry.Action,
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID.String(),
		Details:    entry.Details,
		CreatedAt:  entry.CreatedAt,
	}
	if entry.ProjectID != nil {
		doc.ProjectID = entry.ProjectID.String()
	}
	return doc
}

func (d activityDocument) toModel() (models.ActivityLog, error) {
	var entry models.ActivityLog
	var err error

	if entry.ID, err = uuid.Parse(d.ID); err != nil {
		return entry, fmt.Errorf("invalid activity log id %q: %w", d.ID, err)
	}
	if entry.ActorID, err = uuid.Parse(d.ActorID); err != nil {
		return entry, fmt.Errorf("invalid actor id %q: %w", d.ActorID, err)
	}
	if entry.EntityID, err = uuid.Parse(d.EntityID); err != nil {
		return entry, fmt.Errorf("invalid entity id %q: %w", d.EntityID, err)
	}
	if d.ProjectID != "" {
		projectID, err := uuid.Parse(d.ProjectID)
		if err != nil {
			return entry, fmt.Errorf("invalid project id %q: %w", d.ProjectID, err)
		}
		entry.ProjectID = &projectID
	}
	entry.Action = d.Action
	entry.EntityType = d.EntityType
	entry.Details = d.Details
	entry.CreatedAt = d.CreatedAt
	return entry, nil
}
