package data

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jobbox/jobbox-api/internal/domain/model"
	apperrors "github.com/jobbox/jobbox-api/internal/errors"
)

// SavedJobRepo provides MongoDB operations for saved-job bookmarks.
type SavedJobRepo struct {
	col          *mongo.Collection
	timeProvider TimeProvider
}

// NewSavedJobRepo creates a new SavedJobRepo with the real time provider.
func NewSavedJobRepo(db *mongo.Database) *SavedJobRepo {
	return &SavedJobRepo{col: db.Collection(SavedJobsCollection), timeProvider: &RealTimeProvider{}}
}

// NewSavedJobRepoWithTimeProvider creates a new SavedJobRepo with a custom time provider.
func NewSavedJobRepoWithTimeProvider(db *mongo.Database, tp TimeProvider) *SavedJobRepo {
	return &SavedJobRepo{col: db.Collection(SavedJobsCollection), timeProvider: tp}
}

// ListByUser returns all bookmarks held by the given user.
func (r *SavedJobRepo) ListByUser(ctx context.Context, userID string) ([]*model.SavedJob, error) {
	cur, err := r.col.Find(ctx, bson.D{{Key: "userId", Value: userID}})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "find saved jobs")
	}
	defer cur.Close(ctx)

	var saved []*model.SavedJob
	if err := cur.All(ctx, &saved); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "decode saved jobs")
	}
	return saved, nil
}

// FindByUserAndJob returns the bookmark for the exact (userId, jobId) pair.
func (r *SavedJobRepo) FindByUserAndJob(ctx context.Context, userID, jobID string) (*model.SavedJob, error) {
	filter := bson.D{{Key: "userId", Value: userID}, {Key: "jobId", Value: jobID}}
	var saved model.SavedJob
	if err := r.col.FindOne(ctx, filter).Decode(&saved); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("saved job not found")
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "find saved job")
	}
	return &saved, nil
}

// Create inserts the bookmark, stamping savedAt. A duplicate (userId, jobId)
// pair is rejected by the unique index and mapped to a Conflict error.
func (r *SavedJobRepo) Create(ctx context.Context, saved *model.SavedJob) (string, error) {
	saved.SavedAt = r.timeProvider.Now().UTC()
	res, err := r.col.InsertOne(ctx, saved)
	if err != nil {
		return "", apperrors.MapStoreError(err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", apperrors.WriteRejected("saved job insert was not acknowledged")
	}
	return oid.Hex(), nil
}

// Delete removes a bookmark by id. Returns false when nothing was removed.
func (r *SavedJobRepo) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, apperrors.Wrapf(err, apperrors.ErrCodeInternal, "malformed saved job id %q", id)
	}
	res, err := r.col.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return false, apperrors.Wrap(err, apperrors.ErrCodeInternal, "delete saved job")
	}
	return res.DeletedCount > 0, nil
}
