package data

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jobbox/jobbox-api/internal/domain/model"
	apperrors "github.com/jobbox/jobbox-api/internal/errors"
)

// ApplicationRepo provides MongoDB operations for job applications.
type ApplicationRepo struct {
	col          *mongo.Collection
	timeProvider TimeProvider
}

// NewApplicationRepo creates a new ApplicationRepo with the real time provider.
func NewApplicationRepo(db *mongo.Database) *ApplicationRepo {
	return &ApplicationRepo{col: db.Collection(AppliedJobsCollection), timeProvider: &RealTimeProvider{}}
}

// NewApplicationRepoWithTimeProvider creates a new ApplicationRepo with a custom time provider.
func NewApplicationRepoWithTimeProvider(db *mongo.Database, tp TimeProvider) *ApplicationRepo {
	return &ApplicationRepo{col: db.Collection(AppliedJobsCollection), timeProvider: tp}
}

// ListByUser returns all applications filed by the given user.
func (r *ApplicationRepo) ListByUser(ctx context.Context, userID string) ([]*model.AppliedJob, error) {
	cur, err := r.col.Find(ctx, bson.D{{Key: "userId", Value: userID}})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "find applications")
	}
	defer cur.Close(ctx)

	var apps []*model.AppliedJob
	if err := cur.All(ctx, &apps); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "decode applications")
	}
	return apps, nil
}

// FindByUserAndJob returns the application for the exact (userId, jobId) pair.
func (r *ApplicationRepo) FindByUserAndJob(ctx context.Context, userID, jobID string) (*model.AppliedJob, error) {
	filter := bson.D{{Key: "userId", Value: userID}, {Key: "jobId", Value: jobID}}
	var app model.AppliedJob
	if err := r.col.FindOne(ctx, filter).Decode(&app); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("application not found")
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "find application")
	}
	return &app, nil
}

// Create inserts the application, stamping appliedAt. A duplicate
// (userId, jobId) pair is rejected by the unique index and mapped to a
// Conflict error.
func (r *ApplicationRepo) Create(ctx context.Context, app *model.AppliedJob) (string, error) {
	app.AppliedAt = r.timeProvider.Now().UTC()
	res, err := r.col.InsertOne(ctx, app)
	if err != nil {
		return "", apperrors.MapStoreError(err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", apperrors.WriteRejected("application insert was not acknowledged")
	}
	return oid.Hex(), nil
}

// Delete removes an application by id. Returns false when nothing was removed.
func (r *ApplicationRepo) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, apperrors.Wrapf(err, apperrors.ErrCodeInternal, "malformed application id %q", id)
	}
	res, err := r.col.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return false, apperrors.Wrap(err, apperrors.ErrCodeInternal, "delete application")
	}
	return res.DeletedCount > 0, nil
}
