package data

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jobbox/jobbox-api/internal/domain/model"
	apperrors "github.com/jobbox/jobbox-api/internal/errors"
)

// JobRepo provides MongoDB operations for job postings.
type JobRepo struct {
	col *mongo.Collection
}

// NewJobRepo creates a new JobRepo backed by the jobs collection.
func NewJobRepo(db *mongo.Database) *JobRepo {
	return &JobRepo{col: db.Collection(JobsCollection)}
}

// List returns all jobs in store order.
func (r *JobRepo) List(ctx context.Context) ([]*model.Job, error) {
	return r.find(ctx, bson.D{}, nil)
}

// ListPage returns the skip/limit window of the full listing, in store order.
func (r *JobRepo) ListPage(ctx context.Context, skip, limit int) ([]*model.Job, error) {
	opts := options.Find().SetSkip(int64(skip)).SetLimit(int64(limit))
	return r.find(ctx, bson.D{}, opts)
}

// Count returns the total number of jobs.
func (r *JobRepo) Count(ctx context.Context) (int64, error) {
	n, err := r.col.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, apperrors.Wrap(err, apperrors.ErrCodeInternal, "count jobs")
	}
	return n, nil
}

// GetByID returns a single job by its hex identifier.
// A malformed identifier surfaces as an internal error, not a validation
// error: the id format is deliberately not validated at this layer.
func (r *JobRepo) GetByID(ctx context.Context, id string) (*model.Job, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.ErrCodeInternal, "malformed job id %q", id)
	}

	var job model.Job
	if err := r.col.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&job); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("job not found")
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "find job")
	}
	return &job, nil
}

// ListByApplicantEmail returns jobs whose embedded applicant array contains
// an entry with the exact email.
func (r *JobRepo) ListByApplicantEmail(ctx context.Context, email string) ([]*model.Job, error) {
	filter := bson.D{{Key: "appliedPersonInformation.email", Value: email}}
	return r.find(ctx, filter, nil)
}

// Featured returns up to limit jobs ordered by postedTime descending.
// Ties fall back to store order.
func (r *JobRepo) Featured(ctx context.Context, limit int) ([]*model.Job, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "postedTime", Value: -1}}).
		SetLimit(int64(limit))
	return r.find(ctx, bson.D{}, opts)
}

// Create inserts the job and returns the inserted identifier.
func (r *JobRepo) Create(ctx context.Context, job *model.Job) (string, error) {
	res, err := r.col.InsertOne(ctx, job)
	if err != nil {
		return "", apperrors.MapStoreError(err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", apperrors.WriteRejected("job insert was not acknowledged")
	}
	return oid.Hex(), nil
}

// Delete removes a job by id. Returns false when nothing was removed.
func (r *JobRepo) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, apperrors.Wrapf(err, apperrors.ErrCodeInternal, "malformed job id %q", id)
	}
	res, err := r.col.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return false, apperrors.Wrap(err, apperrors.ErrCodeInternal, "delete job")
	}
	return res.DeletedCount > 0, nil
}

func (r *JobRepo) find(ctx context.Context, filter bson.D, opts *options.FindOptions) ([]*model.Job, error) {
	var cur *mongo.Cursor
	var err error
	if opts != nil {
		cur, err = r.col.Find(ctx, filter, opts)
	} else {
		cur, err = r.col.Find(ctx, filter)
	}
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "find jobs")
	}
	defer cur.Close(ctx)

	var jobs []*model.Job
	if err := cur.All(ctx, &jobs); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "decode jobs")
	}
	return jobs, nil
}
