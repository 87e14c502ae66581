// Package data provides MongoDB implementations of the core repository
// interfaces, plus the Redis cache repository.
package data

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	JobsCollection        = "jobs"
	UsersCollection       = "users"
	AppliedJobsCollection = "appliedJobs"
	SavedJobsCollection   = "savedJobs"
)

// EnsureIndexes creates the indexes the resource layer relies on.
//
// The unique compound (userId, jobId) indexes are what make the apply/save
// dedup guard safe under concurrency: two requests can both pass the
// find-one pre-check, but only one insert survives the index.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	userJobUnique := mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "jobId", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("user_job_unique"),
	}
	for _, name := range []string{AppliedJobsCollection, SavedJobsCollection} {
		if _, err := db.Collection(name).Indexes().CreateOne(ctx, userJobUnique); err != nil {
			return fmt.Errorf("create %s user_job_unique index: %w", name, err)
		}
	}

	postedTimeDesc := mongo.IndexModel{
		Keys:    bson.D{{Key: "postedTime", Value: -1}},
		Options: options.Index().SetName("posted_time_desc"),
	}
	if _, err := db.Collection(JobsCollection).Indexes().CreateOne(ctx, postedTimeDesc); err != nil {
		return fmt.Errorf("create jobs posted_time_desc index: %w", err)
	}

	// Email lookups back both /users?email= and /users/{email}. The index is
	// not unique: email uniqueness is expected but not enforced here.
	emailIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("email_lookup"),
	}
	if _, err := db.Collection(UsersCollection).Indexes().CreateOne(ctx, emailIdx); err != nil {
		return fmt.Errorf("create users email_lookup index: %w", err)
	}

	applicantEmailIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "appliedPersonInformation.email", Value: 1}},
		Options: options.Index().SetName("applicant_email_lookup"),
	}
	if _, err := db.Collection(JobsCollection).Indexes().CreateOne(ctx, applicantEmailIdx); err != nil {
		return fmt.Errorf("create jobs applicant_email_lookup index: %w", err)
	}

	return nil
}
