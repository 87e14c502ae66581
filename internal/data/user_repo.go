package data

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jobbox/jobbox-api/internal/domain/model"
	apperrors "github.com/jobbox/jobbox-api/internal/errors"
)

// UserRepo provides MongoDB operations for user accounts.
type UserRepo struct {
	col          *mongo.Collection
	timeProvider TimeProvider
}

// NewUserRepo creates a new UserRepo with the real time provider.
func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{col: db.Collection(UsersCollection), timeProvider: &RealTimeProvider{}}
}

// NewUserRepoWithTimeProvider creates a new UserRepo with a custom time provider (useful for tests).
func NewUserRepoWithTimeProvider(db *mongo.Database, tp TimeProvider) *UserRepo {
	return &UserRepo{col: db.Collection(UsersCollection), timeProvider: tp}
}

// List returns all users in store order.
func (r *UserRepo) List(ctx context.Context) ([]*model.User, error) {
	cur, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "find users")
	}
	defer cur.Close(ctx)

	var users []*model.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "decode users")
	}
	return users, nil
}

// FindByEmail returns the user with the given email, or a NotFound error.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.col.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "find user")
	}
	return &user, nil
}

// Create inserts the user and returns the inserted identifier.
// createdAt is stamped here; callers never supply it.
func (r *UserRepo) Create(ctx context.Context, user *model.User) (string, error) {
	user.CreatedAt = r.timeProvider.Now().UTC()
	res, err := r.col.InsertOne(ctx, user)
	if err != nil {
		return "", apperrors.MapStoreError(err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", apperrors.WriteRejected("user insert was not acknowledged")
	}
	return oid.Hex(), nil
}

// UpdateRole sets the role field only. Returns false when no document was
// modified; an unknown id and an unchanged role are not distinguished.
func (r *UserRepo) UpdateRole(ctx context.Context, id, role string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, apperrors.Wrapf(err, apperrors.ErrCodeInternal, "malformed user id %q", id)
	}
	res, err := r.col.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "role", Value: role}}}},
	)
	if err != nil {
		return false, apperrors.Wrap(err, apperrors.ErrCodeInternal, "update user role")
	}
	return res.ModifiedCount > 0, nil
}

// Delete removes a user by id. Returns false when nothing was removed.
func (r *UserRepo) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, apperrors.Wrapf(err, apperrors.ErrCodeInternal, "malformed user id %q", id)
	}
	res, err := r.col.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return false, apperrors.Wrap(err, apperrors.ErrCodeInternal, "delete user")
	}
	return res.DeletedCount > 0, nil
}
