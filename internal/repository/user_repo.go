package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/saasbase/backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository defines operations for user documents
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository creates a UserRepository over the "user" collection.
// db may be nil; operations then fail with ErrStoreUnavailable.
func NewUserRepository(db *mongo.Database) UserRepository {
	r := &userRepository{}
	if db != nil {
		r.coll = db.Collection("user")
	}
	return r
}

// Create inserts a new user document
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	if r.coll == nil {
		return ErrStoreUnavailable
	}
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

// FindByEmail retrieves a user by exact email match
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	if r.coll == nil {
		return nil, ErrStoreUnavailable
	}
	user := &model.User{}
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil // User not found is not an error for this method's contract, service layer handles it
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	user.ApplyDefaults()
	return user, nil
}
