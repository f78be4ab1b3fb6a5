package repository

import (
	"context"
	"fmt"

	"github.com/saasbase/backend/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ContactRepository defines write operations for contact messages. Messages
// are a pure write sink; nothing in the API reads them back.
type ContactRepository interface {
	Create(ctx context.Context, msg *model.ContactMessage) error
}

type contactRepository struct {
	coll *mongo.Collection
}

// NewContactRepository creates a ContactRepository over the "contactmessage"
// collection. db may be nil; operations then fail with ErrStoreUnavailable.
func NewContactRepository(db *mongo.Database) ContactRepository {
	r := &contactRepository{}
	if db != nil {
		r.coll = db.Collection("contactmessage")
	}
	return r
}

// Create inserts a new contact message document
func (r *contactRepository) Create(ctx context.Context, msg *model.ContactMessage) error {
	if r.coll == nil {
		return ErrStoreUnavailable
	}
	res, err := r.coll.InsertOne(ctx, msg)
	if err != nil {
		return fmt.Errorf("failed to store contact message: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		msg.ID = oid
	}
	return nil
}
