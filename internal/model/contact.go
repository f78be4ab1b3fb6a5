package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultTopic is used when a submission omits the topic field.
const DefaultTopic = "General"

// ContactMessage represents a document in the "contactmessage" collection.
// Messages are written once and never read back through this API.
type ContactMessage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Company   *string            `bson:"company,omitempty" json:"company,omitempty"` // Pointer for optional field
	Topic     string             `bson:"topic" json:"topic"`
	Message   string             `bson:"message" json:"message"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// ContactRequest is the payload for POST /api/contact
type ContactRequest struct {
	Name    string  `json:"name" binding:"required"`
	Email   string  `json:"email" binding:"required,email"`
	Company *string `json:"company"`
	Topic   string  `json:"topic"`
	Message string  `json:"message" binding:"required"`
}
