package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PlanFree     = "free"
	PlanPro      = "pro"
	PlanBusiness = "business"
)

// User represents a document in the "user" collection.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"` // Never expose credentials in JSON responses
	PasswordSalt string             `bson:"password_salt" json:"-"`
	AvatarURL    *string            `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"` // Pointer for optional field
	Plan         string             `bson:"plan" json:"plan"`
	IsVerified   bool               `bson:"is_verified" json:"is_verified"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}

// ApplyDefaults fills canonical defaults for fields a stored document may omit.
// Called once at the decode boundary so every reader sees the same values.
func (u *User) ApplyDefaults() {
	if u.Plan == "" {
		u.Plan = PlanFree
	}
}

// RegisterRequest is the payload for POST /api/auth/register
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is the payload for POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by both register and login.
type AuthResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Plan  string `json:"plan"`
}
