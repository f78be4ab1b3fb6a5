package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/saasbase/backend/internal/model"
	"github.com/saasbase/backend/internal/repository"
	"github.com/saasbase/backend/internal/utils"
)

var (
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password so a
	// login failure never reveals whether an account exists.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService provides registration and login.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*model.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*model.AuthResponse, error)
}

type authService struct {
	users repository.UserRepository
}

// NewAuthService creates a new AuthService
func NewAuthService(users repository.UserRepository) AuthService {
	return &authService{users: users}
}

// Register creates a new user account with a fresh salt and returns the
// derived bearer token. The existence check and the insert are not atomic:
// two concurrent registrations with the same email can both pass the check
// and both insert. Documented rather than fixed; see the duplicate-race test.
func (s *authService) Register(ctx context.Context, name, email, password string) (*model.AuthResponse, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	salt, err := utils.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: utils.HashPassword(salt, password),
		PasswordSalt: salt,
		Plan:         model.PlanFree,
		IsVerified:   false,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &model.AuthResponse{
		Token: utils.DeriveToken(email, salt),
		Name:  user.Name,
		Plan:  user.Plan,
	}, nil
}

// Login verifies the password against the stored salted hash and returns the
// same deterministic token register issued. Read-only: no document is written.
func (s *authService) Login(ctx context.Context, email, password string) (*model.AuthResponse, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error finding user by email: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials // User not found
	}

	if utils.HashPassword(user.PasswordSalt, password) != user.PasswordHash {
		return nil, ErrInvalidCredentials // Password mismatch
	}

	return &model.AuthResponse{
		Token: utils.DeriveToken(email, user.PasswordSalt),
		Name:  user.Name,
		Plan:  user.Plan,
	}, nil
}
