package service

import (
	"context"
	"fmt"
	"time"

	"github.com/saasbase/backend/internal/model"
	"github.com/saasbase/backend/internal/repository"
)

// ContactService accepts contact form submissions.
type ContactService interface {
	Submit(ctx context.Context, req *model.ContactRequest) error
}

type contactService struct {
	messages repository.ContactRepository
}

// NewContactService creates a new ContactService
func NewContactService(messages repository.ContactRepository) ContactService {
	return &contactService{messages: messages}
}

// Submit persists one contact message. No deduplication and no outbound
// notification; this is purely a write sink.
func (s *contactService) Submit(ctx context.Context, req *model.ContactRequest) error {
	topic := req.Topic
	if topic == "" {
		topic = model.DefaultTopic
	}

	msg := &model.ContactMessage{
		Name:      req.Name,
		Email:     req.Email,
		Company:   req.Company,
		Topic:     topic,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.messages.Create(ctx, msg); err != nil {
		return fmt.Errorf("failed to submit contact message: %w", err)
	}
	return nil
}
