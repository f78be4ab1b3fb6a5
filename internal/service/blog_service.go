package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/saasbase/backend/internal/model"
	"github.com/saasbase/backend/internal/repository"
)

// ErrPostNotFound covers unknown slugs and unpublished posts alike, so the
// API never leaks whether a draft exists.
var ErrPostNotFound = errors.New("post not found")

// publishedListLimit bounds the listing endpoint.
const publishedListLimit = 50

// BlogService provides read-only access to published posts.
type BlogService interface {
	ListPublished(ctx context.Context) ([]model.BlogSummary, error)
	GetBySlug(ctx context.Context, slug string) (*model.BlogDetail, error)
}

type blogService struct {
	posts repository.BlogRepository
}

// NewBlogService creates a new BlogService
func NewBlogService(posts repository.BlogRepository) BlogService {
	return &blogService{posts: posts}
}

// ListPublished returns summaries of up to 50 published posts. An unavailable
// store degrades to an empty listing rather than an error.
func (s *blogService) ListPublished(ctx context.Context) ([]model.BlogSummary, error) {
	posts, err := s.posts.ListPublished(ctx, publishedListLimit)
	if err != nil {
		if errors.Is(err, repository.ErrStoreUnavailable) {
			return []model.BlogSummary{}, nil
		}
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	summaries := make([]model.BlogSummary, 0, len(posts))
	for i := range posts {
		summaries = append(summaries, posts[i].Summary())
	}
	return summaries, nil
}

// GetBySlug returns the full post for a published slug. Unknown slugs,
// unpublished posts and an unavailable store all yield ErrPostNotFound.
func (s *blogService) GetBySlug(ctx context.Context, slug string) (*model.BlogDetail, error) {
	post, err := s.posts.FindPublishedBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrStoreUnavailable) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	detail := post.Detail()
	return &detail, nil
}
