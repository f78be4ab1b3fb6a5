package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/saasbase/backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BlogRepository defines read operations for blog post documents. Posts are
// seeded externally, so there is no create or update here.
type BlogRepository interface {
	ListPublished(ctx context.Context, limit int64) ([]model.BlogPost, error)
	FindPublishedBySlug(ctx context.Context, slug string) (*model.BlogPost, error)
}

type blogRepository struct {
	coll *mongo.Collection
}

// NewBlogRepository creates a BlogRepository over the "blogpost" collection.
// db may be nil; operations then fail with ErrStoreUnavailable.
func NewBlogRepository(db *mongo.Database) BlogRepository {
	r := &blogRepository{}
	if db != nil {
		r.coll = db.Collection("blogpost")
	}
	return r
}

// ListPublished retrieves up to limit published posts with the content field
// projected out. No sort is applied; ordering is whatever the store returns.
func (r *blogRepository) ListPublished(ctx context.Context, limit int64) ([]model.BlogPost, error) {
	if r.coll == nil {
		return nil, ErrStoreUnavailable
	}
	opts := options.Find().
		SetLimit(limit).
		SetProjection(bson.M{"content": 0})
	cur, err := r.coll.Find(ctx, bson.M{"published": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list published posts: %w", err)
	}
	defer cur.Close(ctx)

	var posts []model.BlogPost
	if err := cur.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode posts: %w", err)
	}
	for i := range posts {
		posts[i].ApplyDefaults()
	}
	return posts, nil
}

// FindPublishedBySlug retrieves a single published post by slug. Unknown and
// unpublished slugs both come back as (nil, nil) so callers cannot tell drafts
// apart from posts that never existed.
func (r *blogRepository) FindPublishedBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	if r.coll == nil {
		return nil, ErrStoreUnavailable
	}
	post := &model.BlogPost{}
	err := r.coll.FindOne(ctx, bson.M{"slug": slug, "published": true}).Decode(post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find post by slug: %w", err)
	}
	post.ApplyDefaults()
	return post, nil
}
