package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/saasbase/backend/internal/middleware"
	"github.com/saasbase/backend/internal/model"
	"github.com/saasbase/backend/internal/repository"
	"github.com/saasbase/backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// In-memory repositories backing the handler tests. The zero value behaves
// like an empty database; unavailable simulates a missing DATABASE_URL.

type memUserRepo struct {
	users       []*model.User
	unavailable bool
}

func (f *memUserRepo) Create(_ context.Context, user *model.User) error {
	if f.unavailable {
		return repository.ErrStoreUnavailable
	}
	u := *user
	f.users = append(f.users, &u)
	return nil
}

func (f *memUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	if f.unavailable {
		return nil, repository.ErrStoreUnavailable
	}
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

type memBlogRepo struct {
	posts       []model.BlogPost
	unavailable bool
}

func (f *memBlogRepo) ListPublished(_ context.Context, limit int64) ([]model.BlogPost, error) {
	if f.unavailable {
		return nil, repository.ErrStoreUnavailable
	}
	var out []model.BlogPost
	for _, p := range f.posts {
		if !p.Published {
			continue
		}
		p.Content = ""
		p.ApplyDefaults()
		out = append(out, p)
		if int64(len(out)) == limit {
			break
		}
	}
	return out, nil
}

func (f *memBlogRepo) FindPublishedBySlug(_ context.Context, slug string) (*model.BlogPost, error) {
	if f.unavailable {
		return nil, repository.ErrStoreUnavailable
	}
	for _, p := range f.posts {
		if p.Slug == slug && p.Published {
			p.ApplyDefaults()
			return &p, nil
		}
	}
	return nil, nil
}

type memContactRepo struct {
	messages    []*model.ContactMessage
	unavailable bool
}

func (f *memContactRepo) Create(_ context.Context, msg *model.ContactMessage) error {
	if f.unavailable {
		return repository.ErrStoreUnavailable
	}
	m := *msg
	f.messages = append(f.messages, &m)
	return nil
}

// newTestRouter wires the full middleware and route stack over the given
// repositories, mirroring cmd/server wiring.
func newTestRouter(users repository.UserRepository, posts repository.BlogRepository, messages repository.ContactRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestIDMiddleware(zerolog.Nop()))
	router.Use(middleware.CORSMiddleware())

	NewHealthHandler(nil, false).RegisterHealthRoutes(router)
	apiGroup := router.Group("/api")
	NewAuthHandler(service.NewAuthService(users)).RegisterAuthRoutes(apiGroup)
	NewBlogHandler(service.NewBlogService(posts)).RegisterBlogRoutes(apiGroup)
	NewContactHandler(service.NewContactService(messages)).RegisterContactRoutes(apiGroup)

	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func doGet(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
