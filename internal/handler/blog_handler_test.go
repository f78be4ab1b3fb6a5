package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/saasbase/backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogList(t *testing.T) {
	posts := &memBlogRepo{posts: []model.BlogPost{
		{Title: "First", Slug: "first", Excerpt: "intro", Content: "body", Tags: []string{"go"}, Author: "Ann", Published: true},
		{Title: "Draft", Slug: "draft", Published: false},
	}}
	router := newTestRouter(&memUserRepo{}, posts, &memContactRepo{})

	rec := doGet(t, router, "/api/blog")
	require.Equal(t, http.StatusOK, rec.Code)

	var summaries []model.BlogSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, "first", summaries[0].Slug)
	assert.Equal(t, "Ann", summaries[0].Author)

	// The listing never carries post bodies.
	assert.NotContains(t, rec.Body.String(), `"content"`)
}

func TestBlogList_EmptyWithoutStore(t *testing.T) {
	router := newTestRouter(&memUserRepo{}, &memBlogRepo{unavailable: true}, &memContactRepo{})

	rec := doGet(t, router, "/api/blog")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestBlogGetBySlug(t *testing.T) {
	posts := &memBlogRepo{posts: []model.BlogPost{
		{Title: "First", Slug: "first", Excerpt: "intro", Content: "full body", Published: true},
	}}
	router := newTestRouter(&memUserRepo{}, posts, &memContactRepo{})

	rec := doGet(t, router, "/api/blog/first")
	require.Equal(t, http.StatusOK, rec.Code)

	var detail model.BlogDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, "First", detail.Title)
	assert.Equal(t, "full body", detail.Content)
	assert.Equal(t, model.DefaultAuthor, detail.Author)
}

func TestBlogGetBySlug_NotFound(t *testing.T) {
	posts := &memBlogRepo{posts: []model.BlogPost{
		{Title: "Draft", Slug: "draft", Published: false},
	}}
	router := newTestRouter(&memUserRepo{}, posts, &memContactRepo{})

	// Unknown slug and unpublished slug respond identically.
	missing := doGet(t, router, "/api/blog/missing")
	draft := doGet(t, router, "/api/blog/draft")

	assert.Equal(t, http.StatusNotFound, missing.Code)
	assert.Equal(t, http.StatusNotFound, draft.Code)
	assert.JSONEq(t, missing.Body.String(), draft.Body.String())
}
