package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/inkline/blog/api/internal/model"
	"github.com/inkline/blog/api/internal/service"
)

type mockStatsService struct {
	byPostsFunc    func(ctx context.Context, n int) ([]*model.AuthorPostStats, error)
	ownCommentFunc func(ctx context.Context, n int) ([]*model.AuthorCommentStats, error)
}

func (m *mockStatsService) TopAuthorsByPosts(ctx context.Context, n int) ([]*model.AuthorPostStats, error) {
	return m.byPostsFunc(ctx, n)
}

func (m *mockStatsService) TopAuthorsWithOwnComment(ctx context.Context, n int) ([]*model.AuthorCommentStats, error) {
	return m.ownCommentFunc(ctx, n)
}

func TestTopAuthorsByPosts_DefaultN(t *testing.T) {
	t.Parallel()

	handler := NewStatsHandler(&mockStatsService{
		byPostsFunc: func(ctx context.Context, n int) ([]*model.AuthorPostStats, error) {
			if n != service.DefaultTopAuthors {
				t.Errorf("expected default n=%d, got %d", service.DefaultTopAuthors, n)
			}
			return []*model.AuthorPostStats{}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/stats/authors/posts", nil)
	rr := httptest.NewRecorder()

	handler.TopAuthorsByPosts(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
}

func TestTopAuthorsByPosts_NullFieldsSerialized(t *testing.T) {
	t.Parallel()

	handler := NewStatsHandler(&mockStatsService{
		byPostsFunc: func(ctx context.Context, n int) ([]*model.AuthorPostStats, error) {
			// Zero-post author: both latest fields absent
			return []*model.AuthorPostStats{
				{AuthorID: "a1", Name: "Grace", PostCount: 0},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/stats/authors/posts?n=1", nil)
	rr := httptest.NewRecorder()

	handler.TopAuthorsByPosts(rr, req)

	var resp struct {
		Data []map[string]json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse body: %v", err)
	}
	if len(resp.Data) != 1 {
		t.Fatalf("expected 1 row, got %d", len(resp.Data))
	}

	// Keys must be present with explicit null, not omitted
	for _, key := range []string{"latest_post_title", "latest_comment_content"} {
		raw, ok := resp.Data[0][key]
		if !ok {
			t.Errorf("expected key %q present", key)
			continue
		}
		if string(raw) != "null" {
			t.Errorf("expected %q to be null, got %s", key, raw)
		}
	}
}

func TestTopAuthorsByPosts_NonIntegerN_ReturnsBadRequest(t *testing.T) {
	t.Parallel()

	handler := NewStatsHandler(&mockStatsService{})

	req := httptest.NewRequest(http.MethodGet, "/v1/stats/authors/posts?n=three", nil)
	rr := httptest.NewRecorder()

	handler.TopAuthorsByPosts(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestTopAuthorsByPosts_NonPositiveN_ReturnsValidationError(t *testing.T) {
	t.Parallel()

	handler := NewStatsHandler(&mockStatsService{
		byPostsFunc: func(ctx context.Context, n int) ([]*model.AuthorPostStats, error) {
			return nil, service.ErrInvalidAuthorCount
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/stats/authors/posts?n=0", nil)
	rr := httptest.NewRecorder()

	handler.TopAuthorsByPosts(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected status %d, got %d", http.StatusUnprocessableEntity, rr.Code)
	}
}

func TestTopAuthorsWithOwnComment_PassesN(t *testing.T) {
	t.Parallel()

	handler := NewStatsHandler(&mockStatsService{
		ownCommentFunc: func(ctx context.Context, n int) ([]*model.AuthorCommentStats, error) {
			if n != 5 {
				t.Errorf("expected n=5, got %d", n)
			}
			return []*model.AuthorCommentStats{}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/stats/authors/comments?n=5", nil)
	rr := httptest.NewRecorder()

	handler.TopAuthorsWithOwnComment(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
}

func TestTopAuthorsWithOwnComment_ServiceError_Returns500(t *testing.T) {
	t.Parallel()

	handler := NewStatsHandler(&mockStatsService{
		ownCommentFunc: func(ctx context.Context, n int) ([]*model.AuthorCommentStats, error) {
			return nil, context.DeadlineExceeded
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/stats/authors/comments", nil)
	rr := httptest.NewRecorder()

	handler.TopAuthorsWithOwnComment(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, rr.Code)
	}
}
