package handler

import (
	"context"
	"net/http"

	"github.com/inkline/blog/api/internal/model"
)

// StatsService defines the ranking operations the handler depends on
type StatsService interface {
	TopAuthorsByPosts(ctx context.Context, n int) ([]*model.AuthorPostStats, error)
	TopAuthorsWithOwnComment(ctx context.Context, n int) ([]*model.AuthorCommentStats, error)
}

// StatsHandler handles the author leaderboard endpoints
type StatsHandler struct {
	statsService StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// TopAuthorsByPosts handles GET /v1/stats/authors/posts
func (h *StatsHandler) TopAuthorsByPosts(w http.ResponseWriter, r *http.Request) {
	n, pd := countParam(r)
	if pd != nil {
		WriteError(w, pd)
		return
	}

	rows, err := h.statsService.TopAuthorsByPosts(r.Context(), n)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, rows, nil)
}

// TopAuthorsWithOwnComment handles GET /v1/stats/authors/comments
func (h *StatsHandler) TopAuthorsWithOwnComment(w http.ResponseWriter, r *http.Request) {
	n, pd := countParam(r)
	if pd != nil {
		WriteError(w, pd)
		return
	}

	rows, err := h.statsService.TopAuthorsWithOwnComment(r.Context(), n)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, rows, nil)
}
