package handler

import (
	"context"
	"net/http"

	"github.com/inkline/blog/api/internal/model"
	"github.com/inkline/blog/api/internal/pagination"
)

// UserService defines the user operations the handler depends on
type UserService interface {
	GetByID(ctx context.Context, id string) (*model.PublicUser, error)
	List(ctx context.Context, page, limit int) (pagination.Page[*model.PublicUser], error)
}

// UserHandler handles user endpoints
type UserHandler struct {
	userService UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// List handles GET /v1/users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit, pd := pageParams(r)
	if pd != nil {
		WriteError(w, pd)
		return
	}

	result, err := h.userService.List(r.Context(), page, limit)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WritePage(w, result)
}

// Get handles GET /v1/users/{userId}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if userID == "" {
		WriteError(w, model.NewBadRequestError("user id is required"))
		return
	}

	user, err := h.userService.GetByID(r.Context(), userID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, user, nil)
}
