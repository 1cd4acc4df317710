package service

import (
	"context"

	"github.com/inkline/blog/api/internal/model"
	"github.com/inkline/blog/api/internal/pagination"
)

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context, limit, offset int) ([]*model.User, error)
	Count(ctx context.Context) (int64, error)
}

// UserService handles user lookups and the paginated user listing. User
// creation goes through AuthService, which owns credential handling.
type UserService struct {
	repo UserRepository
}

// NewUserService creates a new user service
func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Create inserts a user record. The caller supplies an already-hashed
// credential.
func (s *UserService) Create(ctx context.Context, user *model.User) error {
	return s.repo.Create(ctx, user)
}

// GetByEmail returns the user registered under email, or (nil, nil) when no
// such user exists. Absence is not an error here: signup uses this lookup
// to check availability.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.repo.GetByEmail(ctx, email)
}

// GetByID returns the stripped public view of a user.
func (s *UserService) GetByID(ctx context.Context, id string) (*model.PublicUser, error) {
	user, err := s.getUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.ToPublic(), nil
}

// List returns one page of users with navigation metadata. Count and page
// are separate queries, so they can disagree under concurrent signups;
// accepted for this strategy.
func (s *UserService) List(ctx context.Context, page, limit int) (pagination.Page[*model.PublicUser], error) {
	page, limit = pagination.Clamp(page, limit)

	users, err := s.repo.List(ctx, limit, pagination.Offset(page, limit))
	if err != nil {
		return pagination.Page[*model.PublicUser]{}, err
	}
	count, err := s.repo.Count(ctx)
	if err != nil {
		return pagination.Page[*model.PublicUser]{}, err
	}

	public := make([]*model.PublicUser, 0, len(users))
	for _, u := range users {
		public = append(public, u.ToPublic())
	}
	return pagination.Paginate(public, count, page, limit), nil
}

// getUser returns the full user record, for callers inside the service
// layer that need the credential hash (login).
func (s *UserService) getUser(ctx context.Context, id string) (*model.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
