package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/inkline/blog/api/internal/model"
)

func newTestUser(email string) *model.User {
	return &model.User{
		Name:  "Test User",
		Email: email,
		Hash:  "$2a$12$not.a.real.hash",
	}
}

func seedUsers(t *testing.T, repo *mockUserRepo, n int) {
	t.Helper()
	ctx := context.Background()
	for i := 0; i < n; i++ {
		err := repo.Create(ctx, newTestUser(fmt.Sprintf("user%d@example.com", i)))
		if err != nil {
			t.Fatalf("seeding user %d: %v", i, err)
		}
	}
}

func TestUserService_GetByID(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	user := newTestUser("ada@example.com")
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := svc.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Email != "ada@example.com" {
		t.Errorf("expected email ada@example.com, got %s", got.Email)
	}
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	svc := NewUserService(newMockUserRepo())

	_, err := svc.GetByID(context.Background(), "nonexistent")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_List_FirstPage(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo)
	seedUsers(t, repo, 25)

	page, err := svc.List(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(page.Data) != 10 {
		t.Errorf("expected 10 users, got %d", len(page.Data))
	}
	if page.Count != 25 {
		t.Errorf("expected count 25, got %d", page.Count)
	}
	if page.CurrentPage != 1 {
		t.Errorf("expected currentPage 1, got %d", page.CurrentPage)
	}
	if page.PrevPage != nil {
		t.Errorf("expected nil prevPage, got %d", *page.PrevPage)
	}
	if page.NextPage == nil || *page.NextPage != 2 {
		t.Errorf("expected nextPage 2, got %v", page.NextPage)
	}
}

func TestUserService_List_LastPage(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo)
	seedUsers(t, repo, 25)

	page, err := svc.List(context.Background(), 3, 10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(page.Data) != 5 {
		t.Errorf("expected 5 users, got %d", len(page.Data))
	}
	if page.NextPage != nil {
		t.Errorf("expected nil nextPage, got %d", *page.NextPage)
	}
	if page.PrevPage == nil || *page.PrevPage != 2 {
		t.Errorf("expected prevPage 2, got %v", page.PrevPage)
	}
}

func TestUserService_List_BeyondEnd(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo)
	seedUsers(t, repo, 3)

	page, err := svc.List(context.Background(), 5, 10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if page.Data == nil {
		t.Error("expected empty slice, got nil data")
	}
	if len(page.Data) != 0 {
		t.Errorf("expected no users, got %d", len(page.Data))
	}
	if page.Count != 3 {
		t.Errorf("expected count 3, got %d", page.Count)
	}
	if page.NextPage != nil {
		t.Errorf("expected nil nextPage, got %d", *page.NextPage)
	}
}

func TestUserService_List_ClampsPageAndLimit(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo)
	seedUsers(t, repo, 5)

	page, err := svc.List(context.Background(), 0, -3)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if page.CurrentPage != 1 {
		t.Errorf("expected currentPage clamped to 1, got %d", page.CurrentPage)
	}
	if len(page.Data) != 5 {
		t.Errorf("expected 5 users under default limit, got %d", len(page.Data))
	}
}

func TestUserService_List_StripsCredentials(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo)
	seedUsers(t, repo, 2)

	page, err := svc.List(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	for _, u := range page.Data {
		if u.ID == "" || u.Email == "" {
			t.Error("expected stripped user to keep id and email")
		}
	}
}

func TestUserService_List_RepoError(t *testing.T) {
	repo := newMockUserRepo()
	repo.listErr = errors.New("connection lost")
	svc := NewUserService(repo)

	_, err := svc.List(context.Background(), 1, 10)
	if err == nil {
		t.Error("expected error from repository to propagate")
	}
}
