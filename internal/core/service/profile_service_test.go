package service

import (
	"context"
	"errors"
	"testing"

	"github.com/tokoku/store-api/internal/core/domain"
)

func TestProfileService_UpdateName(t *testing.T) {
	repo := newStubUserRepo()
	user := mustCreateUser(t, repo, "user1@example.com", "pass123", domain.RoleUser)

	svc := NewProfileService(repo)
	updated, err := svc.UpdateName(context.Background(), user.ID, "New Name")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "New Name" {
		t.Fatalf("expected updated name, got %q", updated.Name)
	}
	if updated.Email != user.Email {
		t.Fatalf("email must be immutable, got %q", updated.Email)
	}
}

func TestProfileService_UpdateName_Empty(t *testing.T) {
	svc := NewProfileService(newStubUserRepo())

	for _, name := range []string{"", "   "} {
		if _, err := svc.UpdateName(context.Background(), 1, name); !errors.Is(err, domain.ErrNameRequired) {
			t.Fatalf("name %q: expected ErrNameRequired, got %v", name, err)
		}
	}
}

func TestProfileService_UpdateName_UserGone(t *testing.T) {
	svc := NewProfileService(newStubUserRepo())

	if _, err := svc.UpdateName(context.Background(), 99, "Name"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestProfileService_ListUsers(t *testing.T) {
	repo := newStubUserRepo()
	mustCreateUser(t, repo, "user1@example.com", "pass123", domain.RoleUser)
	mustCreateUser(t, repo, "admin1@example.com", "admin123", domain.RoleAdmin)

	svc := NewProfileService(repo)
	users, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}
