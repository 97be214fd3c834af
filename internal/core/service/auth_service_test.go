package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tokoku/store-api/internal/core/domain"
)

type stubUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = r.nextID
	if created.Role == "" {
		created.Role = domain.RoleUser
	}
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) UpdateName(_ context.Context, id int64, name string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Name = name
	return cloneUser(u), nil
}

func (r *stubUserRepo) ListAll(_ context.Context) ([]domain.User, error) {
	users := make([]domain.User, 0, len(r.users))
	for id := int64(1); id <= r.nextID; id++ {
		if u, ok := r.users[id]; ok {
			users = append(users, *u)
		}
	}
	return users, nil
}

func mustCreateUser(t *testing.T, repo *stubUserRepo, email, password, role string) *domain.User {
	t.Helper()
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user, err := repo.Create(context.Background(), &domain.User{
		Email:        email,
		Name:         "Test User",
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	user := mustCreateUser(t, repo, "carol@example.com", "s3cret", domain.RoleUser)

	tokens := NewTokenService("secret", 15*time.Minute)
	svc := NewAuthService(repo, tokens)

	token, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	// The issued token verifies and resolves back to the same user.
	userID, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if userID != user.ID {
		t.Fatalf("expected subject %d, got %d", user.ID, userID)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	mustCreateUser(t, repo, "dave@example.com", "goodpass", domain.RoleUser)

	svc := NewAuthService(repo, NewTokenService("secret", 15*time.Minute))
	if _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmailIndistinguishable(t *testing.T) {
	repo := newStubUserRepo()
	mustCreateUser(t, repo, "erin@example.com", "pass", domain.RoleUser)

	svc := NewAuthService(repo, NewTokenService("secret", 15*time.Minute))

	_, unknownErr := svc.Login(context.Background(), "ghost@example.com", "pass")
	_, wrongErr := svc.Login(context.Background(), "erin@example.com", "wrong")

	if !errors.Is(unknownErr, domain.ErrInvalidCredentials) || !errors.Is(wrongErr, domain.ErrInvalidCredentials) {
		t.Fatalf("expected both failures to be ErrInvalidCredentials, got %v and %v", unknownErr, wrongErr)
	}
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), NewTokenService("secret", 15*time.Minute))

	if _, err := svc.Login(context.Background(), "", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty email, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "a@b.com", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	if VerifyPassword("pass", "not-a-bcrypt-hash") {
		t.Fatalf("malformed stored hash must fail verification")
	}
}
