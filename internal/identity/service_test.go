package identity

import (
	"context"
	"errors"
	"testing"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)

	ctx := context.Background()
	user, err := svc.Register(ctx, Credentials{Email: "alice@example.com", Password: "secret123", FullName: "Alice"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if !user.IsVerified {
		t.Fatalf("expected auto-verified user")
	}
	if user.ID == "" {
		t.Fatalf("expected generated id")
	}

	authed, err := svc.Authenticate(ctx, "alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if authed.ID != user.ID {
		t.Fatalf("expected user %s, got %s", user.ID, authed.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, Credentials{Email: "bob@example.com", Password: "secret123", FullName: "Bob"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, err := svc.Register(ctx, Credentials{Email: "bob@example.com", Password: "other456", FullName: "Bobby"})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	// Same address with different casing still collides.
	_, err = svc.Register(ctx, Credentials{Email: "Bob@Example.com", Password: "other456", FullName: "Bobby"})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail for case variant, got %v", err)
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, Credentials{Email: "carol@example.com", Password: "secret123", FullName: "Carol"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err := svc.Authenticate(ctx, "carol@example.com", "wrong-password")
	if !errors.Is(err, ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential, got %v", err)
	}
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	_, err := svc.Authenticate(context.Background(), "nobody@example.com", "whatever")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAuthenticateUnverified(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	user, err := svc.Register(ctx, Credentials{Email: "dave@example.com", Password: "secret123", FullName: "Dave"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	// Flip the flag the way a not-yet-confirmed account would look.
	unverified := user
	unverified.IsVerified = false
	mem := repo.(*memoryRepository)
	mem.mu.Lock()
	for i := range mem.users {
		if mem.users[i].ID == user.ID {
			mem.users[i] = unverified
		}
	}
	mem.mu.Unlock()

	_, err = svc.Authenticate(ctx, "dave@example.com", "secret123")
	if !errors.Is(err, ErrUnverified) {
		t.Fatalf("expected ErrUnverified, got %v", err)
	}
}
