package services

import (
	"context"
	"testing"
)

func TestInitialsFromName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Ana Solis", "AS"},
		{"ana", "A"},
		{"maria del carmen", "MD"},
		{"", ""},
	}
	for _, c := range cases {
		if got := InitialsFromName(c.in); got != c.want {
			t.Errorf("InitialsFromName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.Users.Register(ctx, "Ana Solis", "ana@example.com", "supersecret"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	_, err := env.Users.Register(ctx, "Another Ana", "ana@example.com", "supersecret")
	if err == nil {
		t.Fatalf("expected duplicate email rejection")
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.Users.Register(context.Background(), "Ana Solis", "ana@example.com", "short")
	if err == nil {
		t.Fatalf("expected short password rejection")
	}
}

func TestLoginAndLogout(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	env := newTestEnv(t)
	ctx := context.Background()

	registered, err := env.Users.Register(ctx, "Ana Solis", "ana@example.com", "supersecret")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	token, user, err := env.Users.Login(ctx, "ana@example.com", "supersecret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" || user.ID != registered.ID {
		t.Fatalf("unexpected login result: token=%q user=%+v", token, user)
	}

	if _, _, err := env.Users.Login(ctx, "ana@example.com", "wrongpassword"); err == nil {
		t.Fatalf("expected bad password rejection")
	}
	if _, _, err := env.Users.Login(ctx, "nobody@example.com", "supersecret"); err == nil {
		t.Fatalf("expected unknown email rejection")
	}

	if env.Users.IsRevoked(token) {
		t.Fatalf("fresh token should not be revoked")
	}
	env.Users.Logout(token)
	if !env.Users.IsRevoked(token) {
		t.Fatalf("token should be revoked after logout")
	}
}

func TestResolveMember(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	registered, err := env.Users.Register(ctx, "Ana Solis", "ana@example.com", "supersecret")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	byEmail, err := env.Users.ResolveMember(ctx, "ana@example.com")
	if err != nil {
		t.Fatalf("ResolveMember by email: %v", err)
	}
	if byEmail.ID != registered.ID {
		t.Fatalf("email lookup resolved wrong user: %+v", byEmail)
	}

	byName, err := env.Users.ResolveMember(ctx, "ANA SOLIS")
	if err != nil {
		t.Fatalf("ResolveMember by name: %v", err)
	}
	if byName.ID != registered.ID {
		t.Fatalf("name lookup should be case-insensitive: %+v", byName)
	}

	created, err := env.Users.ResolveMember(ctx, "Pedro Mora")
	if err != nil {
		t.Fatalf("ResolveMember auto-create: %v", err)
	}
	if created.ID == registered.ID {
		t.Fatalf("unknown member should create a new user")
	}
	if created.Initials != "PM" {
		t.Fatalf("auto-created user initials: got %q", created.Initials)
	}

	// A second resolution of the same name reuses the created user.
	again, err := env.Users.ResolveMember(ctx, "pedro mora")
	if err != nil {
		t.Fatalf("ResolveMember repeat: %v", err)
	}
	if again.ID != created.ID {
		t.Fatalf("repeat resolution should reuse the user")
	}
}
