package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/efinder/venue-booking/internal/core/domain"
	"github.com/efinder/venue-booking/internal/core/ports"
)

func newUserFixture(t *testing.T) (*UserService, *stubUserRepo, *stubVenueRepo) {
	t.Helper()
	users := newStubUserRepo()
	venues := newStubVenueRepo()
	return NewUserService(users, venues, zerolog.Nop()), users, venues
}

func TestUserRegister_HashesPassword(t *testing.T) {
	svc, _, _ := newUserFixture(t)

	user, err := svc.Register(context.Background(), ports.CreateUserInput{
		Name:     "Alice",
		Email:    "Alice@Example.com",
		Password: "s3cret",
		Role:     domain.RoleOrganizer,
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("email must be lowercased, got %q", user.Email)
	}
	if user.PasswordHash == "s3cret" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestUserRegister_DuplicateEmail(t *testing.T) {
	svc, _, _ := newUserFixture(t)

	input := ports.CreateUserInput{Name: "Bob", Email: "bob@example.com", Password: "pass", Role: domain.RoleOwner}
	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	// Casing variants collide on the lowercased email.
	input.Email = "BOB@example.com"
	if _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserUpdate_BadRoleRejected(t *testing.T) {
	svc, users, _ := newUserFixture(t)
	u, _ := users.Create(context.Background(), &domain.User{Name: "Carol", Email: "carol@example.com", Role: domain.RoleOwner})

	role := "admin"
	_, err := svc.Update(context.Background(), u.ID, ports.UpdateUserFields{Role: &role})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestUserVenues_OnlyActiveOwned(t *testing.T) {
	svc, users, venues := newUserFixture(t)
	owner, _ := users.Create(context.Background(), &domain.User{Name: "Olivia", Email: "o@example.com", Role: domain.RoleOwner})
	other, _ := users.Create(context.Background(), &domain.User{Name: "Other", Email: "x@example.com", Role: domain.RoleOwner})

	_, _ = venues.Create(context.Background(), &domain.Venue{Name: "Mine", OwnerID: owner.ID, IsActive: true})
	_, _ = venues.Create(context.Background(), &domain.Venue{Name: "Retired", OwnerID: owner.ID, IsActive: false})
	_, _ = venues.Create(context.Background(), &domain.Venue{Name: "Theirs", OwnerID: other.ID, IsActive: true})

	user, owned, err := svc.Venues(context.Background(), owner.ID)
	if err != nil {
		t.Fatalf("Venues returned error: %v", err)
	}
	if user.ID != owner.ID {
		t.Fatalf("unexpected user: %s", user.ID)
	}
	if len(owned) != 1 || owned[0].Name != "Mine" {
		t.Fatalf("expected only the active owned venue, got %+v", owned)
	}
}

func TestAuthLogin_Success(t *testing.T) {
	userSvc, users, _ := newUserFixture(t)
	authSvc := NewAuthService(users, "secret", time.Hour)

	if _, err := userSvc.Register(context.Background(), ports.CreateUserInput{
		Name: "Dana", Email: "dana@example.com", Password: "goodpass", Role: domain.RoleOrganizer,
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := authSvc.Login(context.Background(), "dana@example.com", "goodpass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Email != "dana@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["role"] != domain.RoleOrganizer {
		t.Fatalf("expected role %s, got %v", domain.RoleOrganizer, claims["role"])
	}
	if claims["sub"] != user.ID {
		t.Fatalf("expected sub %s, got %v", user.ID, claims["sub"])
	}
}

func TestAuthLogin_WrongPassword(t *testing.T) {
	userSvc, users, _ := newUserFixture(t)
	authSvc := NewAuthService(users, "secret", time.Hour)

	_, _ = userSvc.Register(context.Background(), ports.CreateUserInput{
		Name: "Eve", Email: "eve@example.com", Password: "goodpass", Role: domain.RoleOwner,
	})

	if _, _, err := authSvc.Login(context.Background(), "eve@example.com", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthLogin_UnknownEmailHidden(t *testing.T) {
	_, users, _ := newUserFixture(t)
	authSvc := NewAuthService(users, "secret", time.Hour)

	// A missing account answers the same way as a bad password.
	if _, _, err := authSvc.Login(context.Background(), "ghost@example.com", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthLogin_EmptyCredentials(t *testing.T) {
	_, users, _ := newUserFixture(t)
	authSvc := NewAuthService(users, "secret", time.Hour)

	if _, _, err := authSvc.Login(context.Background(), "", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
