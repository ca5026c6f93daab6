// services/identity_service.go - Registration and login
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"fantasycricket/models"
	"fantasycricket/storage"

	"golang.org/x/crypto/bcrypt"
)

type IdentityService struct {
	users  storage.UserStore
	config Config
	clock  func() time.Time
}

func NewIdentityService(users storage.UserStore, config Config) *IdentityService {
	return &IdentityService{
		users:  users,
		config: config,
		clock:  time.Now,
	}
}

// Register creates a new account. The password is bcrypt-hashed before it
// ever reaches the store; plaintext is never persisted or logged.
func (s *IdentityService) Register(ctx context.Context, email, password string, isAdmin bool) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !validEmail(email) || len(password) < s.config.MinPasswordLength {
		return nil, ErrInvalidCredentialFormat
	}

	if _, err := s.users.UserByEmail(ctx, email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.config.BcryptCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:     email,
		Password:  string(hashed),
		IsAdmin:   isAdmin,
		CreatedAt: s.clock(),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		// The unique index on email is the authority under concurrent
		// registrations; the pre-check above only orders the failure.
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	return user, nil
}

// Login verifies credentials. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *IdentityService) Login(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	_ = s.users.TouchLastLogin(ctx, user.ID)

	return user, nil
}

// UserByID resolves a session identity back to its user row.
func (s *IdentityService) UserByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.UserByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return false
	}
	return !strings.ContainsAny(email, " \t")
}
