// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/shopfront/shopfront/internal/auth"
	"github.com/shopfront/shopfront/internal/metrics"
	"github.com/shopfront/shopfront/internal/model"
	"github.com/shopfront/shopfront/internal/repository"
)

// Service errors.
var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const defaultDBTimeout = 5 * time.Second

// UserStore persists credential records.
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// AuthService handles signup and login logic.
type AuthService struct {
	store     UserStore
	metrics   metrics.Recorder
	dbTimeout time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(store UserStore, recorder metrics.Recorder, dbTimeout time.Duration) *AuthService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	if dbTimeout <= 0 {
		dbTimeout = defaultDBTimeout
	}
	return &AuthService{
		store:     store,
		metrics:   recorder,
		dbTimeout: dbTimeout,
	}
}

// SignupInput defines input for creating a user.
type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Signup validates the input, hashes the password, and stores the new user.
// The raw password is discarded after hashing. The existence pre-check is a
// fast path only; the database unique index is the authoritative guard, so a
// concurrent duplicate signup still surfaces as ErrEmailTaken.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*model.User, error) {
	first := strings.TrimSpace(input.FirstName)
	last := strings.TrimSpace(input.LastName)
	email := strings.TrimSpace(input.Email)

	if first == "" || last == "" || email == "" || input.Password == "" {
		return nil, ErrMissingFields
	}

	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	exists, err := s.store.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:           ulid.Make().String(),
		FirstName:    first,
		LastName:     last,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.metrics.IncUserSignedUp()

	return user, nil
}

// Login verifies the credentials and returns the stored user.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}

	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.metrics.IncLoginRejected()
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	match, err := auth.VerifyPassword(password, user.PasswordHash)
	if err != nil || !match {
		s.metrics.IncLoginRejected()
		return nil, ErrInvalidCredentials
	}

	s.metrics.IncUserLoggedIn()

	return user, nil
}
