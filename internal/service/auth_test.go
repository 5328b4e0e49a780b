package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopfront/shopfront/internal/auth"
	"github.com/shopfront/shopfront/internal/metrics"
	"github.com/shopfront/shopfront/internal/model"
	"github.com/shopfront/shopfront/internal/repository"
)

// fakeUserStore is an in-memory UserStore keyed by email.
// It enforces email uniqueness the way the database unique index does.
// precheckMiss makes EmailExists report false regardless of contents, to
// simulate a concurrent signup landing between check and insert.
type fakeUserStore struct {
	users        map[string]*model.User
	err          error
	precheckMiss bool
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*model.User)}
}

func (f *fakeUserStore) CreateUser(ctx context.Context, user *model.User) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.users[user.Email]; ok {
		return repository.ErrEmailExists
	}
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	user, ok := f.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if f.precheckMiss {
		return false, nil
	}
	_, ok := f.users[email]
	return ok, nil
}

func validSignup() SignupInput {
	return SignupInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "analytical-engine-1843",
	}
}

func TestSignup_StoresVerifiableHash(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store, nil, 0)

	input := validSignup()
	user, err := svc.Signup(context.Background(), input)
	if err != nil {
		t.Fatalf("Signup failed: %v", err)
	}

	if user.PasswordHash == input.Password {
		t.Error("stored hash must never equal the plaintext password")
	}

	match, err := auth.VerifyPassword(input.Password, user.PasswordHash)
	if err != nil {
		t.Fatalf("VerifyPassword failed: %v", err)
	}
	if !match {
		t.Error("stored hash should verify against the original password")
	}

	if user.ID == "" {
		t.Error("expected a generated user ID")
	}
	if user.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestSignup_MissingFields(t *testing.T) {
	svc := NewAuthService(newFakeUserStore(), nil, 0)

	tests := []struct {
		name   string
		mutate func(*SignupInput)
	}{
		{"missing first name", func(in *SignupInput) { in.FirstName = "" }},
		{"missing last name", func(in *SignupInput) { in.LastName = "" }},
		{"missing email", func(in *SignupInput) { in.Email = "" }},
		{"missing password", func(in *SignupInput) { in.Password = "" }},
		{"whitespace first name", func(in *SignupInput) { in.FirstName = "   " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validSignup()
			tt.mutate(&input)

			_, err := svc.Signup(context.Background(), input)
			if !errors.Is(err, ErrMissingFields) {
				t.Errorf("expected ErrMissingFields, got %v", err)
			}
		})
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store, nil, 0)

	if _, err := svc.Signup(context.Background(), validSignup()); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}

	_, err := svc.Signup(context.Background(), validSignup())
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken for duplicate email, got %v", err)
	}

	if len(store.users) != 1 {
		t.Errorf("expected exactly one stored user, got %d", len(store.users))
	}
}

func TestSignup_RaceLosesToUniqueIndex(t *testing.T) {
	// Simulate the check-then-insert race: the pre-check passes but the
	// insert hits the unique index.
	store := newFakeUserStore()
	svc := NewAuthService(store, nil, 0)

	input := validSignup()
	store.users[input.Email] = &model.User{Email: input.Email}
	store.precheckMiss = true

	_, err := svc.Signup(context.Background(), input)
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	store := newFakeUserStore()
	recorder := metrics.NewInMemory()
	svc := NewAuthService(store, recorder, 0)

	input := validSignup()
	if _, err := svc.Signup(context.Background(), input); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	user, err := svc.Login(context.Background(), input.Email, input.Password)
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if user.Email != input.Email {
		t.Errorf("expected user %s, got %s", input.Email, user.Email)
	}

	if got := recorder.Snapshot().UsersLoggedIn; got != 1 {
		t.Errorf("expected 1 login recorded, got %d", got)
	}
}

func TestLogin_IndistinguishableFailures(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store, nil, 0)

	input := validSignup()
	if _, err := svc.Signup(context.Background(), input); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	// Wrong password for an existing email and lookup of a nonexistent
	// email must return the same error kind, to avoid account enumeration.
	_, wrongPwErr := svc.Login(context.Background(), input.Email, "wrong-password")
	_, noUserErr := svc.Login(context.Background(), "ghost@example.com", input.Password)

	if !errors.Is(wrongPwErr, ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", wrongPwErr)
	}
	if !errors.Is(noUserErr, ErrInvalidCredentials) {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", noUserErr)
	}
	if wrongPwErr.Error() != noUserErr.Error() {
		t.Errorf("failure messages differ: %q vs %q", wrongPwErr, noUserErr)
	}
}

func TestLogin_MissingFields(t *testing.T) {
	svc := NewAuthService(newFakeUserStore(), nil, 0)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"missing email", "", "secret"},
		{"missing password", "ada@example.com", ""},
		{"both missing", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tt.email, tt.password)
			if !errors.Is(err, ErrMissingFields) {
				t.Errorf("expected ErrMissingFields, got %v", err)
			}
		})
	}
}

func TestSignup_StoreErrorIsWrapped(t *testing.T) {
	store := newFakeUserStore()
	store.err = errors.New("connection reset")
	svc := NewAuthService(store, nil, 0)

	_, err := svc.Signup(context.Background(), validSignup())
	if err == nil || !strings.Contains(err.Error(), "connection reset") {
		t.Errorf("expected wrapped store error, got %v", err)
	}
	if errors.Is(err, ErrMissingFields) || errors.Is(err, ErrEmailTaken) {
		t.Errorf("store errors must not map to client errors, got %v", err)
	}
}
