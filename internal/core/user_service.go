package core

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned by Authenticate for a bad username or
// password. The two cases are deliberately indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid username or password")

// UserService provides the user boundary: registration and credential checks.
// Session issuance (tokens, cookies) belongs to the transport adapter.
type UserService interface {
	// Register hashes the password with bcrypt and persists a new user.
	Register(ctx context.Context, username, password string) (*User, error)

	// Authenticate verifies credentials. Returns ErrInvalidCredentials on any
	// mismatch.
	Authenticate(ctx context.Context, username, password string) (*User, error)

	// GetUser returns a user by id.
	GetUser(ctx context.Context, id string) (*User, error)
}

type userService struct {
	users UserStore
}

// NewUserService constructs a UserService on the given store.
func NewUserService(users UserStore) UserService {
	return &userService{users: users}
}

func (s *userService) Register(ctx context.Context, username, password string) (*User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, ValidationError{Field: "username", Reason: "must not be empty"}
	}
	if len(password) < 4 {
		return nil, ValidationError{Field: "password", Reason: "must be at least 4 characters"}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return s.users.Create(ctx, User{
		Username:     username,
		PasswordHash: string(hash),
	})
}

func (s *userService) Authenticate(ctx context.Context, username, password string) (*User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		var nf NotFoundError
		if errors.As(err, &nf) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id string) (*User, error) {
	return s.users.Get(ctx, id)
}
