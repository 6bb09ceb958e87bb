// Package auth is the credential shell around the booking core. The core
// itself never validates credentials; it only receives the authenticated
// customer identity for ownership checks.
package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/cinema-management-system/internal/domain"
	"github.com/metinatakli/cinema-management-system/internal/store"
	appvalidator "github.com/metinatakli/cinema-management-system/internal/validator"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Service struct {
	mu        sync.Mutex
	users     store.Store[domain.User]
	validator *validator.Validate
	logger    *slog.Logger
}

func NewService(users store.Store[domain.User], validator *validator.Validate, logger *slog.Logger) *Service {
	return &Service{users: users, validator: validator, logger: logger}
}

type Credentials struct {
	Username string `validate:"required,nosep"`
	Password string `validate:"required,nosep"`
}

func (s *Service) Register(creds Credentials) error {
	if err := appvalidator.ToValidationError(s.validator.Struct(creds)); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.users.LoadAll()
	if err != nil {
		return err
	}

	if _, ok := store.FindByKey(users, username, creds.Username); ok {
		return fmt.Errorf("%w: username %s already taken", domain.ErrConflict, creds.Username)
	}

	user := domain.User{Username: creds.Username}
	if err := user.Password.Set(creds.Password); err != nil {
		return err
	}

	if err := s.users.Append(user); err != nil {
		return err
	}

	s.logger.Info("user registered", "username", user.Username)

	return nil
}

// Authenticate returns the user for valid credentials. Unknown usernames and
// wrong passwords fail identically.
func (s *Service) Authenticate(creds Credentials) (domain.User, error) {
	users, err := s.users.LoadAll()
	if err != nil {
		return domain.User{}, err
	}

	user, ok := store.FindByKey(users, username, creds.Username)
	if !ok {
		return domain.User{}, ErrInvalidCredentials
	}

	matches, err := user.Password.Matches(creds.Password)
	if err != nil {
		return domain.User{}, err
	}
	if !matches {
		return domain.User{}, ErrInvalidCredentials
	}

	return user, nil
}

func username(u domain.User) string { return u.Username }
