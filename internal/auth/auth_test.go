package auth

import (
	"io"
	"log/slog"
	"testing"

	"github.com/metinatakli/cinema-management-system/internal/domain"
	"github.com/metinatakli/cinema-management-system/internal/store"
	appvalidator "github.com/metinatakli/cinema-management-system/internal/validator"
	"github.com/stretchr/testify/suite"
)

type AuthTestSuite struct {
	suite.Suite
	service *Service
	users   *store.Memory[domain.User]
}

func (s *AuthTestSuite) SetupTest() {
	s.users = store.NewMemory[domain.User]()
	s.service = NewService(s.users, appvalidator.NewValidator(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestAuthSuite(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}

func (s *AuthTestSuite) TestRegisterAndAuthenticate() {
	creds := Credentials{Username: "alice", Password: "s3cret"}
	s.Require().NoError(s.service.Register(creds))

	user, err := s.service.Authenticate(creds)
	s.Require().NoError(err)
	s.Equal("alice", user.Username)

	// The stored credential is a hash, never the password itself.
	users, err := s.users.LoadAll()
	s.Require().NoError(err)
	s.Require().Len(users, 1)
	s.NotContains(string(users[0].Password.Hash), "s3cret")
}

func (s *AuthTestSuite) TestRegisterDuplicateUsername() {
	creds := Credentials{Username: "alice", Password: "s3cret"}
	s.Require().NoError(s.service.Register(creds))

	err := s.service.Register(Credentials{Username: "alice", Password: "other"})
	s.Require().ErrorIs(err, domain.ErrConflict)
}

func (s *AuthTestSuite) TestRegisterValidation() {
	tests := []struct {
		name      string
		creds     Credentials
		wantField string
	}{
		{
			name:      "blank username",
			creds:     Credentials{Username: " ", Password: "s3cret"},
			wantField: "Username",
		},
		{
			name:      "username with separator",
			creds:     Credentials{Username: "al,ice", Password: "s3cret"},
			wantField: "Username",
		},
		{
			name:      "empty password",
			creds:     Credentials{Username: "alice", Password: ""},
			wantField: "Password",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			err := s.service.Register(tt.creds)

			var validationErr *domain.ValidationError
			s.Require().ErrorAs(err, &validationErr)
			s.Contains(validationErr.Violations, tt.wantField)
		})
	}
}

// Unknown usernames and wrong passwords must be indistinguishable to the
// caller.
func (s *AuthTestSuite) TestAuthenticateFailsUniformly() {
	s.Require().NoError(s.service.Register(Credentials{Username: "alice", Password: "s3cret"}))

	_, err := s.service.Authenticate(Credentials{Username: "alice", Password: "wrong"})
	s.Require().ErrorIs(err, ErrInvalidCredentials)

	_, err = s.service.Authenticate(Credentials{Username: "nobody", Password: "s3cret"})
	s.Require().ErrorIs(err, ErrInvalidCredentials)
}
