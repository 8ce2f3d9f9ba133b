package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/kirinyoku/parkgo/internal/metrics"
	"github.com/kirinyoku/parkgo/internal/security"
	"github.com/kirinyoku/parkgo/internal/service/users"
)

// Session is what a client receives after registering or authenticating.
type Session struct {
	Email string
	Token string
}

type Service struct {
	users  *users.Service
	tokens *security.TokenService
}

func New(users *users.Service, tokens *security.TokenService) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
	}
}

// Register creates a user and signs a token for it.
//
// Returns:
//   - error: users.ErrUserAlreadyExists if the email is taken.
//   - error: domain.ErrValidation if a field is missing or malformed.
func (s *Service) Register(ctx context.Context, in users.Input) (*Session, error) {
	const op = "service.auth.Register"

	u, err := s.users.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.session(op, u.Email)
}

// Authenticate checks the credentials and signs a token.
//
// Returns:
//   - error: auth.ErrAuthenticationFailed for an unknown email or a wrong
//     password.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*Session, error) {
	const op = "service.auth.Authenticate"

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			metrics.AuthAttempt("failed")
			return nil, fmt.Errorf("%s: %w", op, ErrAuthenticationFailed)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := security.ComparePassword(u.PasswordHash, password); err != nil {
		metrics.AuthAttempt("failed")
		if errors.Is(err, security.ErrPasswordMismatch) {
			return nil, fmt.Errorf("%s: %w", op, ErrAuthenticationFailed)
		}
		return nil, fmt.Errorf("%s: %w: %v", op, ErrAuthenticationFailed, err)
	}

	metrics.AuthAttempt("ok")

	return s.session(op, u.Email)
}

func (s *Service) session(op, email string) (*Session, error) {
	token, err := s.tokens.Issue(email, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Session{Email: email, Token: token}, nil
}
