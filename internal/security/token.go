package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the lifetime of an issued token.
const DefaultTokenTTL = 24 * time.Hour

// MinSecretLen is the minimum HMAC key length accepted for HS256.
const MinSecretLen = 32

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrWeakSecret   = errors.New("token secret is too short")
)

type TokenConfig struct {
	Secret []byte
	TTL    time.Duration
}

// TokenService issues and verifies HS256 signed bearer tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(cfg TokenConfig) (*TokenService, error) {
	const op = "security.NewTokenService"

	if len(cfg.Secret) < MinSecretLen {
		return nil, fmt.Errorf("%s: %w", op, ErrWeakSecret)
	}

	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTokenTTL
	}

	return &TokenService{
		secret: cfg.Secret,
		ttl:    cfg.TTL,
		now:    time.Now,
	}, nil
}

// WithClock returns a copy of the service that reads time from now.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	cp := *s
	cp.now = now
	return &cp
}

// Issue signs a token for subject. Extra claims are embedded as is, but can
// not override sub, iat or exp.
func (s *TokenService) Issue(subject string, extraClaims map[string]any) (string, error) {
	const op = "security.TokenService.Issue"

	now := s.now()

	claims := jwt.MapClaims{}
	for k, v := range extraClaims {
		claims[k] = v
	}
	claims["sub"] = subject
	claims["iat"] = jwt.NewNumericDate(now)
	claims["exp"] = jwt.NewNumericDate(now.Add(s.ttl))

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return signed, nil
}

// Verify checks signature, algorithm and expiry and returns the claims.
func (s *TokenService) Verify(token string) (jwt.MapClaims, error) {
	const op = "security.TokenService.Verify"

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(
		token,
		claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, ErrInvalidToken, err)
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, fmt.Errorf("%s: %w: missing subject", op, ErrInvalidToken)
	}

	return claims, nil
}

// ExtractSubject returns the subject of a valid token.
func (s *TokenService) ExtractSubject(token string) (string, error) {
	claims, err := s.Verify(token)
	if err != nil {
		return "", err
	}

	return claims.GetSubject()
}
