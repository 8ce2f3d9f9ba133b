package security

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirinyoku/parkgo/internal/domain"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func newTokenService(t *testing.T, now time.Time) *TokenService {
	t.Helper()

	svc, err := NewTokenService(TokenConfig{Secret: testSecret})
	require.NoError(t, err)

	return svc.WithClock(func() time.Time { return now })
}

func TestNewTokenService_WeakSecret(t *testing.T) {
	_, err := NewTokenService(TokenConfig{Secret: []byte("short")})
	assert.ErrorIs(t, err, ErrWeakSecret)
}

func TestTokenService_IssueVerify(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc := newTokenService(t, now)

	token, err := svc.Issue("mario@rossi.it", map[string]any{"scope": "parking", "sub": "ignored"})
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3)

	claims, err := svc.Verify(token)
	require.NoError(t, err)

	sub, err := claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "mario@rossi.it", sub)
	assert.Equal(t, "parking", claims["scope"])

	iat, err := claims.GetIssuedAt()
	require.NoError(t, err)
	assert.Equal(t, now.Unix(), iat.Unix())

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.Equal(t, now.Add(24*time.Hour).Unix(), exp.Unix())

	subject, err := svc.ExtractSubject(token)
	require.NoError(t, err)
	assert.Equal(t, "mario@rossi.it", subject)
}

func TestTokenService_Expired(t *testing.T) {
	issuedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	token, err := newTokenService(t, issuedAt).Issue("a@b.it", nil)
	require.NoError(t, err)

	later := newTokenService(t, issuedAt.Add(24*time.Hour+time.Second))
	_, err = later.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	justBefore := newTokenService(t, issuedAt.Add(23*time.Hour))
	_, err = justBefore.Verify(token)
	assert.NoError(t, err)
}

func TestTokenService_Rejects(t *testing.T) {
	now := time.Now()
	svc := newTokenService(t, now)

	other, err := NewTokenService(TokenConfig{Secret: []byte("ffffffffffffffffffffffffffffffff")})
	require.NoError(t, err)
	foreign, err := other.Issue("a@b.it", nil)
	require.NoError(t, err)

	noSub, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString(testSecret)
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "a@b.it",
	}).SignedString(testSecret)
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"sub": "a@b.it",
		"exp": jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString(testSecret)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"malformed":       "not.a.token",
		"empty":           "",
		"wrong key":       foreign,
		"no subject":      noSub,
		"no expiry":       noExp,
		"wrong algorithm": hs512,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Verify(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.NoError(t, ComparePassword(hash, "s3cret"))
	assert.ErrorIs(t, ComparePassword(hash, "wrong"), ErrPasswordMismatch)
}

func TestPrincipalContext(t *testing.T) {
	_, ok := PrincipalFrom(context.Background())
	assert.False(t, ok)

	p := &Principal{UserID: 7, Email: "a@b.it", Roles: []domain.Role{domain.RoleAdmin}}
	got, ok := PrincipalFrom(WithPrincipal(context.Background(), p))
	require.True(t, ok)
	assert.Same(t, p, got)
	assert.True(t, got.HasRole(domain.RoleAdmin))

	var none *Principal
	assert.False(t, none.HasRole(domain.RoleAdmin))
	assert.False(t, (&Principal{}).HasRole(domain.RoleAdmin))
}
