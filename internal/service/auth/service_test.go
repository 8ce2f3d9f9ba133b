package auth

import (
	"context"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	postgresrepo "github.com/kirinyoku/parkgo/internal/repository/postgres"
	"github.com/kirinyoku/parkgo/internal/security"
	"github.com/kirinyoku/parkgo/internal/service/users"
)

var userCols = []string{"id", "name", "surname", "email", "password"}

func setup(t *testing.T) (*Service, *security.TokenService, pgxmock.PgxPoolIface) {
	t.Helper()

	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	tokens, err := security.NewTokenService(security.TokenConfig{
		Secret: []byte("0123456789abcdef0123456789abcdef"),
	})
	require.NoError(t, err)

	return New(users.New(postgresrepo.NewStore(pool)), tokens), tokens, pool
}

func TestService_Register(t *testing.T) {
	in := users.Input{Name: "Mario", Surname: "Rossi", Email: "mario@rossi.it", Password: "pw123"}

	t.Run("returns a token for the new user", func(t *testing.T) {
		svc, tokens, pool := setup(t)

		pool.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
			WithArgs("Mario", "Rossi", "mario@rossi.it", pgxmock.AnyArg()).
			WillReturnRows(pool.NewRows([]string{"id"}).AddRow(int64(1)))

		sess, err := svc.Register(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, "mario@rossi.it", sess.Email)

		sub, err := tokens.ExtractSubject(sess.Token)
		require.NoError(t, err)
		assert.Equal(t, "mario@rossi.it", sub)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc, _, pool := setup(t)

		pool.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
			WithArgs("Mario", "Rossi", "mario@rossi.it", pgxmock.AnyArg()).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		_, err := svc.Register(context.Background(), in)
		assert.ErrorIs(t, err, users.ErrUserAlreadyExists)
	})
}

func TestService_Authenticate(t *testing.T) {
	hash, err := security.HashPassword("pw123")
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		svc, tokens, pool := setup(t)

		pool.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
			WithArgs("mario@rossi.it").
			WillReturnRows(pool.NewRows(userCols).AddRow(int64(1), "Mario", "Rossi", "mario@rossi.it", hash))

		sess, err := svc.Authenticate(context.Background(), "mario@rossi.it", "pw123")
		require.NoError(t, err)

		_, err = tokens.Verify(sess.Token)
		assert.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, _, pool := setup(t)

		pool.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
			WithArgs("mario@rossi.it").
			WillReturnRows(pool.NewRows(userCols).AddRow(int64(1), "Mario", "Rossi", "mario@rossi.it", hash))

		_, err := svc.Authenticate(context.Background(), "mario@rossi.it", "nope")
		assert.ErrorIs(t, err, ErrAuthenticationFailed)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, _, pool := setup(t)

		pool.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
			WithArgs("ghost@rossi.it").
			WillReturnError(pgx.ErrNoRows)

		_, err := svc.Authenticate(context.Background(), "ghost@rossi.it", "pw123")
		assert.ErrorIs(t, err, ErrAuthenticationFailed)
	})
}
