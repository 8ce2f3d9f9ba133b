package postgresrepo

import (
	"context"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirinyoku/parkgo/internal/domain"
	"github.com/kirinyoku/parkgo/internal/repository"
)

var userCols = []string{"id", "name", "surname", "email", "password"}

func TestUserRepo_GetByEmail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
			WithArgs("ann@example.com").
			WillReturnRows(mock.NewRows(userCols).
				AddRow(int64(1), "Ann", "Lee", "ann@example.com", "$2a$10$hash"))

		u, err := store.Users().GetByEmail(context.Background(), "ann@example.com")
		require.NoError(t, err)
		assert.Equal(t, &domain.User{
			ID:           1,
			Name:         "Ann",
			Surname:      "Lee",
			Email:        "ann@example.com",
			PasswordHash: "$2a$10$hash",
		}, u)
	})

	t.Run("missing", func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
			WithArgs("nobody@example.com").
			WillReturnError(pgx.ErrNoRows)

		_, err := store.Users().GetByEmail(context.Background(), "nobody@example.com")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestUserRepo_List(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users ORDER BY id")).
		WillReturnRows(mock.NewRows(userCols).
			AddRow(int64(1), "Ann", "Lee", "ann@example.com", "h1").
			AddRow(int64(2), "Bob", "Ray", "bob@example.com", "h2"))

	users, err := store.Users().List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "bob@example.com", users[1].Email)
}

func TestUserRepo_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users(name, surname, email, password)")).
			WithArgs("Ann", "Lee", "ann@example.com", "h").
			WillReturnRows(mock.NewRows([]string{"id"}).AddRow(int64(5)))

		u := &domain.User{Name: "Ann", Surname: "Lee", Email: "ann@example.com", PasswordHash: "h"}
		require.NoError(t, store.Users().Create(context.Background(), u))
		assert.Equal(t, int64(5), u.ID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users(name, surname, email, password)")).
			WithArgs("Ann", "Lee", "ann@example.com", "h").
			WillReturnError(&pgconn.PgError{Code: "23505"})

		u := &domain.User{Name: "Ann", Surname: "Lee", Email: "ann@example.com", PasswordHash: "h"}
		err := store.Users().Create(context.Background(), u)
		assert.ErrorIs(t, err, repository.ErrConflict)
	})
}

func TestUserRepo_Update(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users")).
		WithArgs(int64(9), "A", "B", "a@b.c", "h").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := store.Users().Update(context.Background(), &domain.User{
		ID: 9, Name: "A", Surname: "B", Email: "a@b.c", PasswordHash: "h",
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserRepo_Delete(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, store.Users().Delete(context.Background(), 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}
