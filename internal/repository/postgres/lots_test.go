package postgresrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirinyoku/parkgo/internal/domain"
	"github.com/kirinyoku/parkgo/internal/repository"
)

func TestLotRepo_List(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, busy FROM lots ORDER BY id")).
		WillReturnRows(mock.NewRows([]string{"id", "busy"}).
			AddRow(int64(1), false).
			AddRow(int64(2), true))

	lots, err := store.Lots().List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Lot{{ID: 1}, {ID: 2, Busy: true}}, lots)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLotRepo_ListEmpty(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM lots")).
		WillReturnRows(mock.NewRows([]string{"id", "busy"}))

	lots, err := store.Lots().List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, lots)
	assert.Empty(t, lots)
}

func TestLotRepo_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, busy FROM lots WHERE id = $1")).
			WithArgs(int64(4)).
			WillReturnRows(mock.NewRows([]string{"id", "busy"}).AddRow(int64(4), true))

		lot, err := store.Lots().Get(context.Background(), 4)
		require.NoError(t, err)
		assert.Equal(t, &domain.Lot{ID: 4, Busy: true}, lot)
	})

	t.Run("missing", func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectQuery(regexp.QuoteMeta("FROM lots WHERE id = $1")).
			WithArgs(int64(99)).
			WillReturnError(pgx.ErrNoRows)

		_, err := store.Lots().Get(context.Background(), 99)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestLotRepo_Create(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO lots(busy) VALUES ($1) RETURNING id")).
		WithArgs(false).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow(int64(12)))

	lot, err := store.Lots().Create(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, &domain.Lot{ID: 12}, lot)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLotRepo_SetBusy(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE lots SET busy = $2 WHERE id = $1")).
			WithArgs(int64(3), true).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		require.NoError(t, store.Lots().SetBusy(context.Background(), 3, true))
	})

	t.Run("missing", func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE lots SET busy = $2 WHERE id = $1")).
			WithArgs(int64(3), true).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := store.Lots().SetBusy(context.Background(), 3, true)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestLotRepo_Delete(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM lots WHERE id = $1")).
		WithArgs(int64(8)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := store.Lots().Delete(context.Background(), 8)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestLotRepo_ReserveFree(t *testing.T) {
	t.Run("reserves", func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE SKIP LOCKED")).
			WillReturnRows(mock.NewRows([]string{"id"}).AddRow(int64(6)))

		id, err := store.Lots().ReserveFree(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(6), id)
	})

	t.Run("none free", func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE SKIP LOCKED")).
			WillReturnError(pgx.ErrNoRows)

		_, err := store.Lots().ReserveFree(context.Background())
		assert.ErrorIs(t, err, repository.ErrNoFreeLots)
		assert.NotErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("db failure", func(t *testing.T) {
		store, mock := newMockStore(t)

		boom := errors.New("boom")
		mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE SKIP LOCKED")).WillReturnError(boom)

		_, err := store.Lots().ReserveFree(context.Background())
		assert.ErrorIs(t, err, boom)
	})
}

func TestLotRepo_Release(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE lots SET busy = false WHERE id = $1")).
		WithArgs(int64(2)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE lots SET busy = false WHERE id = $1")).
		WithArgs(int64(404)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	ok, err := store.Lots().Release(context.Background(), 2)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Lots().Release(context.Background(), 404)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLotRepo_Counts(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("COALESCE(SUM(CASE WHEN busy THEN 0 ELSE 1 END), 0)")).
		WillReturnRows(mock.NewRows([]string{"free", "busy"}).AddRow(int64(3), int64(2)))

	c, err := store.Lots().Counts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &domain.LotCounts{Free: 3, Busy: 2, Total: 5}, c)
}

func TestLotRepo_WithUsesTx(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted, AccessMode: pgx.ReadWrite})
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE SKIP LOCKED")).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectCommit()

	opts := &pgx.TxOptions{IsoLevel: pgx.ReadCommitted, AccessMode: pgx.ReadWrite}
	err := store.RunTx(context.Background(), opts, func(ctx context.Context, tx DB) error {
		_, err := store.Lots().With(tx).ReserveFree(ctx)
		return err
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
