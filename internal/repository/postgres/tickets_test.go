package postgresrepo

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirinyoku/parkgo/internal/domain"
	"github.com/kirinyoku/parkgo/internal/repository"
)

var ticketCols = []string{"id", "start_at", "finish_at", "price", "paid_at", "lot_id"}

func TestTicketRepo_Get(t *testing.T) {
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	finish := start.Add(3 * time.Hour)
	price := decimal.RequireFromString("3.70")

	t.Run("ended ticket", func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectQuery(regexp.QuoteMeta("FROM tickets WHERE id = $1")).
			WithArgs(int64(1)).
			WillReturnRows(mock.NewRows(ticketCols).
				AddRow(int64(1), start, &finish, decimal.NewNullDecimal(price), nil, int64(7)))

		got, err := store.Tickets().Get(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.ID)
		assert.Equal(t, start, got.Start)
		require.NotNil(t, got.Finish)
		assert.Equal(t, finish, *got.Finish)
		require.NotNil(t, got.Price)
		assert.True(t, price.Equal(*got.Price))
		assert.Nil(t, got.Paid)
		assert.Equal(t, int64(7), got.LotID)
		assert.Equal(t, domain.TicketEnded, got.State())
	})

	t.Run("open ticket", func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectQuery(regexp.QuoteMeta("FROM tickets WHERE id = $1")).
			WithArgs(int64(2)).
			WillReturnRows(mock.NewRows(ticketCols).
				AddRow(int64(2), start, nil, nil, nil, int64(3)))

		got, err := store.Tickets().Get(context.Background(), 2)
		require.NoError(t, err)
		assert.Nil(t, got.Finish)
		assert.Nil(t, got.Price)
		assert.Equal(t, domain.TicketOpen, got.State())
	})

	t.Run("missing", func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectQuery(regexp.QuoteMeta("FROM tickets WHERE id = $1")).
			WithArgs(int64(5)).
			WillReturnError(pgx.ErrNoRows)

		_, err := store.Tickets().Get(context.Background(), 5)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestTicketRepo_GetForUpdate(t *testing.T) {
	store, mock := newMockStore(t)
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1 FOR UPDATE")).
		WithArgs(int64(1)).
		WillReturnRows(mock.NewRows(ticketCols).AddRow(int64(1), start, nil, nil, nil, int64(2)))

	got, err := store.Tickets().GetForUpdate(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.LotID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTicketRepo_List(t *testing.T) {
	store, mock := newMockStore(t)
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM tickets ORDER BY id")).
		WillReturnRows(mock.NewRows(ticketCols).
			AddRow(int64(1), start, nil, nil, nil, int64(1)).
			AddRow(int64(2), start, nil, nil, nil, int64(2)))

	got, err := store.Tickets().List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[1].LotID)
}

func TestTicketRepo_Create(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO tickets(start_at, finish_at, price, paid_at, lot_id)")).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), decimal.NullDecimal{}, pgxmock.AnyArg(), int64(4)).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow(int64(10)))

	tk := &domain.Ticket{Start: time.Now(), LotID: 4}
	require.NoError(t, store.Tickets().Create(context.Background(), tk))
	assert.Equal(t, int64(10), tk.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTicketRepo_Save(t *testing.T) {
	price := decimal.RequireFromString("1.90")
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	finish := start.Add(90 * time.Minute)
	tk := &domain.Ticket{ID: 3, Start: start, Finish: &finish, Price: &price, LotID: 1}

	t.Run("saved", func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE tickets")).
			WithArgs(int64(3), pgxmock.AnyArg(), pgxmock.AnyArg(), decimal.NewNullDecimal(price), pgxmock.AnyArg(), int64(1)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		require.NoError(t, store.Tickets().Save(context.Background(), tk))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE tickets")).
			WithArgs(int64(3), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), int64(1)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := store.Tickets().Save(context.Background(), tk)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestTicketRepo_Delete(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM tickets WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, store.Tickets().Delete(context.Background(), 3))
}

func TestNullPrice(t *testing.T) {
	assert.False(t, nullPrice(nil).Valid)

	p := decimal.RequireFromString("2.80")
	np := nullPrice(&p)
	assert.True(t, np.Valid)
	assert.True(t, p.Equal(np.Decimal))
}
