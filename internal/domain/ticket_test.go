package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

func TestPrice(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		want    string
	}{
		{"zero", 0, "1"},
		{"under an hour", 59*time.Minute + 59*time.Second, "1"},
		{"exactly one hour", time.Hour, "1.9"},
		{"ninety minutes", 90 * time.Minute, "1.9"},
		{"just under two hours", 2*time.Hour - time.Millisecond, "1.9"},
		{"two hours", 2 * time.Hour, "2.8"},
		{"a day", 24 * time.Hour, "22.6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Price(t0, t0.Add(tt.elapsed))
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestTicket_End(t *testing.T) {
	tk := &Ticket{ID: 1, Start: t0, LotID: 3}
	require.Equal(t, TicketOpen, tk.State())

	tk.End(t0.Add(90 * time.Minute))

	require.NotNil(t, tk.Finish)
	require.NotNil(t, tk.Price)
	assert.Equal(t, t0.Add(90*time.Minute), *tk.Finish)
	assert.Equal(t, "1.9", tk.Price.String())
	assert.Equal(t, TicketEnded, tk.State())
	assert.NoError(t, tk.Validate())
}

func TestTicket_EndTwiceOverwrites(t *testing.T) {
	tk := &Ticket{ID: 1, Start: t0, LotID: 3}

	tk.End(t0.Add(10 * time.Minute))
	tk.End(t0.Add(3 * time.Hour))

	assert.Equal(t, t0.Add(3*time.Hour), *tk.Finish)
	assert.Equal(t, "3.7", tk.Price.String())
}

func TestTicket_Settle(t *testing.T) {
	finish := t0.Add(time.Hour)

	t.Run("not ended", func(t *testing.T) {
		tk := &Ticket{Start: t0, LotID: 1}
		err := tk.Settle(finish, DefaultPaymentWindow)
		assert.ErrorIs(t, err, ErrParkingNotEnded)
		assert.Nil(t, tk.Paid)
	})

	t.Run("within window", func(t *testing.T) {
		tk := &Ticket{Start: t0, LotID: 1}
		tk.End(finish)

		now := finish.Add(10*time.Minute + 59*time.Second)
		require.NoError(t, tk.Settle(now, DefaultPaymentWindow))
		require.NotNil(t, tk.Paid)
		assert.Equal(t, now, *tk.Paid)
		assert.Equal(t, finish, *tk.Finish)
		assert.Equal(t, TicketPaid, tk.State())
	})

	t.Run("immediately", func(t *testing.T) {
		tk := &Ticket{Start: t0, LotID: 1}
		tk.End(finish)
		assert.NoError(t, tk.Settle(finish, DefaultPaymentWindow))
	})

	t.Run("expired refreshes finish", func(t *testing.T) {
		tk := &Ticket{Start: t0, LotID: 1}
		tk.End(finish)
		price := *tk.Price

		now := finish.Add(11 * time.Minute)
		err := tk.Settle(now, DefaultPaymentWindow)
		assert.ErrorIs(t, err, ErrPaymentExpired)
		assert.Nil(t, tk.Paid)
		assert.Equal(t, now, *tk.Finish)
		assert.True(t, price.Equal(*tk.Price))

		// the refreshed finish opens a new window
		assert.NoError(t, tk.Settle(now.Add(time.Minute), DefaultPaymentWindow))
	})

	t.Run("sub minute window counts as zero", func(t *testing.T) {
		tk := &Ticket{Start: t0, LotID: 1}
		tk.End(finish)

		assert.NoError(t, tk.Settle(finish.Add(59*time.Second), 30*time.Second))

		tk = &Ticket{Start: t0, LotID: 1}
		tk.End(finish)
		assert.ErrorIs(t, tk.Settle(finish.Add(time.Minute), 30*time.Second), ErrPaymentExpired)
	})

	t.Run("already paid", func(t *testing.T) {
		tk := &Ticket{Start: t0, LotID: 1}
		tk.End(finish)
		require.NoError(t, tk.Settle(finish, DefaultPaymentWindow))

		assert.ErrorIs(t, tk.Settle(finish.Add(time.Minute), DefaultPaymentWindow), ErrAlreadyPaid)
	})
}

func TestTicket_Validate(t *testing.T) {
	finish := t0.Add(time.Hour)
	price := decimal.NewFromInt(1)

	tests := []struct {
		name   string
		ticket Ticket
		field  string
	}{
		{"price without finish", Ticket{Start: t0, Price: &price, LotID: 1}, "price"},
		{"finish without price", Ticket{Start: t0, Finish: &finish, LotID: 1}, "price"},
		{"paid without finish", Ticket{Start: t0, Paid: &finish, LotID: 1}, "paid"},
		{"missing lot", Ticket{Start: t0}, "lot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ticket.Validate()
			require.ErrorIs(t, err, ErrValidation)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Contains(t, ve.Fields, tt.field)
		})
	}

	ok := Ticket{Start: t0, Finish: &finish, Price: &price, Paid: &finish, LotID: 1}
	assert.NoError(t, ok.Validate())
}

func TestUser_RolesAlwaysAdmin(t *testing.T) {
	u := &User{Email: "a@b.c"}
	assert.Equal(t, []Role{RoleAdmin}, u.Roles())
}
