package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	// BasePrice is charged for every session, including the first hour.
	BasePrice = decimal.NewFromInt(1)
	// HourlyRate is charged for each full hour elapsed.
	HourlyRate = decimal.RequireFromString("0.90")
)

// DefaultPaymentWindow is how long after the end of a session it can be paid.
const DefaultPaymentWindow = 10 * time.Minute

// State derives the lifecycle state from the timestamps.
func (t *Ticket) State() TicketState {
	switch {
	case t.Paid != nil:
		return TicketPaid
	case t.Finish != nil:
		return TicketEnded
	default:
		return TicketOpen
	}
}

// Price computes the fee for a session: full hours are charged at the
// hourly rate on top of the base price, partial hours are free.
func Price(start, finish time.Time) decimal.Decimal {
	hours := finish.Sub(start).Milliseconds() / time.Hour.Milliseconds()
	return BasePrice.Add(HourlyRate.Mul(decimal.NewFromInt(hours)))
}

// End closes the session at now. Ending an already ended ticket moves the
// finish to now and recomputes the price.
func (t *Ticket) End(now time.Time) {
	finish := now
	price := Price(t.Start, finish)

	t.Finish = &finish
	t.Price = &price
}

// Settle marks the ticket paid at now. When the payment window since the end
// of the session is exceeded, the finish is moved to now and
// ErrPaymentExpired is returned: the caller must persist the refreshed
// finish before reporting the error.
// Both the elapsed time and window are counted in whole minutes, so a window
// shorter than a minute behaves as zero.
func (t *Ticket) Settle(now time.Time, window time.Duration) error {
	if t.Finish == nil {
		return ErrParkingNotEnded
	}

	if t.Paid != nil {
		return ErrAlreadyPaid
	}

	minutes := now.Sub(*t.Finish).Milliseconds() / time.Minute.Milliseconds()
	if minutes > int64(window/time.Minute) {
		finish := now
		t.Finish = &finish
		return ErrPaymentExpired
	}

	paid := now
	t.Paid = &paid

	return nil
}

// Validate checks the field invariants: price is set if and only if finish
// is set, and paid requires finish.
func (t *Ticket) Validate() error {
	if (t.Finish == nil) != (t.Price == nil) {
		return NewValidationError("price", "price must be set if and only if finish is set")
	}

	if t.Paid != nil && t.Finish == nil {
		return NewValidationError("paid", "paid requires finish")
	}

	if t.Price != nil && t.Price.IsNegative() {
		return NewValidationError("price", "price must not be negative")
	}

	if t.LotID <= 0 {
		return NewValidationError("lot", "lot is required")
	}

	return nil
}
