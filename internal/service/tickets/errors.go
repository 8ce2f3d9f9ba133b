package tickets

import (
	"errors"

	"github.com/kirinyoku/parkgo/internal/domain"
)

var (
	ErrTicketNotFound     = errors.New("ticket not found")
	ErrNoFreeLotAvailable = errors.New("no free lot available")

	ErrParkingNotEnded = domain.ErrParkingNotEnded
	ErrPaymentExpired  = domain.ErrPaymentExpired
	ErrAlreadyPaid     = domain.ErrAlreadyPaid
)
