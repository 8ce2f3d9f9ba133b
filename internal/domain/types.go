package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

// RoleAdmin is the only role the system knows about.
const RoleAdmin Role = "ADMIN"

type User struct {
	ID           int64
	Name         string
	Surname      string
	Email        string
	PasswordHash string
}

// Roles returns the authorities granted to the user. Every user is an admin.
func (u *User) Roles() []Role {
	return []Role{RoleAdmin}
}

type Lot struct {
	ID   int64
	Busy bool
}

type LotCounts struct {
	Free  int64
	Busy  int64
	Total int64
}

type TicketState string

const (
	TicketOpen  TicketState = "OPEN"
	TicketEnded TicketState = "ENDED"
	TicketPaid  TicketState = "PAID"
)

type Ticket struct {
	ID     int64
	Start  time.Time
	Finish *time.Time
	Price  *decimal.Decimal
	Paid   *time.Time
	LotID  int64
}
