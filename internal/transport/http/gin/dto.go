package httpgin

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kirinyoku/parkgo/internal/domain"
	"github.com/kirinyoku/parkgo/internal/service/auth"
	"github.com/kirinyoku/parkgo/internal/service/tickets"
	"github.com/kirinyoku/parkgo/internal/service/users"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthenticateRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

// UserRequest is the body of user create and update. On update an omitted
// name or surname and an empty password keep the current value.
type UserRequest struct {
	Name     *string `json:"name"`
	Surname  *string `json:"surname"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password"`
}

type UserResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
}

type LotRequest struct {
	Busy *bool `json:"busy" binding:"required"`
}

type LotResponse struct {
	ID   int64 `json:"id"`
	Busy bool  `json:"busy"`
}

type AvailabilityResponse struct {
	Free  int64 `json:"free"`
	Busy  int64 `json:"busy"`
	Total int64 `json:"total"`
}

// TicketRequest is the body of ticket create and update. Create only reads
// start; update changes the fields present in the body.
type TicketRequest struct {
	Start  *time.Time `json:"start"`
	Finish *time.Time `json:"finish"`
	Price  *float64   `json:"price"`
	Paid   *time.Time `json:"paid"`
	Lot    *int64     `json:"lot"`
}

type TicketResponse struct {
	ID     int64      `json:"id"`
	Start  time.Time  `json:"start"`
	Finish *time.Time `json:"finish"`
	Price  *float64   `json:"price"`
	Paid   *time.Time `json:"paid"`
	Lot    int64      `json:"lot"`
	State  string     `json:"state"`
}

func toAuthResponse(s *auth.Session) AuthResponse {
	return AuthResponse{Email: s.Email, Token: s.Token}
}

func registerInput(r RegisterRequest) users.Input {
	return users.Input{
		Name:     r.Name,
		Surname:  r.Surname,
		Email:    r.Email,
		Password: r.Password,
	}
}

func userInput(r UserRequest) users.Input {
	in := users.Input{
		Email:    r.Email,
		Password: r.Password,
	}
	if r.Name != nil {
		in.Name = *r.Name
	}
	if r.Surname != nil {
		in.Surname = *r.Surname
	}
	return in
}

func userChanges(r UserRequest) users.Changes {
	return users.Changes{
		Name:     r.Name,
		Surname:  r.Surname,
		Email:    r.Email,
		Password: r.Password,
	}
}

func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:      u.ID,
		Name:    u.Name,
		Surname: u.Surname,
		Email:   u.Email,
	}
}

func toUserResponses(us []domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(us))
	for i := range us {
		out = append(out, toUserResponse(&us[i]))
	}
	return out
}

func toLotResponse(l *domain.Lot) LotResponse {
	return LotResponse{ID: l.ID, Busy: l.Busy}
}

func toLotResponses(ls []domain.Lot) []LotResponse {
	out := make([]LotResponse, 0, len(ls))
	for i := range ls {
		out = append(out, toLotResponse(&ls[i]))
	}
	return out
}

func toAvailabilityResponse(c *domain.LotCounts) AvailabilityResponse {
	return AvailabilityResponse{Free: c.Free, Busy: c.Busy, Total: c.Total}
}

func toTicketResponse(t *domain.Ticket) TicketResponse {
	resp := TicketResponse{
		ID:     t.ID,
		Start:  t.Start,
		Finish: t.Finish,
		Paid:   t.Paid,
		Lot:    t.LotID,
		State:  string(t.State()),
	}

	if t.Price != nil {
		p := t.Price.InexactFloat64()
		resp.Price = &p
	}

	return resp
}

func toTicketResponses(ts []domain.Ticket) []TicketResponse {
	out := make([]TicketResponse, 0, len(ts))
	for i := range ts {
		out = append(out, toTicketResponse(&ts[i]))
	}
	return out
}

func ticketPatch(r TicketRequest) tickets.Patch {
	p := tickets.Patch{
		Start:  r.Start,
		Finish: r.Finish,
		Paid:   r.Paid,
		LotID:  r.Lot,
	}

	if r.Price != nil {
		price := decimal.NewFromFloat(*r.Price).Round(2)
		p.Price = &price
	}

	return p
}
