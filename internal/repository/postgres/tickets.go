package postgresrepo

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kirinyoku/parkgo/internal/domain"
	"github.com/kirinyoku/parkgo/internal/repository"
)

const ticketColumns = `id, start_at, finish_at, price, paid_at, lot_id`

type TicketRepo struct {
	pool Pool
	db   DB
}

func (r *TicketRepo) With(db DB) *TicketRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *TicketRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTicket(row scanner) (*domain.Ticket, error) {
	var (
		t     domain.Ticket
		price decimal.NullDecimal
	)

	if err := row.Scan(&t.ID, &t.Start, &t.Finish, &price, &t.Paid, &t.LotID); err != nil {
		return nil, err
	}

	if price.Valid {
		p := price.Decimal
		t.Price = &p
	}

	return &t, nil
}

func nullPrice(p *decimal.Decimal) decimal.NullDecimal {
	if p == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*p)
}

func (r *TicketRepo) List(ctx context.Context) ([]domain.Ticket, error) {
	const op = "postgresrepo.TicketRepo.List"

	rows, err := r.handle().Query(ctx, `SELECT `+ticketColumns+` FROM tickets ORDER BY id`)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	out := []domain.Ticket{}
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, wrapDBErr(op, err)
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

// Get retrieves a ticket by its ID.
//
// Returns:
//   - error: repository.ErrNotFound if the ticket does not exist.
func (r *TicketRepo) Get(ctx context.Context, id int64) (*domain.Ticket, error) {
	const op = "postgresrepo.TicketRepo.Get"

	t, err := scanTicket(r.handle().QueryRow(ctx,
		`SELECT `+ticketColumns+` FROM tickets WHERE id = $1`,
		id,
	))
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return t, nil
}

// GetForUpdate is Get with a row lock held until the end of the
// transaction. It must run inside a transaction.
func (r *TicketRepo) GetForUpdate(ctx context.Context, id int64) (*domain.Ticket, error) {
	const op = "postgresrepo.TicketRepo.GetForUpdate"

	t, err := scanTicket(r.handle().QueryRow(ctx,
		`SELECT `+ticketColumns+` FROM tickets WHERE id = $1 FOR UPDATE`,
		id,
	))
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return t, nil
}

// Create inserts t and sets its ID.
func (r *TicketRepo) Create(ctx context.Context, t *domain.Ticket) error {
	const op = "postgresrepo.TicketRepo.Create"

	if err := r.handle().QueryRow(ctx,
		`INSERT INTO tickets(start_at, finish_at, price, paid_at, lot_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		t.Start, t.Finish, nullPrice(t.Price), t.Paid, t.LotID,
	).Scan(&t.ID); err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

// Save overwrites every column of the ticket with ID t.ID.
//
// Returns:
//   - error: repository.ErrNotFound if the ticket does not exist.
func (r *TicketRepo) Save(ctx context.Context, t *domain.Ticket) error {
	const op = "postgresrepo.TicketRepo.Save"

	tag, err := r.handle().Exec(ctx,
		`UPDATE tickets
		 SET start_at = $2, finish_at = $3, price = $4, paid_at = $5, lot_id = $6
		 WHERE id = $1`,
		t.ID, t.Start, t.Finish, nullPrice(t.Price), t.Paid, t.LotID,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}

func (r *TicketRepo) Delete(ctx context.Context, id int64) error {
	const op = "postgresrepo.TicketRepo.Delete"

	tag, err := r.handle().Exec(ctx, `DELETE FROM tickets WHERE id = $1`, id)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}
