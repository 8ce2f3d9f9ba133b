package postgresrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kirinyoku/parkgo/internal/domain"
	"github.com/kirinyoku/parkgo/internal/repository"
)

type LotRepo struct {
	pool Pool
	db   DB
}

func (r *LotRepo) With(db DB) *LotRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *LotRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

func (r *LotRepo) List(ctx context.Context) ([]domain.Lot, error) {
	const op = "postgresrepo.LotRepo.List"

	rows, err := r.handle().Query(ctx, `SELECT id, busy FROM lots ORDER BY id`)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	out := []domain.Lot{}
	for rows.Next() {
		var l domain.Lot
		if err := rows.Scan(&l.ID, &l.Busy); err != nil {
			return nil, wrapDBErr(op, err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

// Get retrieves a lot by its ID.
//
// Returns:
//   - error: repository.ErrNotFound if the lot does not exist.
func (r *LotRepo) Get(ctx context.Context, id int64) (*domain.Lot, error) {
	const op = "postgresrepo.LotRepo.Get"

	var l domain.Lot
	err := r.handle().QueryRow(ctx,
		`SELECT id, busy FROM lots WHERE id = $1`,
		id,
	).Scan(&l.ID, &l.Busy)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &l, nil
}

func (r *LotRepo) Create(ctx context.Context, busy bool) (*domain.Lot, error) {
	const op = "postgresrepo.LotRepo.Create"

	l := domain.Lot{Busy: busy}
	if err := r.handle().QueryRow(ctx,
		`INSERT INTO lots(busy) VALUES ($1) RETURNING id`,
		busy,
	).Scan(&l.ID); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &l, nil
}

// SetBusy overwrites the busy flag of a lot.
//
// Returns:
//   - error: repository.ErrNotFound if the lot does not exist.
func (r *LotRepo) SetBusy(ctx context.Context, id int64, busy bool) error {
	const op = "postgresrepo.LotRepo.SetBusy"

	tag, err := r.handle().Exec(ctx, `UPDATE lots SET busy = $2 WHERE id = $1`, id, busy)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}

func (r *LotRepo) Delete(ctx context.Context, id int64) error {
	const op = "postgresrepo.LotRepo.Delete"

	tag, err := r.handle().Exec(ctx, `DELETE FROM lots WHERE id = $1`, id)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}

// ReserveFree picks any free lot and marks it busy in a single statement.
// Rows locked by a concurrent reservation are skipped, so two callers never
// get the same lot.
//
// Returns:
//   - int64: the reserved lot ID.
//   - error: repository.ErrNoFreeLots if every lot is busy or locked.
func (r *LotRepo) ReserveFree(ctx context.Context) (int64, error) {
	const op = "postgresrepo.LotRepo.ReserveFree"

	var id int64
	err := r.handle().QueryRow(ctx,
		`UPDATE lots SET busy = true
		 WHERE id = (
		 	SELECT id FROM lots
		 	WHERE busy = false
		 	LIMIT 1
		 	FOR UPDATE SKIP LOCKED
		 )
		 AND busy = false
		 RETURNING id`,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("%s: %w", op, repository.ErrNoFreeLots)
		}
		return 0, wrapDBErr(op, err)
	}

	return id, nil
}

// Release marks a lot free. A missing lot is not an error.
func (r *LotRepo) Release(ctx context.Context, id int64) (bool, error) {
	const op = "postgresrepo.LotRepo.Release"

	tag, err := r.handle().Exec(ctx, `UPDATE lots SET busy = false WHERE id = $1`, id)
	if err != nil {
		return false, wrapDBErr(op, err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *LotRepo) Counts(ctx context.Context) (*domain.LotCounts, error) {
	const op = "postgresrepo.LotRepo.Counts"

	var c domain.LotCounts
	err := r.handle().QueryRow(ctx,
		`SELECT
		 	COALESCE(SUM(CASE WHEN busy THEN 0 ELSE 1 END), 0),
		 	COALESCE(SUM(CASE WHEN busy THEN 1 ELSE 0 END), 0)
		 FROM lots`,
	).Scan(&c.Free, &c.Busy)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	c.Total = c.Free + c.Busy

	return &c, nil
}
