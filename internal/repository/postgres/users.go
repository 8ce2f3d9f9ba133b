package postgresrepo

import (
	"context"
	"fmt"

	"github.com/kirinyoku/parkgo/internal/domain"
	"github.com/kirinyoku/parkgo/internal/repository"
)

const userColumns = `id, name, surname, email, password`

type UserRepo struct {
	pool Pool
	db   DB
}

func (r *UserRepo) With(db DB) *UserRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *UserRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

func scanUser(row scanner) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Name, &u.Surname, &u.Email, &u.PasswordHash); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	const op = "postgresrepo.UserRepo.List"

	rows, err := r.handle().Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	out := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, wrapDBErr(op, err)
		}
		out = append(out, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

func (r *UserRepo) Get(ctx context.Context, id int64) (*domain.User, error) {
	const op = "postgresrepo.UserRepo.Get"

	u, err := scanUser(r.handle().QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		id,
	))
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return u, nil
}

// GetByEmail looks a user up by exact email.
//
// Returns:
//   - error: repository.ErrNotFound if no user has this email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const op = "postgresrepo.UserRepo.GetByEmail"

	u, err := scanUser(r.handle().QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		email,
	))
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return u, nil
}

// Create inserts u and sets its ID.
//
// Returns:
//   - error: repository.ErrConflict if the email is already taken.
func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	const op = "postgresrepo.UserRepo.Create"

	if err := r.handle().QueryRow(ctx,
		`INSERT INTO users(name, surname, email, password)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		u.Name, u.Surname, u.Email, u.PasswordHash,
	).Scan(&u.ID); err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

// Update overwrites every column of the user with ID u.ID.
//
// Returns:
//   - error: repository.ErrNotFound if the user does not exist.
//   - error: repository.ErrConflict if the new email is already taken.
func (r *UserRepo) Update(ctx context.Context, u *domain.User) error {
	const op = "postgresrepo.UserRepo.Update"

	tag, err := r.handle().Exec(ctx,
		`UPDATE users
		 SET name = $2, surname = $3, email = $4, password = $5
		 WHERE id = $1`,
		u.ID, u.Name, u.Surname, u.Email, u.PasswordHash,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}

func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	const op = "postgresrepo.UserRepo.Delete"

	tag, err := r.handle().Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}
