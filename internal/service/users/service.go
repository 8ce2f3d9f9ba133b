package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/kirinyoku/parkgo/internal/domain"
	"github.com/kirinyoku/parkgo/internal/repository"
	postgresrepo "github.com/kirinyoku/parkgo/internal/repository/postgres"
	"github.com/kirinyoku/parkgo/internal/security"
	"github.com/kirinyoku/parkgo/internal/uow"
	"github.com/kirinyoku/parkgo/internal/validation"
)

// Input carries the writable user fields. On update an empty password keeps
// the stored hash.
type Input struct {
	Name     string `json:"name" validate:"max=255"`
	Surname  string `json:"surname" validate:"max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"max=72"`
}

// Changes carries a user update. Nil name or surname keep the stored value;
// an empty password keeps the stored hash.
type Changes struct {
	Name     *string `json:"name" validate:"omitnil,max=255"`
	Surname  *string `json:"surname" validate:"omitnil,max=255"`
	Email    string  `json:"email" validate:"required,email,max=255"`
	Password string  `json:"password" validate:"max=72"`
}

type Service struct {
	store *postgresrepo.Store
	uow   *uow.UoW
}

func New(store *postgresrepo.Store) *Service {
	return &Service{
		store: store,
		uow:   uow.NewUoW(store),
	}
}

func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	const op = "service.users.List"

	users, err := s.store.Users().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return users, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.User, error) {
	const op = "service.users.Get"

	u, err := s.store.Users().Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, notFound(err))
	}

	return u, nil
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const op = "service.users.GetByEmail"

	u, err := s.store.Users().GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, notFound(err))
	}

	return u, nil
}

// Create stores a new user with a hashed password.
//
// Returns:
//   - error: domain.ErrValidation if a field is missing or malformed.
//   - error: users.ErrUserAlreadyExists if the email is taken.
func (s *Service) Create(ctx context.Context, in Input) (*domain.User, error) {
	const op = "service.users.Create"

	if err := validation.Struct(in); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if in.Password == "" {
		return nil, fmt.Errorf("%s: %w", op, domain.NewValidationError("password", "must not be blank"))
	}

	hash, err := security.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	u := &domain.User{
		Name:         in.Name,
		Surname:      in.Surname,
		Email:        in.Email,
		PasswordHash: hash,
	}

	if err := s.store.Users().Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, fmt.Errorf("%s: %w", op, ErrUserAlreadyExists)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return u, nil
}

// Update applies ch to the user.
//
// Returns:
//   - error: domain.ErrValidation if a field is missing or malformed.
//   - error: users.ErrUserNotFound if the user does not exist.
//   - error: users.ErrUserAlreadyExists if the new email is taken.
func (s *Service) Update(ctx context.Context, id int64, ch Changes) (*domain.User, error) {
	const op = "service.users.Update"

	if err := validation.Struct(ch); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var u *domain.User
	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, _ func(uow.AfterCommit)) error {
		var err error
		u, err = s.store.Users().With(tx).Get(ctx, id)
		if err != nil {
			return fmt.Errorf("%s: %w", op, notFound(err))
		}

		if ch.Name != nil {
			u.Name = *ch.Name
		}
		if ch.Surname != nil {
			u.Surname = *ch.Surname
		}
		u.Email = ch.Email

		if ch.Password != "" {
			if u.PasswordHash, err = security.HashPassword(ch.Password); err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
		}

		if err := s.store.Users().With(tx).Update(ctx, u); err != nil {
			if errors.Is(err, repository.ErrConflict) {
				return fmt.Errorf("%s: %w", op, ErrUserAlreadyExists)
			}
			return fmt.Errorf("%s: %w", op, notFound(err))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	const op = "service.users.Delete"

	if err := s.store.Users().Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, notFound(err))
	}

	return nil
}

// Principal loads the caller identified by a token subject.
func (s *Service) Principal(ctx context.Context, email string) (*security.Principal, error) {
	u, err := s.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return &security.Principal{
		UserID: u.ID,
		Email:  u.Email,
		Roles:  u.Roles(),
	}, nil
}

func notFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}
