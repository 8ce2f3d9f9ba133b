package tickets

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kirinyoku/parkgo/internal/domain"
	"github.com/kirinyoku/parkgo/internal/metrics"
	"github.com/kirinyoku/parkgo/internal/repository"
	postgresrepo "github.com/kirinyoku/parkgo/internal/repository/postgres"
	redisrepo "github.com/kirinyoku/parkgo/internal/repository/redis"
	"github.com/kirinyoku/parkgo/internal/service/lots"
	"github.com/kirinyoku/parkgo/internal/uow"
)

type Config struct {
	PaymentWindow time.Duration
}

// Patch lists the ticket fields to change. Nil fields keep the stored value.
type Patch struct {
	Start  *time.Time
	Finish *time.Time
	Price  *decimal.Decimal
	Paid   *time.Time
	LotID  *int64
}

func (p Patch) apply(t *domain.Ticket) {
	if p.Start != nil {
		t.Start = *p.Start
	}
	if p.Finish != nil {
		t.Finish = p.Finish
	}
	if p.Price != nil {
		t.Price = p.Price
	}
	if p.Paid != nil {
		t.Paid = p.Paid
	}
	if p.LotID != nil {
		t.LotID = *p.LotID
	}
}

type Service struct {
	store  *postgresrepo.Store
	cache  *redisrepo.Cache
	pubsub *redisrepo.LotsPubSub
	uow    *uow.UoW
	cfg    Config
	now    func() time.Time
}

func New(
	store *postgresrepo.Store,
	cache *redisrepo.Cache,
	pubsub *redisrepo.LotsPubSub,
	cfg Config,
) *Service {
	if cfg.PaymentWindow <= 0 {
		cfg.PaymentWindow = domain.DefaultPaymentWindow
	}

	return &Service{
		store:  store,
		cache:  cache,
		pubsub: pubsub,
		uow:    uow.NewUoW(store),
		cfg:    cfg,
		now:    time.Now,
	}
}

// WithClock returns a copy of the service that reads the current time from now.
func (s *Service) WithClock(now func() time.Time) *Service {
	cp := *s
	cp.now = now
	return &cp
}

func (s *Service) List(ctx context.Context) ([]domain.Ticket, error) {
	const op = "service.tickets.List"

	tickets, err := s.store.Tickets().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tickets, nil
}

// Get retrieves a ticket by its ID.
//
// Returns:
//   - error: tickets.ErrTicketNotFound if the ticket does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Ticket, error) {
	const op = "service.tickets.Get"

	t, err := s.store.Tickets().Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, notFound(err))
	}

	return t, nil
}

// Create opens a ticket on any free lot. The lot is reserved and the ticket
// inserted in one transaction, so a lot never backs two open tickets.
//
// Parameters:
//   - ctx: request-scoped context.
//   - start: session start; the current time when nil.
//
// Returns:
//   - *domain.Ticket: the new OPEN ticket.
//   - error: tickets.ErrNoFreeLotAvailable if every lot is busy.
func (s *Service) Create(ctx context.Context, start *time.Time) (*domain.Ticket, error) {
	const op = "service.tickets.Create"

	t := &domain.Ticket{Start: s.now()}
	if start != nil {
		t.Start = *start
	}

	err := s.uow.DoWithOpts(ctx, uow.ReadCommitted, func(
		ctx context.Context,
		tx postgresrepo.DB,
		after func(uow.AfterCommit),
	) error {
		lotID, err := s.store.Lots().With(tx).ReserveFree(ctx)
		if err != nil {
			if errors.Is(err, repository.ErrNoFreeLots) {
				return fmt.Errorf("%s: %w", op, ErrNoFreeLotAvailable)
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		t.LotID = lotID
		if err := s.store.Tickets().With(tx).Create(ctx, t); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		after(lots.Changed(s.cache, s.pubsub, lotID))

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNoFreeLotAvailable) {
			metrics.NoFreeLot()
		}
		return nil, err
	}

	metrics.TicketTransition(domain.TicketOpen)

	return t, nil
}

// End closes the session now and prices it. Ending an ended ticket again
// moves its finish and recomputes the price.
//
// Returns:
//   - error: tickets.ErrTicketNotFound if the ticket does not exist.
func (s *Service) End(ctx context.Context, id int64) (*domain.Ticket, error) {
	const op = "service.tickets.End"

	var t *domain.Ticket
	err := s.uow.DoWithOpts(ctx, uow.ReadCommitted, func(
		ctx context.Context,
		tx postgresrepo.DB,
		_ func(uow.AfterCommit),
	) error {
		var err error
		t, err = s.store.Tickets().With(tx).GetForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("%s: %w", op, notFound(err))
		}

		t.End(s.now())

		if err := s.store.Tickets().With(tx).Save(ctx, t); err != nil {
			return fmt.Errorf("%s: %w", op, notFound(err))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.TicketTransition(domain.TicketEnded)

	return t, nil
}

// Paid settles an ended ticket and frees its lot.
//
// When the payment window has elapsed the ticket's finish is moved to now and
// committed before ErrPaymentExpired is returned, so the next attempt starts
// a fresh window.
//
// Returns:
//   - error: tickets.ErrTicketNotFound if the ticket does not exist.
//   - error: tickets.ErrParkingNotEnded if the ticket has no finish.
//   - error: tickets.ErrAlreadyPaid if the ticket is already paid.
//   - error: tickets.ErrPaymentExpired if the payment window elapsed.
func (s *Service) Paid(ctx context.Context, id int64) (*domain.Ticket, error) {
	const op = "service.tickets.Paid"

	var (
		t       *domain.Ticket
		expired bool
	)

	err := s.uow.DoWithOpts(ctx, uow.ReadCommitted, func(
		ctx context.Context,
		tx postgresrepo.DB,
		after func(uow.AfterCommit),
	) error {
		var err error
		t, err = s.store.Tickets().With(tx).GetForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("%s: %w", op, notFound(err))
		}

		if err := t.Settle(s.now(), s.cfg.PaymentWindow); err != nil {
			if !errors.Is(err, domain.ErrPaymentExpired) {
				return fmt.Errorf("%s: %w", op, err)
			}
			expired = true
		}

		if err := s.store.Tickets().With(tx).Save(ctx, t); err != nil {
			return fmt.Errorf("%s: %w", op, notFound(err))
		}

		if expired {
			return nil
		}

		released, err := s.store.Lots().With(tx).Release(ctx, t.LotID)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if released {
			after(lots.Changed(s.cache, s.pubsub, t.LotID))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if expired {
		metrics.PaymentExpired()
		return nil, fmt.Errorf("%s: %w", op, ErrPaymentExpired)
	}

	metrics.TicketTransition(domain.TicketPaid)

	return t, nil
}

// Update merges the set fields of p into ticket id and checks the result
// against the ticket invariants.
//
// Returns:
//   - error: tickets.ErrTicketNotFound if the ticket does not exist.
//   - error: domain.ErrValidation if the merged ticket breaks the invariants.
func (s *Service) Update(ctx context.Context, id int64, p Patch) (*domain.Ticket, error) {
	const op = "service.tickets.Update"

	var t *domain.Ticket
	err := s.uow.Do(ctx, func(
		ctx context.Context,
		tx postgresrepo.DB,
		_ func(uow.AfterCommit),
	) error {
		var err error
		t, err = s.store.Tickets().With(tx).GetForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("%s: %w", op, notFound(err))
		}

		p.apply(t)

		if err := t.Validate(); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		if err := s.store.Tickets().With(tx).Save(ctx, t); err != nil {
			return fmt.Errorf("%s: %w", op, notFound(err))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return t, nil
}

// Delete removes a ticket. Its lot is left as it is.
//
// Returns:
//   - error: tickets.ErrTicketNotFound if the ticket does not exist.
func (s *Service) Delete(ctx context.Context, id int64) error {
	const op = "service.tickets.Delete"

	if err := s.store.Tickets().Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, notFound(err))
	}

	return nil
}

func notFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrTicketNotFound
	}
	return err
}
