package lots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kirinyoku/parkgo/internal/domain"
	"github.com/kirinyoku/parkgo/internal/repository"
	postgresrepo "github.com/kirinyoku/parkgo/internal/repository/postgres"
	redisrepo "github.com/kirinyoku/parkgo/internal/repository/redis"
	"github.com/kirinyoku/parkgo/internal/uow"
)

type Config struct {
	LotTTL          time.Duration
	AvailabilityTTL time.Duration
}

// Service manages lots. Reads go through the cache when one is configured;
// writes invalidate it after commit and notify other instances.
type Service struct {
	store  *postgresrepo.Store
	cache  *redisrepo.Cache
	pubsub *redisrepo.LotsPubSub
	uow    *uow.UoW
	cfg    Config
}

func New(
	store *postgresrepo.Store,
	cache *redisrepo.Cache,
	pubsub *redisrepo.LotsPubSub,
	cfg Config,
) *Service {
	if cfg.LotTTL <= 0 {
		cfg.LotTTL = 30 * time.Second
	}

	if cfg.AvailabilityTTL <= 0 {
		cfg.AvailabilityTTL = 10 * time.Second
	}

	return &Service{
		store:  store,
		cache:  cache,
		pubsub: pubsub,
		uow:    uow.NewUoW(store),
		cfg:    cfg,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Lot, error) {
	const op = "service.lots.List"

	lots, err := s.store.Lots().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return lots, nil
}

// Get retrieves a lot by its ID.
//
// Returns:
//   - error: lots.ErrLotNotFound if the lot does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Lot, error) {
	const op = "service.lots.Get"

	lot, err := cached(ctx, s.cache, redisrepo.KeyLot(id), s.cfg.LotTTL,
		func(ctx context.Context) (domain.Lot, error) {
			l, err := s.store.Lots().Get(ctx, id)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return domain.Lot{}, ErrLotNotFound
				}
				return domain.Lot{}, err
			}
			return *l, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &lot, nil
}

// Availability counts free and busy lots.
func (s *Service) Availability(ctx context.Context) (*domain.LotCounts, error) {
	const op = "service.lots.Availability"

	counts, err := cached(ctx, s.cache, redisrepo.KeyLotAvailability(), s.cfg.AvailabilityTTL,
		func(ctx context.Context) (domain.LotCounts, error) {
			c, err := s.store.Lots().Counts(ctx)
			if err != nil {
				return domain.LotCounts{}, err
			}
			return *c, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &counts, nil
}

func (s *Service) Create(ctx context.Context, busy bool) (*domain.Lot, error) {
	const op = "service.lots.Create"

	var lot *domain.Lot
	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		var err error
		lot, err = s.store.Lots().With(tx).Create(ctx, busy)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		after(s.changed(lot.ID))

		return nil
	})
	if err != nil {
		return nil, err
	}

	return lot, nil
}

// Update overwrites the busy flag of a lot.
//
// Returns:
//   - error: lots.ErrLotNotFound if the lot does not exist.
func (s *Service) Update(ctx context.Context, id int64, busy bool) (*domain.Lot, error) {
	const op = "service.lots.Update"

	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		if err := s.store.Lots().With(tx).SetBusy(ctx, id, busy); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s: %w", op, ErrLotNotFound)
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		after(s.changed(id))

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &domain.Lot{ID: id, Busy: busy}, nil
}

// Delete removes a lot. Tickets keep their lot id.
//
// Returns:
//   - error: lots.ErrLotNotFound if the lot does not exist.
func (s *Service) Delete(ctx context.Context, id int64) error {
	const op = "service.lots.Delete"

	return s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		if err := s.store.Lots().With(tx).Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s: %w", op, ErrLotNotFound)
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		after(s.changed(id))

		return nil
	})
}

// Invalidate drops the cached state of a lot. It is called for changes
// announced by other instances.
func (s *Service) Invalidate(ctx context.Context, id int64) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.InvalidateLot(ctx, id)
}

func (s *Service) changed(id int64) uow.AfterCommit {
	return Changed(s.cache, s.pubsub, id)
}

// Changed returns an after-commit hook that invalidates the cached state of a
// lot and announces the change. Either collaborator may be nil.
func Changed(cache *redisrepo.Cache, pubsub *redisrepo.LotsPubSub, id int64) uow.AfterCommit {
	return func(ctx context.Context) {
		if cache != nil {
			_ = cache.InvalidateLot(ctx, id)
		}
		if pubsub != nil {
			_ = pubsub.PublishLotChanged(ctx, id)
		}
	}
}

func cached[T any](
	ctx context.Context,
	cache *redisrepo.Cache,
	key string,
	ttl time.Duration,
	load func(ctx context.Context) (T, error),
) (T, error) {
	if cache == nil {
		return load(ctx)
	}
	return redisrepo.GetOrSetJSON(ctx, cache, key, ttl, load)
}
