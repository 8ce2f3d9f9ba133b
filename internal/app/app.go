package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/kirinyoku/parkgo/internal/config"
	"github.com/kirinyoku/parkgo/internal/metrics"
	"github.com/kirinyoku/parkgo/internal/postgres"
	"github.com/kirinyoku/parkgo/internal/redis"
	postgresrepo "github.com/kirinyoku/parkgo/internal/repository/postgres"
	redisrepo "github.com/kirinyoku/parkgo/internal/repository/redis"
	"github.com/kirinyoku/parkgo/internal/security"
	"github.com/kirinyoku/parkgo/internal/service"
	"github.com/kirinyoku/parkgo/internal/service/lots"
	"github.com/kirinyoku/parkgo/internal/service/tickets"
	httpgin "github.com/kirinyoku/parkgo/internal/transport/http/gin"
)

const (
	shutdownTimeout = 10 * time.Second
	lotGaugePeriod  = 30 * time.Second
)

type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	pool       *pgxpool.Pool
	rdb        *goredis.Client
	pubsub     *redisrepo.LotsPubSub
	services   *service.Services
	httpServer *http.Server
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	pgxPool, err := postgres.New(ctx, postgres.Config{DSN: cfg.Postgres.DSN()})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	if err := postgres.EnsureSchema(ctx, pgxPool); err != nil {
		pgxPool.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	rdb, err := redis.New(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		pgxPool.Close()
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	tokens, err := security.NewTokenService(security.TokenConfig{
		Secret: []byte(cfg.Auth.JWTSecret),
		TTL:    cfg.Auth.JWTTTL,
	})
	if err != nil {
		pgxPool.Close()
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}

	// Repositories
	store := postgresrepo.NewStore(pgxPool)
	cache := redisrepo.New(rdb)
	pubsub := redisrepo.NewLotsPubSub(rdb)
	limiter := redisrepo.NewSlidingWindowLimiter(rdb, "auth", cfg.RateLimit.Limit, cfg.RateLimit.Window)
	idempotencyStore := redisrepo.NewIdempotencyStore(rdb, cfg.Tickets.IdempotencyTTL, 0)

	services := service.NewServices(store, cache, pubsub, tokens, service.Config{
		Lots: lots.Config{
			LotTTL:          cfg.Cache.LotTTL,
			AvailabilityTTL: cfg.Cache.AvailabilityTTL,
		},
		Tickets: tickets.Config{
			PaymentWindow: cfg.Tickets.PaymentWindow,
		},
	})

	router := httpgin.NewRouter(httpgin.Deps{
		Services:    services,
		Tokens:      tokens,
		Idempotency: idempotencyStore,
		AuthLimiter: limiter,
		Logger:      logger,
	})

	return &App{
		cfg:      cfg,
		logger:   logger,
		pool:     pgxPool,
		rdb:      rdb,
		pubsub:   pubsub,
		services: services,
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}, nil
}

// Run serves HTTP and the background workers until ctx is cancelled or a
// termination signal arrives, then shuts everything down.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	defer a.close()

	g, gCtx := errgroup.WithContext(ctx)

	// HTTP server
	g.Go(func() error {
		a.logger.Info("HTTP server listening", "host", a.cfg.Server.Host, "port", a.cfg.Server.Port)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}
		return nil
	})

	// Lot changes announced by other instances
	g.Go(func() error {
		a.logger.Info("lot change subscriber started")
		err := a.pubsub.Subscribe(gCtx, func(ctx context.Context, lotID int64) {
			if err := a.services.Lots.Invalidate(ctx, lotID); err != nil {
				a.logger.Warn("invalidate lot", slog.Int64("lot_id", lotID), slog.Any("err", err))
			}
		})
		a.logger.Info("lot change subscriber stopped")
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("lot change subscriber: %w", err)
		}
		return nil
	})

	// Lot gauges
	g.Go(func() error {
		return metrics.CollectLots(gCtx, a.services.Lots, lotGaugePeriod, a.logger)
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gCtx.Done()
		a.logger.Info("shutting down HTTP server")
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return a.httpServer.Shutdown(ctx)
	})

	return g.Wait()
}

func (a *App) close() {
	a.pool.Close()
	if err := a.rdb.Close(); err != nil {
		a.logger.Warn("close redis", slog.Any("err", err))
	}
}
