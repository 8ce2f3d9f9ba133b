package service

import (
	postgresrepo "github.com/kirinyoku/parkgo/internal/repository/postgres"
	redisrepo "github.com/kirinyoku/parkgo/internal/repository/redis"
	"github.com/kirinyoku/parkgo/internal/security"
	"github.com/kirinyoku/parkgo/internal/service/auth"
	"github.com/kirinyoku/parkgo/internal/service/lots"
	"github.com/kirinyoku/parkgo/internal/service/tickets"
	"github.com/kirinyoku/parkgo/internal/service/users"
)

type Services struct {
	Auth    *auth.Service
	Users   *users.Service
	Lots    *lots.Service
	Tickets *tickets.Service
}

type Config struct {
	Lots    lots.Config
	Tickets tickets.Config
}

func NewServices(
	store *postgresrepo.Store,
	cache *redisrepo.Cache,
	pubsub *redisrepo.LotsPubSub,
	tokens *security.TokenService,
	cfg Config,
) *Services {
	u := users.New(store)

	return &Services{
		Auth:    auth.New(u, tokens),
		Users:   u,
		Lots:    lots.New(store, cache, pubsub, cfg.Lots),
		Tickets: tickets.New(store, cache, pubsub, cfg.Tickets),
	}
}
