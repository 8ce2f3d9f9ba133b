package redisrepo

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	idemLock      = "LOCK"
	idemResPrefix = "RES:"
)

type IdemState int

const (
	// IdemAcquired means the caller owns the key and must Save or Release it.
	IdemAcquired IdemState = iota
	// IdemReplay means a previous request finished; its payload is returned.
	IdemReplay
	// IdemInProgress means another request holds the key.
	IdemInProgress
)

type IdempotencyStore struct {
	rdb     *redis.Client
	ttl     time.Duration
	lockTTL time.Duration
}

func NewIdempotencyStore(rdb *redis.Client, ttl, lockTTL time.Duration) *IdempotencyStore {
	if lockTTL <= 0 {
		lockTTL = time.Minute
	}
	return &IdempotencyStore{rdb: rdb, ttl: ttl, lockTTL: lockTTL}
}

// Begin claims key for the current request, or reports the stored result or
// the in-flight owner.
func (s *IdempotencyStore) Begin(ctx context.Context, key string) (IdemState, string, error) {
	if payload, ok, err := s.result(ctx, key); err != nil {
		return 0, "", err
	} else if ok {
		return IdemReplay, payload, nil
	}

	locked, err := s.rdb.SetNX(ctx, key, idemLock, s.lockTTL).Result()
	if err != nil {
		return 0, "", err
	}
	if locked {
		return IdemAcquired, "", nil
	}

	// the owner may have finished between the two calls
	if payload, ok, err := s.result(ctx, key); err != nil {
		return 0, "", err
	} else if ok {
		return IdemReplay, payload, nil
	}

	return IdemInProgress, "", nil
}

func (s *IdempotencyStore) Save(ctx context.Context, key string, jsonPayload string) error {
	return s.rdb.Set(ctx, key, idemResPrefix+jsonPayload, s.ttl).Err()
}

func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}

func (s *IdempotencyStore) result(ctx context.Context, key string) (string, bool, error) {
	v, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	if strings.HasPrefix(v, idemResPrefix) {
		return strings.TrimPrefix(v, idemResPrefix), true, nil
	}

	return "", false, nil
}
