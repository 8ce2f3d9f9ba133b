package redisrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedLot struct {
	ID   int64 `json:"id"`
	Busy bool  `json:"busy"`
}

func TestCache_GetOrSetJSON_Hit(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := New(db)
	ctx := context.Background()

	mock.ExpectGet(KeyLot(7)).SetVal(`{"id":7,"busy":true}`)

	got, err := GetOrSetJSON(ctx, c, KeyLot(7), time.Minute, func(context.Context) (cachedLot, error) {
		t.Fatal("loader must not run on a hit")
		return cachedLot{}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, cachedLot{ID: 7, Busy: true}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_GetOrSetJSON_MissLoadsAndStores(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := New(db)
	ctx := context.Background()

	mock.ExpectGet(KeyLot(3)).RedisNil()
	mock.ExpectGet(KeyLot(3)).RedisNil()
	mock.ExpectSet(KeyLot(3), `{"id":3,"busy":false}`, 30*time.Second).SetVal("OK")

	calls := 0
	got, err := GetOrSetJSON(ctx, c, KeyLot(3), 30*time.Second, func(context.Context) (cachedLot, error) {
		calls++
		return cachedLot{ID: 3}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, cachedLot{ID: 3}, got)
	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_GetOrSetJSON_ReadErrorFallsThrough(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := New(db)
	ctx := context.Background()

	down := errors.New("connection refused")
	mock.ExpectGet(KeyLotAvailability()).SetErr(down)
	mock.ExpectGet(KeyLotAvailability()).SetErr(down)
	mock.ExpectSet(KeyLotAvailability(), `{"id":1,"busy":false}`, time.Second).SetErr(down)

	got, err := GetOrSetJSON(ctx, c, KeyLotAvailability(), time.Second, func(context.Context) (cachedLot, error) {
		return cachedLot{ID: 1}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_GetOrSetJSON_LoaderError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := New(db)
	ctx := context.Background()

	mock.ExpectGet(KeyLot(9)).RedisNil()
	mock.ExpectGet(KeyLot(9)).RedisNil()

	boom := errors.New("boom")
	_, err := GetOrSetJSON(ctx, c, KeyLot(9), time.Minute, func(context.Context) (cachedLot, error) {
		return cachedLot{}, boom
	})

	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_InvalidateLot(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := New(db)

	mock.ExpectDel(KeyLot(5), KeyLotAvailability()).SetVal(2)

	require.NoError(t, c.InvalidateLot(context.Background(), 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_DelNoKeys(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := New(db)

	require.NoError(t, c.Del(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
