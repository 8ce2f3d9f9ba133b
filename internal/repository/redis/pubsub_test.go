package redisrepo

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLotChangedCodec(t *testing.T) {
	b := encodeLotChanged(42, time.Unix(1700000000, 0))
	assert.JSONEq(t, `{"type":"lot_changed","lot_id":42,"ts_unix":1700000000}`, string(b))

	id, ok := decodeLotChanged(string(b))
	require.True(t, ok)
	assert.Equal(t, int64(42), id)

	_, ok = decodeLotChanged("not json")
	assert.False(t, ok)

	_, ok = decodeLotChanged(`{"type":"lot_changed"}`)
	assert.False(t, ok)
}

func TestLotsPubSub_Publish(t *testing.T) {
	db, mock := redismock.NewClientMock()
	p := NewLotsPubSub(db)
	ts := time.Unix(1700000000, 0)
	p.now = func() time.Time { return ts }

	mock.ExpectPublish(ChannelLotsChanged(), encodeLotChanged(3, ts)).SetVal(1)

	require.NoError(t, p.PublishLotChanged(context.Background(), 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}
