package redisrepo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// LotsPubSub announces lot changes to every instance sharing the cache.
type LotsPubSub struct {
	rdb     *redis.Client
	channel string
	now     func() time.Time
}

func NewLotsPubSub(rdb *redis.Client) *LotsPubSub {
	return &LotsPubSub{
		rdb:     rdb,
		channel: ChannelLotsChanged(),
		now:     time.Now,
	}
}

type lotChangedMsg struct {
	Type   string `json:"type"`
	LotID  int64  `json:"lot_id"`
	TsUnix int64  `json:"ts_unix"`
}

func encodeLotChanged(lotID int64, ts time.Time) []byte {
	b, _ := json.Marshal(lotChangedMsg{
		Type:   "lot_changed",
		LotID:  lotID,
		TsUnix: ts.Unix(),
	})
	return b
}

func decodeLotChanged(payload string) (int64, bool) {
	var msg lotChangedMsg
	if err := json.Unmarshal([]byte(payload), &msg); err != nil || msg.LotID == 0 {
		return 0, false
	}
	return msg.LotID, true
}

func (p *LotsPubSub) PublishLotChanged(ctx context.Context, lotID int64) error {
	return p.rdb.Publish(ctx, p.channel, encodeLotChanged(lotID, p.now())).Err()
}

// Subscribe calls handler for every lot change until ctx is done.
func (p *LotsPubSub) Subscribe(ctx context.Context, handler func(ctx context.Context, lotID int64)) error {
	sub := p.rdb.Subscribe(ctx, p.channel)
	defer sub.Close()

	ch := sub.Channel(redis.WithChannelSize(256))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case m, ok := <-ch:
			if !ok {
				return nil
			}
			if lotID, ok := decodeLotChanged(m.Payload); ok {
				handler(ctx, lotID)
			}
		}
	}
}
