package metrics

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/kirinyoku/parkgo/internal/domain"
)

func TestTicketTransition(t *testing.T) {
	before := testutil.ToFloat64(ticketTransitions.WithLabelValues("PAID"))
	TicketTransition(domain.TicketPaid)
	assert.Equal(t, before+1, testutil.ToFloat64(ticketTransitions.WithLabelValues("PAID")))
}

func TestObserveHTTP_UnmatchedRoute(t *testing.T) {
	before := testutil.ToFloat64(httpRequests.WithLabelValues("unmatched", "GET", "404"))
	ObserveHTTP("", "GET", 404, time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("unmatched", "GET", "404")))
}

type stubCounter struct {
	counts *domain.LotCounts
	err    error
	calls  int
	cancel context.CancelFunc
}

func (s *stubCounter) Availability(context.Context) (*domain.LotCounts, error) {
	s.calls++
	s.cancel()
	return s.counts, s.err
}

func TestCollectLots(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("sets gauges", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		src := &stubCounter{counts: &domain.LotCounts{Free: 4, Busy: 1, Total: 5}, cancel: cancel}

		assert.NoError(t, CollectLots(ctx, src, time.Hour, log))
		assert.Equal(t, 1, src.calls)
		assert.Equal(t, float64(4), testutil.ToFloat64(lotsGauge.WithLabelValues("free")))
		assert.Equal(t, float64(1), testutil.ToFloat64(lotsGauge.WithLabelValues("busy")))
	})

	t.Run("survives source errors", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		src := &stubCounter{err: errors.New("db down"), cancel: cancel}

		assert.NoError(t, CollectLots(ctx, src, time.Hour, log))
		assert.Equal(t, 1, src.calls)
	})
}
