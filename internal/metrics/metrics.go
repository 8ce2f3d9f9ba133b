package metrics

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/kirinyoku/parkgo/internal/domain"
)

var (
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parkgo_http_requests_total",
			Help: "HTTP requests by route, method and status code",
		},
		[]string{"route", "method", "status"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "parkgo_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	ticketTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parkgo_ticket_transitions_total",
			Help: "Tickets moved into a lifecycle state",
		},
		[]string{"state"},
	)

	paymentsExpired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "parkgo_payments_expired_total",
			Help: "Payments rejected because the payment window elapsed",
		},
	)

	noFreeLot = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "parkgo_no_free_lot_total",
			Help: "Ticket creations rejected because every lot was busy",
		},
	)

	authAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parkgo_auth_attempts_total",
			Help: "Authentication attempts by outcome",
		},
		[]string{"outcome"},
	)

	lotsGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "parkgo_lots",
			Help: "Current number of lots by occupancy",
		},
		[]string{"state"},
	)
)

func ObserveHTTP(route, method string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

func TicketTransition(state domain.TicketState) {
	ticketTransitions.WithLabelValues(string(state)).Inc()
}

func PaymentExpired() { paymentsExpired.Inc() }

func NoFreeLot() { noFreeLot.Inc() }

// AuthAttempt records an authentication outcome: "ok", "failed" or "throttled".
func AuthAttempt(outcome string) {
	authAttempts.WithLabelValues(outcome).Inc()
}

func SetLotCounts(c domain.LotCounts) {
	lotsGauge.WithLabelValues("free").Set(float64(c.Free))
	lotsGauge.WithLabelValues("busy").Set(float64(c.Busy))
}

// LotCounter is the source polled by CollectLots.
type LotCounter interface {
	Availability(ctx context.Context) (*domain.LotCounts, error)
}

// CollectLots refreshes the lot gauges every interval until ctx is done.
func CollectLots(ctx context.Context, src LotCounter, interval time.Duration, log *slog.Logger) error {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		c, err := src.Availability(ctx)
		if err != nil {
			if ctx.Err() == nil {
				log.Warn("collect lot counts", slog.Any("err", err))
			}
		} else {
			SetLotCounts(*c)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
