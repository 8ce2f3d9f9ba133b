package httpgin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kirinyoku/parkgo/internal/domain"
	postgresrepo "github.com/kirinyoku/parkgo/internal/repository/postgres"
	"github.com/kirinyoku/parkgo/internal/service/auth"
	"github.com/kirinyoku/parkgo/internal/service/lots"
	"github.com/kirinyoku/parkgo/internal/service/tickets"
	"github.com/kirinyoku/parkgo/internal/service/users"
)

var (
	errUnauthorized          = errors.New("full authentication is required to access this resource")
	errForbidden             = errors.New("access denied")
	errTooManyRequests       = errors.New("too many requests, retry later")
	errIdempotencyInProgress = errors.New("a request with this idempotency key is in progress")
)

type exception struct {
	target error
	name   string
	status int
}

// exceptions is scanned in order; the first match wins.
var exceptions = []exception{
	{lots.ErrLotNotFound, "NotFound", http.StatusNotFound},
	{tickets.ErrTicketNotFound, "NotFound", http.StatusNotFound},
	{users.ErrUserNotFound, "NotFound", http.StatusNotFound},
	{domain.ErrValidation, "ValidationFailed", http.StatusBadRequest},
	{users.ErrUserAlreadyExists, "AlreadyExists", http.StatusBadRequest},
	{tickets.ErrNoFreeLotAvailable, "NoFreeLotAvailable", http.StatusBadRequest},
	{tickets.ErrParkingNotEnded, "ParkingNotEnded", http.StatusBadRequest},
	{tickets.ErrPaymentExpired, "PaymentExpired", http.StatusBadRequest},
	{tickets.ErrAlreadyPaid, "AlreadyPaid", http.StatusBadRequest},
	{auth.ErrAuthenticationFailed, "AuthenticationFailed", http.StatusUnauthorized},
	{errUnauthorized, "Unauthorized", http.StatusUnauthorized},
	{errForbidden, "Forbidden", http.StatusForbidden},
	{errTooManyRequests, "TooManyRequests", http.StatusTooManyRequests},
	{errIdempotencyInProgress, "Conflict", http.StatusConflict},
}

// classify maps err to an exception name, status code and client-facing
// detail. Details never carry wrapped internal context.
func classify(err error) (string, int, string) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return "ValidationFailed", http.StatusBadRequest, verr.Error()
	}

	for _, e := range exceptions {
		if errors.Is(err, e.target) {
			return e.name, e.status, e.target.Error()
		}
	}

	if postgresrepo.IsRetryable(err) {
		return "TransientError", http.StatusServiceUnavailable, "the request conflicted with another one, retry"
	}

	return "InternalError", http.StatusInternalServerError, "internal server error"
}

func respondErr(c *gin.Context, err error) {
	name, status, detail := classify(err)

	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}

	switch status {
	case http.StatusServiceUnavailable:
		c.Header("Retry-After", "1")
	case http.StatusConflict:
		c.Header("Retry-After", "1")
	}

	abortWith(c, status, name, detail)
}
