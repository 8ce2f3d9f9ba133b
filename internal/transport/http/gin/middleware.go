package httpgin

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kirinyoku/parkgo/internal/domain"
	"github.com/kirinyoku/parkgo/internal/metrics"
	redisrepo "github.com/kirinyoku/parkgo/internal/repository/redis"
	"github.com/kirinyoku/parkgo/internal/security"
	"github.com/kirinyoku/parkgo/internal/service/users"
)

// TokenVerifier extracts the subject of a valid bearer token.
type TokenVerifier interface {
	ExtractSubject(token string) (string, error)
}

// PrincipalLoader resolves a token subject to the caller.
type PrincipalLoader interface {
	Principal(ctx context.Context, email string) (*security.Principal, error)
}

type RateLimiter interface {
	Allow(ctx context.Context, suffix string) (redisrepo.RateDecision, error)
}

func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader("X-Request-ID")
		if reqID == "" {
			reqID = uuid.New().String()
		}

		c.Writer.Header().Set("X-Request-ID", reqID)
		c.Set("request_id", reqID)

		c.Next()
	}
}

func CORS() gin.HandlerFunc {
	cfg := cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{
			"GET", "POST", "PUT", "DELETE", "OPTIONS",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
			"X-Request-ID",
			"Idempotency-Key",
			"If-None-Match",
		},
		ExposeHeaders: []string{
			"X-Request-ID",
			"ETag",
			"Cache-Control",
			"Retry-After",
			"Idempotency-Key",
		},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}

	return cors.New(cfg)
}

func LoggingMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery
		c.Next()

		latency := time.Since(start)
		if raw != "" {
			path = path + "?" + raw
		}

		status := c.Writer.Status()
		reqID, _ := c.Get("request_id")

		attrs := []any{
			slog.Int("status", status),
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.String("ip", c.ClientIP()),
			slog.String("ua", c.Request.UserAgent()),
			slog.Any("request_id", reqID),
			slog.Duration("latency", latency),
			slog.Int("bytes_out", c.Writer.Size()),
		}

		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("error", c.Errors.String()))
			logger.Error("http", slog.Group("http", attrs...))
			return
		}

		logger.Info("http", slog.Group("http", attrs...))
	}
}

// RecoveryMiddleware turns a panic into an InternalError envelope.
func RecoveryMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic recovered", slog.Any("panic", recovered), slog.String("path", c.Request.URL.Path))
		abortWith(c, http.StatusInternalServerError, "InternalError", "internal server error")
	})
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		metrics.ObserveHTTP(c.FullPath(), c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}

// Authenticate requires a valid bearer token and puts the caller's principal
// in the request context.
func Authenticate(tokens TokenVerifier, loader PrincipalLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			respondErr(c, errUnauthorized)
			return
		}

		subject, err := tokens.ExtractSubject(strings.TrimSpace(token))
		if err != nil {
			abortWith(c, http.StatusUnauthorized, "Unauthorized", err.Error())
			return
		}

		p, err := loader.Principal(c.Request.Context(), subject)
		if err != nil {
			if errors.Is(err, users.ErrUserNotFound) {
				respondErr(c, errUnauthorized)
				return
			}
			respondErr(c, err)
			return
		}

		c.Request = c.Request.WithContext(security.WithPrincipal(c.Request.Context(), p))
		c.Next()
	}
}

// RequireRole lets through callers holding role.
func RequireRole(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := security.PrincipalFrom(c.Request.Context())
		if !ok {
			respondErr(c, errUnauthorized)
			return
		}

		if !p.HasRole(role) {
			respondErr(c, errForbidden)
			return
		}

		c.Next()
	}
}

// RateLimit throttles requests per client IP. Limiter failures let the
// request through.
func RateLimit(limiter RateLimiter, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		d, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			logger.Warn("rate limiter unavailable", slog.Any("err", err))
			c.Next()
			return
		}

		if !d.Allowed {
			metrics.AuthAttempt("throttled")
			secs := int(math.Ceil(d.RetryAfter.Seconds()))
			if secs < 1 {
				secs = 1
			}
			c.Header("Retry-After", strconv.Itoa(secs))
			respondErr(c, errTooManyRequests)
			return
		}

		c.Next()
	}
}
