package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// MinJWTSecretLen is the shortest accepted JWT_SECRET, in bytes.
const MinJWTSecretLen = 32

type Config struct {
	Server    ServerConfig
	Postgres  PostgresConfig
	Redis     RedisConfig
	Auth      AuthConfig
	Tickets   TicketsConfig
	RateLimit RateLimitConfig
	Cache     CacheConfig
	Log       LogConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type PostgresConfig struct {
	User     string
	Password string
	Name     string
	Host     string
	Port     int
	SSLMode  string
}

// DSN renders the connection string for pgxpool.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Name,
		c.SSLMode,
	)
}

type AuthConfig struct {
	JWTSecret string
	JWTTTL    time.Duration
}

type TicketsConfig struct {
	PaymentWindow  time.Duration
	IdempotencyTTL time.Duration
}

// RateLimitConfig bounds authenticate calls per client IP.
type RateLimitConfig struct {
	Limit  int
	Window time.Duration
}

type CacheConfig struct {
	LotTTL          time.Duration
	AvailabilityTTL time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

func New() (*Config, error) {
	const op = "config.New"

	_ = godotenv.Load()

	serverPort, err := envInt("SERVER_PORT", 8080)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	serverCfg := ServerConfig{
		Host: envString("SERVER_HOST", "localhost"),
		Port: serverPort,
	}

	postgresPort, err := envInt("POSTGRES_PORT", 5432)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	postgresUser := os.Getenv("POSTGRES_USER")
	if postgresUser == "" {
		return nil, fmt.Errorf("%s: missing POSTGRES_USER", op)
	}

	postgresPassword := os.Getenv("POSTGRES_PASSWORD")
	if postgresPassword == "" {
		return nil, fmt.Errorf("%s: missing POSTGRES_PASSWORD", op)
	}

	postgresDB := os.Getenv("POSTGRES_DB")
	if postgresDB == "" {
		return nil, fmt.Errorf("%s: missing POSTGRES_DB", op)
	}

	postgresCfg := PostgresConfig{
		User:     postgresUser,
		Password: postgresPassword,
		Name:     postgresDB,
		Host:     envString("POSTGRES_HOST", "localhost"),
		Port:     postgresPort,
		SSLMode:  envString("POSTGRES_SSLMODE", "disable"),
	}

	redisDB, err := envInt("REDIS_DB", 0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	redisCfg := RedisConfig{
		Addr:     envString("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       redisDB,
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if len(jwtSecret) < MinJWTSecretLen {
		return nil, fmt.Errorf("%s: JWT_SECRET must be at least %d bytes", op, MinJWTSecretLen)
	}

	jwtTTL, err := envDuration("JWT_TTL", 24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	paymentWindow, err := envDuration("PAYMENT_WINDOW", 10*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if paymentWindow%time.Minute != 0 {
		return nil, fmt.Errorf("%s: PAYMENT_WINDOW must be a whole number of minutes", op)
	}

	idempotencyTTL, err := envDuration("IDEMPOTENCY_TTL", 2*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rateLimit, err := envInt("AUTH_RATE_LIMIT", 10)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if rateLimit < 1 {
		return nil, fmt.Errorf("%s: AUTH_RATE_LIMIT must be positive", op)
	}

	rateWindow, err := envDuration("AUTH_RATE_WINDOW", time.Minute)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lotTTL, err := envDuration("LOT_CACHE_TTL", 30*time.Second)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	availabilityTTL, err := envDuration("AVAILABILITY_CACHE_TTL", 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	logFormat := strings.ToLower(envString("LOG_FORMAT", "text"))
	if logFormat != "text" && logFormat != "json" {
		return nil, fmt.Errorf("%s: invalid LOG_FORMAT %q", op, logFormat)
	}

	return &Config{
		Server:   serverCfg,
		Postgres: postgresCfg,
		Redis:    redisCfg,
		Auth: AuthConfig{
			JWTSecret: jwtSecret,
			JWTTTL:    jwtTTL,
		},
		Tickets: TicketsConfig{
			PaymentWindow:  paymentWindow,
			IdempotencyTTL: idempotencyTTL,
		},
		RateLimit: RateLimitConfig{
			Limit:  rateLimit,
			Window: rateWindow,
		},
		Cache: CacheConfig{
			LotTTL:          lotTTL,
			AvailabilityTTL: availabilityTTL,
		},
		Log: LogConfig{
			Level:  strings.ToLower(envString("LOG_LEVEL", "info")),
			Format: logFormat,
		},
	}, nil
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}

	return n, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", key)
	}

	return d, nil
}
