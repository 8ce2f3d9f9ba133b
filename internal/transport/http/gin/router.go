package httpgin

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/kirinyoku/parkgo/internal/domain"
	redisrepo "github.com/kirinyoku/parkgo/internal/repository/redis"
	"github.com/kirinyoku/parkgo/internal/service"
)

type Deps struct {
	Services    *service.Services
	Tokens      TokenVerifier
	Principals  PrincipalLoader
	Idempotency *redisrepo.IdempotencyStore
	AuthLimiter RateLimiter
	Logger      *slog.Logger
}

type handlers struct {
	svcs   *service.Services
	idem   *redisrepo.IdempotencyStore
	logger *slog.Logger
}

func NewRouter(d Deps, middlewares ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()

	r.Use(
		RecoveryMiddleware(d.Logger),
		RequestIDMiddleware(),
		LoggingMiddleware(d.Logger),
		MetricsMiddleware(),
		CORS(),
	)
	for _, m := range middlewares {
		if m != nil {
			r.Use(m)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		abortWith(c, http.StatusNotFound, "NotFound", "no handler for "+c.Request.Method+" "+c.Request.URL.Path)
	})

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/healthz", func(c *gin.Context) {
		respond(c, http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	h := &handlers{svcs: d.Services, idem: d.Idempotency, logger: d.Logger}

	principals := d.Principals
	if principals == nil {
		principals = d.Services.Users
	}

	v1 := r.Group("/api/v1")

	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", h.register)
		authGroup.POST("/authenticate", RateLimit(d.AuthLimiter, d.Logger), h.authenticate)
	}

	api := v1.Group("", Authenticate(d.Tokens, principals))
	admin := RequireRole(domain.RoleAdmin)

	lot := api.Group("/lot")
	{
		lot.GET("/", h.listLots)
		lot.GET("/availability", h.lotAvailability)
		lot.GET("/:id", h.getLot)
		lot.POST("/", admin, h.createLot)
		lot.PUT("/:id", admin, h.updateLot)
		lot.DELETE("/:id", admin, h.deleteLot)
	}

	ticket := api.Group("/ticket", admin)
	{
		ticket.GET("/", h.listTickets)
		ticket.GET("/:id", h.getTicket)
		ticket.POST("/", h.createTicket)
		ticket.GET("/:id/end", h.endTicket)
		ticket.GET("/:id/paid", h.payTicket)
		ticket.PUT("/:id", h.updateTicket)
		ticket.DELETE("/:id", h.deleteTicket)
	}

	user := api.Group("/user")
	{
		user.GET("/", h.listUsers)
		user.GET("/:id", h.getUser)
		user.POST("/", admin, h.createUser)
		user.PUT("/:id", admin, h.updateUser)
		user.DELETE("/:id", admin, h.deleteUser)
	}

	return r
}

// --- Helpers ---

func parseInt64Param(c *gin.Context, name string) (int64, bool) {
	v, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || v <= 0 {
		respondErr(c, domain.NewValidationError(name, "must be a positive number"))
		return 0, false
	}
	return v, true
}
