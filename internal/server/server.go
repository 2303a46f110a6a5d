package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/farellandr/eventhub/config"
	"github.com/farellandr/eventhub/internal/handlers"
	"github.com/farellandr/eventhub/internal/helpers"
	"github.com/farellandr/eventhub/internal/middleware"
	"github.com/farellandr/eventhub/internal/models"
	"github.com/farellandr/eventhub/internal/session"
	"github.com/farellandr/eventhub/internal/store"
)

// Start serves the API until ctx is cancelled.
func Start(ctx context.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	storage, closeStorage, err := newSessionStorage(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize session storage: %w", err)
	}
	defer closeStorage()

	st := store.NewMemoryStore(store.DefaultFixtures())

	var latency middleware.Latency
	sessionLatency := time.Duration(0)
	if cfg.SimulateLatency {
		latency = middleware.SimulatedLatency
		sessionLatency = session.DefaultLatency
	}

	deps := &middleware.Deps{
		Store:     st,
		Sessions:  session.NewManager(storage, st, sessionLatency),
		JWTSecret: []byte(cfg.JWTSecret),
		JWTExpire: cfg.JWTExpire,
		Latency:   latency,
		Now:       time.Now,
	}

	r, err := NewRouter(deps, middleware.NewRateLimiter(cfg.LoginRate, cfg.LoginBurst), cfg.TrustedProxies)
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}

	srv := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: cors.New(cors.Options{
			AllowedOrigins:   cfg.CORSOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Content-Type", "Authorization"},
			AllowCredentials: true,
		}).Handler(r),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", srv.Addr, "session_backend", cfg.SessionBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newSessionStorage(ctx context.Context, cfg *config.Config) (session.Storage, func(), error) {
	switch cfg.SessionBackend {
	case config.SessionBackendPostgres:
		db, err := config.InitDatabase(cfg)
		if err != nil {
			return nil, nil, err
		}
		closeDB := func() {
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
		}
		return session.NewGormStorage(db), closeDB, nil
	case config.SessionBackendRedis:
		client, err := config.InitRedis(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return session.NewRedisStorage(client, cfg.SessionTTL), func() { client.Close() }, nil
	default:
		return session.NewMemoryStorage(cfg.SessionTTL), func() {}, nil
	}
}

// NewRouter wires every route. authLimiter throttles login and registration
// per client IP. Forwarded headers are honoured only from trustedProxies, so
// with none the peer address is the client.
func NewRouter(deps *middleware.Deps, authLimiter *middleware.RateLimiter, trustedProxies []string) (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(trustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	r.Use(gin.Recovery(), middleware.RequestLogger())

	setupRoutes(r, deps, authLimiter)

	r.NoRoute(func(c *gin.Context) {
		helpers.RespondWithError(c, http.StatusNotFound, "Not found.")
	})
	return r, nil
}

func setupRoutes(r *gin.Engine, deps *middleware.Deps, authLimiter *middleware.RateLimiter) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.Use(middleware.DepsMiddleware(deps))

	public := r.Group("/v1")
	{
		public.POST("/register", authLimiter.Limit(), handlers.Register)
		public.POST("/login", authLimiter.Limit(), handlers.Login)
		public.GET("/categories", handlers.ListCategories)

		eventPublic := public.Group("/events")
		{
			eventPublic.GET("", handlers.ListEvents)
			eventPublic.GET("/featured", handlers.ListFeaturedEvents)
			eventPublic.GET("/:id", handlers.GetEvent)
		}
	}

	protected := r.Group("/v1")
	protected.Use(middleware.SessionMiddleware())
	{
		protected.POST("/logout", handlers.Logout)
		protected.GET("/me", handlers.GetProfile)
		protected.GET("/me/registrations", handlers.GetMyRegistrations)
		protected.POST("/events/:id/registrations", handlers.RegisterForEvent)
		protected.DELETE("/registrations/:id", handlers.CancelRegistration)
		protected.GET("/registrations/:id/qr", handlers.GenerateTicketQR)
	}

	admin := protected.Group("/admin")
	admin.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleOrganizer))
	{
		admin.GET("/dashboard", handlers.GetDashboard)
		admin.POST("/events", handlers.CreateEvent)
		admin.GET("/events/:id", handlers.ManageEvent)
		admin.POST("/check-in", handlers.ValidateTicket)
	}
}
