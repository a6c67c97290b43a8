package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Nicodiaz1/gestion-reservas-domos/internal/config"
	"github.com/Nicodiaz1/gestion-reservas-domos/internal/migrations"
	"github.com/Nicodiaz1/gestion-reservas-domos/internal/postgres"
	"github.com/Nicodiaz1/gestion-reservas-domos/internal/redis"
	postgresrepo "github.com/Nicodiaz1/gestion-reservas-domos/internal/repository/postgres"
	redisrepo "github.com/Nicodiaz1/gestion-reservas-domos/internal/repository/redis"
	"github.com/Nicodiaz1/gestion-reservas-domos/internal/service"
	"github.com/Nicodiaz1/gestion-reservas-domos/internal/service/auth"
	"github.com/Nicodiaz1/gestion-reservas-domos/internal/service/query"
	httpgin "github.com/Nicodiaz1/gestion-reservas-domos/internal/transport/http/gin"
	"github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/sync/errgroup"
)

type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	httpServer *http.Server
	pubsub     *redisrepo.AvailabilityPubSub
}

func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Initialize dependencies
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.Name,
		cfg.Postgres.SSLMode,
	)

	pgxPool, err := postgres.New(context.Background(), postgres.Config{DSN: dsn})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	// Apply pending migrations through the pool's database/sql view
	sqlDB := stdlib.OpenDBFromPool(pgxPool)
	if err := migrations.Up(context.Background(), sqlDB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return nil, fmt.Errorf("failed to release migration connection: %w", err)
	}

	rdb, err := redis.New(context.Background(), redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	// Initialize repositories
	store := postgresrepo.NewStore(pgxPool)
	cache := redisrepo.New(rdb)
	pubsub := redisrepo.NewAvailabilityPubSub(rdb)
	limiter := redisrepo.NewSlidingWindowLimiter(
		rdb,
		redisrepo.PrefixRateLimit("reservas"),
		cfg.Limits.ReservasPerMinute,
		1*time.Minute,
	)
	idempotencyStore := redisrepo.NewIdempotencyStore(rdb, cfg.Limits.IdempotencyTTL)

	// Initialize services
	services := service.NewServices(store, cache, pubsub, limiter, service.Config{
		Query: query.Config{},
		Auth: auth.Config{
			AdminPassword: cfg.Admin.Password,
			JWTSecret:     cfg.Admin.JWTSecret,
			TokenTTL:      cfg.Admin.TokenTTL,
		},
	})

	// Initialize Gin router
	router := httpgin.NewRouter(services, idempotencyStore, logger)

	return &App{
		cfg:    cfg,
		logger: logger,
		httpServer: &http.Server{
			Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler: router,
		},
		pubsub: pubsub,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)

	// Start HTTP server
	g.Go(func() error {
		a.logger.Info("HTTP server listening", "host", a.cfg.Server.Host, "port", a.cfg.Server.Port)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}
		return nil
	})

	// Listen for availability changes published by other instances
	g.Go(func() error {
		err := a.pubsub.Subscribe(gCtx, func(ctx context.Context, domoID int64) {
			a.logger.Info("availability changed", "domo_id", domoID)
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("availability subscriber: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gCtx.Done()
		a.logger.Info("shutting down HTTP server")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return a.httpServer.Shutdown(ctx)
	})

	return g.Wait()
}
