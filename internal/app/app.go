package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/atelier-soudage/outillage-backend/internal/adapter/postgres"
	"github.com/atelier-soudage/outillage-backend/internal/adapter/postgres/catalog"
	"github.com/atelier-soudage/outillage-backend/internal/adapter/postgres/critical"
	"github.com/atelier-soudage/outillage-backend/internal/adapter/postgres/entrylog"
	"github.com/atelier-soudage/outillage-backend/internal/adapter/postgres/history"
	"github.com/atelier-soudage/outillage-backend/internal/adapter/postgres/inprogress"
	"github.com/atelier-soudage/outillage-backend/internal/adapter/postgres/shim"
	"github.com/atelier-soudage/outillage-backend/internal/adapter/postgres/token"
	"github.com/atelier-soudage/outillage-backend/internal/adapter/postgres/user"
	"github.com/atelier-soudage/outillage-backend/internal/auth"
	"github.com/atelier-soudage/outillage-backend/internal/config"
	authservice "github.com/atelier-soudage/outillage-backend/internal/service/auth"
	catalogservice "github.com/atelier-soudage/outillage-backend/internal/service/catalog"
	"github.com/atelier-soudage/outillage-backend/internal/service/dashboard"
	"github.com/atelier-soudage/outillage-backend/internal/service/maintenance"
	"github.com/atelier-soudage/outillage-backend/internal/transport/middleware"
	"github.com/atelier-soudage/outillage-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, optionally applies migrations, wires repositories, services
// and the HTTP transport, and serves until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := runMigrations(cfg.Database.DSN); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	// Repositories.
	catalogRepo := catalog.New(pool)
	inProgressRepo := inprogress.New(pool)
	historyRepo := history.New(pool)
	entryLogRepo := entrylog.New(pool)
	shimRepo := shim.New(pool)
	criticalRepo := critical.New(pool)
	userRepo := user.New(pool)
	tokenRepo := token.New(pool)
	txManager := postgres.NewTxManager(pool)

	// Services.
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authSvc := authservice.NewService(logger, userRepo, tokenRepo, txManager, jwtManager, cfg.Auth)
	catalogSvc := catalogservice.NewService(logger, catalogRepo, txManager)
	maintenanceSvc := maintenance.NewService(logger, historyRepo, entryLogRepo, shimRepo, criticalRepo)
	dashboardFactory, err := dashboard.NewFactory(
		logger,
		catalogRepo,
		inProgressRepo,
		historyRepo,
		entryLogRepo,
		shimRepo,
		criticalRepo,
		dashboard.Config{
			ThresholdCeiling: cfg.Dashboard.ThresholdCeiling,
			MaxShimThickness: cfg.Dashboard.MaxShimThickness,
			DefaultQuantity:  cfg.Dashboard.DefaultQuantity,
		},
	)
	if err != nil {
		return fmt.Errorf("create dashboard factory: %w", err)
	}

	// Transport.
	healthHandler := rest.NewHealthHandler(pool, BuildVersion())
	authHandler := rest.NewAuthHandler(authSvc, logger)
	dashboardHandler := rest.NewDashboardHandler(dashboardFactory, logger)
	catalogHandler := rest.NewCatalogHandler(catalogSvc, logger)
	adminHandler := rest.NewAdminHandler(authSvc, maintenanceSvc, logger)

	mux := rest.NewRouter(healthHandler, authHandler, dashboardHandler, catalogHandler, adminHandler)

	mws := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}
	if cfg.Server.RateLimitPerMinute > 0 {
		rateLimiter := middleware.NewRateLimiter(time.Minute)
		defer rateLimiter.Stop()
		mws = append(mws, rateLimiter.Limit(cfg.Server.RateLimitPerMinute))
	}
	mws = append(mws, middleware.Auth(authSvc))
	handler := middleware.Chain(mws...)(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
