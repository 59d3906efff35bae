package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/wholestock/inventory-backend/internal/adapter/postgres"
	inventoryrepo "github.com/wholestock/inventory-backend/internal/adapter/postgres/inventory"
	productrepo "github.com/wholestock/inventory-backend/internal/adapter/postgres/product"
	userrepo "github.com/wholestock/inventory-backend/internal/adapter/postgres/user"
	jwtauth "github.com/wholestock/inventory-backend/internal/auth"
	"github.com/wholestock/inventory-backend/internal/config"
	auditsvc "github.com/wholestock/inventory-backend/internal/service/audit"
	authsvc "github.com/wholestock/inventory-backend/internal/service/auth"
	catalogsvc "github.com/wholestock/inventory-backend/internal/service/catalog"
	reportsvc "github.com/wholestock/inventory-backend/internal/service/report"
	"github.com/wholestock/inventory-backend/internal/transport/middleware"
	"github.com/wholestock/inventory-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services, and the HTTP transport, and
// serves until the context is cancelled (SIGINT/SIGTERM).
func Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting inventory backend",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)

	products := productrepo.New(pool)
	history := inventoryrepo.New(pool)
	users := userrepo.New(pool)

	jwtManager := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, jwtManager)
	catalogService := catalogsvc.NewService(logger, products, history, txm)
	auditService := auditsvc.NewService(logger, history, cfg.Reports)
	reportService := reportsvc.NewService(logger, products)

	handler := rest.NewRouter(rest.RouterDeps{
		Auth:    rest.NewAuthHandler(authService, logger),
		Product: rest.NewProductHandler(catalogService, logger),
		Report:  rest.NewReportHandler(reportService, auditService, logger),
		Health:  rest.NewHealthHandler(pool, BuildVersion()),
	})

	mws := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}
	if cfg.Server.RateLimitPerMinute > 0 {
		limiter := middleware.NewRateLimiter(time.Minute)
		defer limiter.Stop()
		mws = append(mws, limiter.Limit(cfg.Server.RateLimitPerMinute))
	}
	mws = append(mws, middleware.Auth(authService))
	chain := middleware.Chain(mws...)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      chain(handler),
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
