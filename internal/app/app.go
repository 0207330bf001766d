package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/coopkeeper-backend/internal/adapter/postgres"
	coopRepo "github.com/heartmarshall/coopkeeper-backend/internal/adapter/postgres/coop"
	dailyRecordRepo "github.com/heartmarshall/coopkeeper-backend/internal/adapter/postgres/dailyrecord"
	flockRepo "github.com/heartmarshall/coopkeeper-backend/internal/adapter/postgres/flock"
	purchaseRepo "github.com/heartmarshall/coopkeeper-backend/internal/adapter/postgres/purchase"
	tenantRepo "github.com/heartmarshall/coopkeeper-backend/internal/adapter/postgres/tenant"
	"github.com/heartmarshall/coopkeeper-backend/internal/auth"
	"github.com/heartmarshall/coopkeeper-backend/internal/config"
	"github.com/heartmarshall/coopkeeper-backend/internal/service/coop"
	"github.com/heartmarshall/coopkeeper-backend/internal/service/dailyrecord"
	"github.com/heartmarshall/coopkeeper-backend/internal/service/flock"
	"github.com/heartmarshall/coopkeeper-backend/internal/service/purchase"
	"github.com/heartmarshall/coopkeeper-backend/internal/service/tenant"
	"github.com/heartmarshall/coopkeeper-backend/internal/transport/middleware"
	"github.com/heartmarshall/coopkeeper-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services and handlers, and serves HTTP
// until ctx is cancelled, then shuts down gracefully.
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

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewHandler(cfg, logger, pool, prometheus.NewRegistry()),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}

// NewHandler builds the full HTTP handler: repositories, services, REST
// routes and the middleware chain. Collectors are registered with reg.
func NewHandler(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, reg *prometheus.Registry) http.Handler {
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	txm := postgres.NewTxManager(pool, cfg.Database.AppRole)

	tenants := tenantRepo.New(pool)
	coops := coopRepo.New(pool)
	flocks := flockRepo.New(pool)
	records := dailyRecordRepo.New(pool)
	purchases := purchaseRepo.New(pool)

	tenantSvc := tenant.NewService(logger, tenants, txm)
	coopSvc := coop.NewService(logger, coops, txm)
	flockSvc := flock.NewService(logger, flocks, coops, txm)
	recordSvc := dailyrecord.NewService(logger, records, flocks, txm)
	purchaseSvc := purchase.NewService(logger, purchases, coops, txm)

	verifier := auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.JWTAudience, cfg.Auth.Leeway)
	metrics := middleware.NewMetrics(reg)

	router := rest.NewRouter(rest.Handlers{
		Health:       rest.NewHealthHandler(pool, Version),
		Coops:        rest.NewCoopHandler(coopSvc, cfg.Search),
		Flocks:       rest.NewFlockHandler(flockSvc, cfg.Search),
		DailyRecords: rest.NewDailyRecordHandler(recordSvc),
		Purchases:    rest.NewPurchaseHandler(purchaseSvc, cfg.Search),
		Metrics:      promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
	})

	// Logger sits inside Tenant so request logs carry the tenant ID. Metrics
	// must wrap the mux directly to see the matched route pattern.
	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.CORS(cfg.CORS),
		middleware.Auth(verifier),
		middleware.Tenant(tenantSvc, logger),
		middleware.Logger(logger),
		metrics.Middleware(),
	)(router)
}
