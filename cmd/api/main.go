package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"golang.org/x/sync/errgroup"

	appconfig "inkwell/internal/config"
	pgRepo "inkwell/internal/infra/adapter/persistence/postgres"
	sqliteRepo "inkwell/internal/infra/adapter/persistence/sqlite"
	"inkwell/internal/infra/db"
	"inkwell/internal/infra/suggester"
	"inkwell/internal/observability/logging"
	"inkwell/internal/observability/tracing"
	"inkwell/internal/repository"
	"inkwell/internal/resilience/circuitbreaker"
	"inkwell/pkg/config"

	postUC "inkwell/internal/usecase/post"
	suggestionUC "inkwell/internal/usecase/suggestion"

	hhttp "inkwell/internal/handler/http"
	"inkwell/internal/handler/http/middleware"
	hpost "inkwell/internal/handler/http/post"
	"inkwell/internal/handler/http/requestid"
	hsuggestion "inkwell/internal/handler/http/suggestion"

	_ "inkwell/docs" // swagger docs
)

// @title           Inkwell API
// @version         1.0
// @description     Blog post CRUD and AI writing suggestions.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:5000
// @BasePath  /

const serviceName = "inkwell"

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	// bootstrap logger until the configured one is built
	slog.SetDefault(logging.NewLogger())
	config.LoadDotEnv()

	cfg, err := appconfig.Load(config.GetEnvString("CONFIG_FILE", ""))
	if err != nil {
		return err
	}

	logger := logging.New(os.Stdout, logging.ParseLevel(cfg.Observability.LogLevel), cfg.Observability.LogFormat)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := initTracing(logger, cfg)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("failed to flush traces", slog.Any("error", err))
		}
	}()

	database, err := initDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	provider, err := suggester.New(ctx, suggesterConfig(cfg.Suggestion))
	if err != nil {
		return fmt.Errorf("init suggestion provider: %w", err)
	}
	defer func() {
		if err := provider.Close(); err != nil {
			logger.Warn("failed to close suggestion provider", slog.Any("error", err))
		}
	}()

	handler := setupServer(logger, cfg, database, provider)
	return runServer(ctx, logger, cfg.HTTP, handler, cfg.Version)
}

// initTracing installs the SDK provider when tracing is enabled. Otherwise
// the global no-op provider stays in place.
func initTracing(logger *slog.Logger, cfg *appconfig.AppConfig) (func(context.Context) error, error) {
	if !cfg.Observability.TracingEnabled {
		return func(context.Context) error { return nil }, nil
	}
	logger.Info("tracing enabled, spans are logged at debug level")
	return tracing.Setup(serviceName, cfg.Version, sdktrace.WithBatcher(tracing.NewLogExporter(logger)))
}

// initDatabase opens the configured database and creates the schema.
func initDatabase(ctx context.Context, cfg appconfig.DatabaseConfig) (*sql.DB, error) {
	pool := db.DefaultConnectionConfig(cfg.Driver)
	if cfg.MaxOpenConns > 0 {
		pool.MaxOpenConns = cfg.MaxOpenConns
	}
	if cfg.MaxIdleConns > 0 {
		pool.MaxIdleConns = cfg.MaxIdleConns
	}
	if cfg.ConnMaxLifetime > 0 {
		pool.ConnMaxLifetime = cfg.ConnMaxLifetime
	}

	database, err := db.Open(ctx, db.Config{Driver: cfg.Driver, DSN: cfg.URL, Pool: pool})
	if err != nil {
		return nil, err
	}
	if err := db.MigrateUp(ctx, database, cfg.Driver); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return database, nil
}

func suggesterConfig(cfg appconfig.SuggestionConfig) suggester.Config {
	return suggester.Config{
		Provider:  cfg.Provider,
		APIKey:    cfg.APIKey(),
		Model:     cfg.Model,
		MaxTokens: cfg.MaxTokens,
		BaseURL:   cfg.BaseURL,
	}
}

func newPostRepo(driver string, dbtx repository.DBTX) repository.PostRepository {
	if driver == db.DriverPostgres {
		return pgRepo.NewPostRepo(dbtx)
	}
	return sqliteRepo.NewPostRepo(dbtx)
}

// newDBBreaker guards the store. Rejected input values are the caller's
// fault and never trip the breaker.
func newDBBreaker(database *sql.DB) *circuitbreaker.DBCircuitBreaker {
	cfg := circuitbreaker.DBConfig()
	cfg.IsSuccessful = circuitbreaker.IgnoreErrors(
		func(err error) bool { return errors.Is(err, context.Canceled) },
		db.IsConstraintError,
	)
	return circuitbreaker.NewDBCircuitBreakerWithConfig(database, cfg)
}

// setupServer wires services, routes and the middleware chain.
func setupServer(logger *slog.Logger, cfg *appconfig.AppConfig, database *sql.DB, gen suggestionUC.TextGenerator) http.Handler {
	guarded := newDBBreaker(database)

	postSvc := postUC.Service{Repo: newPostRepo(cfg.Database.Driver, guarded)}
	suggestSvc := &suggestionUC.Service{Generator: gen, Timeout: cfg.Suggestion.Timeout}

	mux := http.NewServeMux()
	mux.Handle("GET /health", &hhttp.HealthHandler{DB: database, Version: cfg.Version, Breaker: guarded})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	hpost.Register(mux, postSvc)
	hsuggestion.Register(mux, suggestSvc)

	return applyMiddleware(logger, cfg.CORS, mux)
}

// applyMiddleware wraps handler, outermost first:
// CORS → Request ID → Recovery → Logging → Tracing → Body Limit → Metrics
func applyMiddleware(logger *slog.Logger, cfg appconfig.CORSConfig, handler http.Handler) http.Handler {
	cors := middleware.DefaultCORSConfig()
	cors.AllowedOrigins = cfg.AllowedOrigins
	cors.Logger = logger

	logger.Info("CORS enabled",
		slog.Any("allowed_origins", cors.AllowedOrigins),
		slog.Any("allowed_methods", cors.AllowedMethods))

	return hhttp.Chain(handler,
		middleware.CORS(cors),
		requestid.Middleware,
		hhttp.Recover(logger),
		hhttp.Logging(logger),
		tracing.Middleware,
		hhttp.LimitRequestBody(hhttp.MaxRequestBodyBytes),
		hhttp.MetricsMiddleware,
	)
}

// runServer serves until ctx is cancelled, then drains in-flight requests
// for at most cfg.ShutdownTimeout.
func runServer(ctx context.Context, logger *slog.Logger, cfg appconfig.HTTPConfig, handler http.Handler, version string) error {
	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Addr, err)
	}
	return serve(ctx, logger, ln, cfg, handler, version)
}

func serve(ctx context.Context, logger *slog.Logger, ln net.Listener, cfg appconfig.HTTPConfig, handler http.Handler, version string) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", ln.Addr().String()),
			slog.String("version", version))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		logger.Info("server stopped")
		return nil
	})
	return g.Wait()
}
