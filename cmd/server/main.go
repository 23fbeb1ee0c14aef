package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dharmasatrya/flyback/internal/cache"
	"github.com/dharmasatrya/flyback/internal/catalog"
	"github.com/dharmasatrya/flyback/internal/config"
	"github.com/dharmasatrya/flyback/internal/handler"
	"github.com/dharmasatrya/flyback/internal/mock"
	"github.com/dharmasatrya/flyback/internal/providers"
	"github.com/dharmasatrya/flyback/internal/ratelimit"
	"github.com/dharmasatrya/flyback/internal/search"
)

func main() {
	_ = godotenv.Load(".env")

	cfg := config.MustLoad()
	log := setupLogger(cfg.Log.Level)

	if err := run(cfg, log); err != nil {
		log.Error("flyback stopped", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
	_ = log.Sync()
}

func run(cfg *config.Config, log *zap.Logger) error {
	lookup, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("load lookup tables: %w", err)
	}

	generator, err := mock.NewGenerator(mock.NewSeededSource(cfg.Mock.Seed), lookup.AirlineNames(), log.Named("mock"))
	if err != nil {
		return fmt.Errorf("build mock generator: %w", err)
	}

	flightCache, err := newCache(cfg.Cache, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := flightCache.Close(); err != nil {
			log.Warn("failed to close cache", zap.Error(err))
		}
	}()

	source, err := newFlightSource(cfg.Provider, generator, lookup, flightCache, log)
	if err != nil {
		return fmt.Errorf("initialize flight source: %w", err)
	}

	basicEngine := search.NewBasicEngine(source, log.Named("basic"))
	weekdayEngine := search.NewWeekdayEngine(source, search.WeekdayConfig{
		Concurrency: cfg.Search.WeekdayConcurrency,
	}, log.Named("weekday"))

	searchHandler := handler.NewSearchHandler(basicEngine, weekdayEngine, lookup, handler.Config{
		Timeout:           cfg.Search.Timeout,
		KnownAirportsOnly: cfg.Search.KnownAirportsOnly,
	}, log.Named("handler"))

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	api := e.Group("/api/v1")
	api.POST("/flights/search", searchHandler.SearchBasic)
	api.POST("/flights/weekdays", searchHandler.SearchWeekdays)
	api.GET("/airports", searchHandler.Airports)
	e.GET("/health", handler.HealthHandler)

	log.Info("flyback starting",
		zap.String("env", cfg.Env),
		zap.String("port", cfg.HTTP.Port),
		zap.String("provider_mode", cfg.Provider.Mode),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(":" + cfg.HTTP.Port)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
	}
	return nil
}

func newCache(cfg config.CacheConfig, log *zap.Logger) (cache.Cache, error) {
	if !cfg.Enabled {
		log.Info("leg cache disabled")
		return cache.NewNoOpCache(), nil
	}

	redisCache, err := cache.NewRedisCache(cache.RedisConfig{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		TTL:      cfg.TTL,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	log.Info("leg cache enabled", zap.String("addr", cfg.Addr), zap.Duration("ttl", cfg.TTL))
	return redisCache, nil
}

// newFlightSource picks what answers leg lookups. Provider-backed modes
// fall back to the mock generator when the provider fails.
func newFlightSource(cfg config.ProviderConfig, generator *mock.Generator, lookup *catalog.Catalog, c cache.Cache, log *zap.Logger) (search.FlightSource, error) {
	fallback := providers.FallbackToMock(generator, log.Named("fallback"))

	switch strings.ToLower(strings.TrimSpace(cfg.Mode)) {
	case config.ProviderModeMock, "":
		return generator, nil
	case config.ProviderModeAmadeus:
		limiter := ratelimit.New(ratelimit.DefaultLimit())
		limiter.Set(providers.AmadeusName, ratelimit.Limit{
			RequestsPerSecond: cfg.Amadeus.RequestsPerSecond,
			Burst:             cfg.Amadeus.Burst,
		})
		client := providers.NewAmadeusClient(providers.AmadeusConfig{
			BaseURL:      cfg.Amadeus.BaseURL,
			ClientID:     cfg.Amadeus.ClientID,
			ClientSecret: cfg.Amadeus.ClientSecret,
			Timeout:      cfg.Amadeus.Timeout,
		}, limiter)
		return providers.NewDirectFlightAdapter(client, fallback, lookup, c, log.Named("amadeus")), nil
	case config.ProviderModeReplay:
		replay, err := providers.NewReplaySource()
		if err != nil {
			return nil, err
		}
		return providers.NewDirectFlightAdapter(replay, fallback, lookup, c, log.Named("replay")), nil
	default:
		return nil, errors.New("unknown provider mode: " + cfg.Mode)
	}
}

func setupLogger(level string) *zap.Logger {
	zapLevel := parseLogLevel(level)
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	return log
}

func parseLogLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
