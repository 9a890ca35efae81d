package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"rental-calculator/client"
	"rental-calculator/config"
	httpLayer "rental-calculator/http"
	"rental-calculator/logger"
	"rental-calculator/repository"
	"rental-calculator/service"
)

func main() {
	configPath := flag.String("config", "", "path to a config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Development)
	defer logger.Sync(log)

	if err := run(cfg, log); err != nil {
		log.Error("server exited with error", zap.Error(err))
		os.Exit(1)
	}
	log.Info("server exited")
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cache, closeCache, err := newCache(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeCache()

	explainer := service.NewExplainer(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL,
		logger.WithComponent(log, "explainer"))
	rentalService := service.NewRentalService(cache, cfg.CacheTTL, explainer,
		logger.WithComponent(log, "rental"))

	var upstream httpLayer.MarketData
	if cfg.UpstreamURL != "" {
		upstream = client.New(cfg.UpstreamURL,
			client.WithHTTPClient(&http.Client{Timeout: cfg.UpstreamTimeout}),
			client.WithRetries(cfg.UpstreamRetries),
			client.WithLogger(logger.WithComponent(log, "market-client")),
		)
	} else {
		log.Warn("upstream_url not set, market data endpoints will return 503")
	}

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitCapacity, cfg.RateLimitRefill)
	defer rateLimiter.Stop()

	handler := httpLayer.NewRouter(httpLayer.RouterConfig{
		Rental:         httpLayer.NewRentalHandler(rentalService, logger.WithComponent(log, "http")),
		Market:         httpLayer.NewMarketHandler(upstream, logger.WithComponent(log, "http")),
		Limiter:        rateLimiter,
		AllowedOrigins: cfg.AllowedOrigins,
		Log:            logger.WithComponent(log, "http"),
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("api listening", zap.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// newCache connects to redis when configured and falls back to an in-process
// cache otherwise.
func newCache(ctx context.Context, cfg *config.Config, log *zap.Logger) (repository.CacheRepository, func(), error) {
	if cfg.RedisAddr == "" {
		return repository.NewMemoryCache(cfg.CacheMaxEntries), func() {}, nil
	}

	redisCache := repository.NewRedisCache(cfg.RedisAddr, "")
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := redisCache.Ping(pingCtx); err != nil {
		redisCache.Close()
		return nil, nil, fmt.Errorf("connect redis %s: %w", cfg.RedisAddr, err)
	}
	log.Info("using redis cache", zap.String("addr", cfg.RedisAddr))

	return redisCache, func() {
		if err := redisCache.Close(); err != nil {
			log.Warn("failed to close redis", zap.Error(err))
		}
	}, nil
}
