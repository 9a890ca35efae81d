package http

import (
	"net/http"

	"go.uber.org/zap"
)

type RouterConfig struct {
	Rental         *RentalHandler
	Market         *MarketHandler
	Limiter        *RateLimiter
	AllowedOrigins []string
	Log            *zap.Logger
}

func NewRouter(cfg RouterConfig) http.Handler {
	limited := func(h http.HandlerFunc) http.Handler {
		return RateLimitMiddleware(cfg.Limiter, h)
	}

	mux := http.NewServeMux()
	mux.Handle("/api/v1/rental/calculate", limited(cfg.Rental.Calculate))
	mux.HandleFunc("/api/v1/rental/defaults", cfg.Rental.Defaults)

	mux.Handle("/api/v1/forecast/{address}", limited(cfg.Market.Forecast))
	mux.Handle("/api/v1/investment/score", limited(cfg.Market.InvestmentScore))
	mux.Handle("/api/v1/areas/top", limited(cfg.Market.TopAreas))

	mux.Handle("/api/v1/health", HealthHandler(cfg.Log))

	return LoggingMiddleware(cfg.Log, CORSMiddleware(cfg.AllowedOrigins, mux))
}
