package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"rental-calculator/client"
	"rental-calculator/domain"
)

// MarketData is the upstream market-data API. *client.Client implements it.
type MarketData interface {
	Forecast(ctx context.Context, address string) (domain.Forecast, error)
	InvestmentScore(ctx context.Context, address string) (domain.InvestmentScore, error)
	TopAreas(ctx context.Context) (domain.TopAreas, error)
}

// MarketHandler relays market-data requests so the browser talks to a single
// origin. A nil upstream answers 503.
type MarketHandler struct {
	upstream MarketData
	log      *zap.Logger
}

func NewMarketHandler(upstream MarketData, log *zap.Logger) *MarketHandler {
	return &MarketHandler{upstream: upstream, log: log}
}

func (h *MarketHandler) Forecast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !h.available(w) {
		return
	}

	address := strings.TrimSpace(r.PathValue("address"))
	if address == "" {
		writeError(w, h.log, http.StatusBadRequest, errorResponse{Error: "address is required"})
		return
	}

	out, err := h.upstream.Forecast(r.Context(), address)
	if err != nil {
		h.writeUpstreamError(w, "forecast", err)
		return
	}
	writeJSON(w, h.log, http.StatusOK, out)
}

func (h *MarketHandler) InvestmentScore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !h.available(w) {
		return
	}

	var req domain.InvestmentScoreRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		writeError(w, h.log, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Address) == "" {
		writeError(w, h.log, http.StatusBadRequest, errorResponse{Error: "address is required"})
		return
	}

	out, err := h.upstream.InvestmentScore(r.Context(), req.Address)
	if err != nil {
		h.writeUpstreamError(w, "investment score", err)
		return
	}
	writeJSON(w, h.log, http.StatusOK, out)
}

func (h *MarketHandler) TopAreas(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !h.available(w) {
		return
	}

	out, err := h.upstream.TopAreas(r.Context())
	if err != nil {
		h.writeUpstreamError(w, "top areas", err)
		return
	}
	writeJSON(w, h.log, http.StatusOK, out)
}

func (h *MarketHandler) available(w http.ResponseWriter) bool {
	if h.upstream == nil {
		writeError(w, h.log, http.StatusServiceUnavailable, errorResponse{Error: "market data service not configured"})
		return false
	}
	return true
}

// writeUpstreamError passes upstream 4xx answers through and reports
// everything else as a bad gateway.
func (h *MarketHandler) writeUpstreamError(w http.ResponseWriter, what string, err error) {
	var statusErr *client.StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode >= 400 && statusErr.StatusCode < 500 {
		writeError(w, h.log, statusErr.StatusCode, errorResponse{Error: statusErr.Body})
		return
	}

	h.log.Error("upstream request failed", zap.String("resource", what), zap.Error(err))
	writeError(w, h.log, http.StatusBadGateway, errorResponse{Error: "failed to load " + what})
}
