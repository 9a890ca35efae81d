package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"rental-calculator/client"
	"rental-calculator/domain"
)

type MockMarketData struct {
	LastAddress string
	Err         error
}

func (m *MockMarketData) Forecast(_ context.Context, address string) (domain.Forecast, error) {
	m.LastAddress = address
	if m.Err != nil {
		return domain.Forecast{}, m.Err
	}
	return domain.Forecast{Address: address, County: "Orange", CurrentValue: 850000}, nil
}

func (m *MockMarketData) InvestmentScore(_ context.Context, address string) (domain.InvestmentScore, error) {
	m.LastAddress = address
	if m.Err != nil {
		return domain.InvestmentScore{}, m.Err
	}
	return domain.InvestmentScore{Address: address, InvestmentScore: 77, RiskLevel: "Medium"}, nil
}

func (m *MockMarketData) TopAreas(_ context.Context) (domain.TopAreas, error) {
	if m.Err != nil {
		return domain.TopAreas{}, m.Err
	}
	return domain.TopAreas{Areas: []domain.TopArea{{ID: 1, County: "Riverside", OverallScore: 91}}}, nil
}

func newTestRouter(market MarketData) http.Handler {
	return NewRouter(RouterConfig{
		Rental:         newRentalHandler(),
		Market:         NewMarketHandler(market, zap.NewNop()),
		Limiter:        NewRateLimiter(100, time.Minute),
		AllowedOrigins: []string{"http://localhost:5173"},
		Log:            zap.NewNop(),
	})
}

func TestForecastHandler_OK(t *testing.T) {
	market := &MockMarketData{}
	router := newTestRouter(market)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/forecast/92602%20Irvine", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "92602 Irvine", market.LastAddress)

	var out domain.Forecast
	require.NoError(t, json.NewDecoder(w.Body).Decode(&out))
	assert.Equal(t, "Orange", out.County)
}

func TestInvestmentScoreHandler(t *testing.T) {
	market := &MockMarketData{}
	router := newTestRouter(market)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/investment/score", bytes.NewBufferString(`{"address":"Irvine, CA"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Irvine, CA", market.LastAddress)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/investment/score", bytes.NewBufferString(`{"address":"  "}`))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/investment/score", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestTopAreasHandler(t *testing.T) {
	router := newTestRouter(&MockMarketData{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/areas/top", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var out domain.TopAreas
	require.NoError(t, json.NewDecoder(w.Body).Decode(&out))
	require.Len(t, out.Areas, 1)
	assert.Equal(t, 91, out.Areas[0].OverallScore)
}

func TestMarketHandler_UpstreamErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"network failure", errors.New("dial tcp: connection refused"), http.StatusBadGateway},
		{"upstream 5xx", &client.StatusError{StatusCode: 500, Body: "boom"}, http.StatusBadGateway},
		{"upstream 404", &client.StatusError{StatusCode: 404, Body: "address not found"}, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&MockMarketData{Err: tt.err})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/forecast/somewhere", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestMarketHandler_NotConfigured(t *testing.T) {
	router := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/areas/top", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRouter_HealthAndCORS(t *testing.T) {
	router := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))

	var out map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&out))
	assert.Equal(t, "healthy", out["status"])
	assert.Equal(t, serviceName, out["service"])

	req = httptest.NewRequest(http.MethodOptions, "/api/v1/rental/calculate", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_RequestIDPropagates(t *testing.T) {
	router := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rental/defaults", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
}
