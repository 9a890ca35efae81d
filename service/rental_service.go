package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"rental-calculator/domain"
	"rental-calculator/repository"
)

const cacheKeyPrefix = "rental:v2:"

type summarizer interface {
	Summarize(ctx context.Context, input domain.RentalInput, result domain.RentalResult, analysis []domain.MetricAnalysis) string
}

type RentalService struct {
	cache     repository.CacheRepository
	cacheTTL  time.Duration
	explainer summarizer
	log       *zap.Logger
}

// NewRentalService creates a RentalService. explainer may be nil, in which
// case analyses carry no summary.
func NewRentalService(
	cache repository.CacheRepository,
	cacheTTL time.Duration,
	explainer summarizer,
	log *zap.Logger,
) *RentalService {
	return &RentalService{
		cache:     cache,
		cacheTTL:  cacheTTL,
		explainer: explainer,
		log:       log,
	}
}

// Calculate validates and computes input, then rates the headline metrics.
// Errors wrap ErrInvalidInput or ErrDegenerateComputation.
func (s *RentalService) Calculate(
	ctx context.Context,
	input domain.RentalInput,
) (domain.RentalAnalysis, error) {

	// Validar entrada
	if err := ValidateInput(input); err != nil {
		return domain.RentalAnalysis{}, err
	}

	key, err := cacheKey(input)
	if err != nil {
		return domain.RentalAnalysis{}, err
	}

	entry, hit := s.cached(ctx, key)
	dirty := !hit
	if !hit {
		entry.Result, err = Compute(input)
		if err != nil {
			return domain.RentalAnalysis{}, err
		}
	}

	analysis := Analyze(entry.Result)

	// El resumen también se guarda: evita una llamada al modelo por cada recálculo
	if s.explainer != nil && entry.Summary == "" {
		entry.Summary = s.explainer.Summarize(ctx, input, entry.Result, analysis)
		dirty = true
	}

	if dirty {
		s.store(ctx, key, entry)
	}

	s.log.Debug("rental calculation",
		zap.String("cache_key", key),
		zap.Bool("cache_hit", hit),
		zap.Float64("cap_rate_pct", entry.Result.CapRatePct),
		zap.Float64("cash_on_cash_pct", entry.Result.CashOnCashReturnPct),
	)

	return domain.RentalAnalysis{
		Input:    input,
		Result:   entry.Result,
		Analysis: analysis,
		Summary:  entry.Summary,
	}, nil
}

// cacheEntry is what gets stored per input: the computed result and, when an
// explainer is configured, its summary.
type cacheEntry struct {
	Result  domain.RentalResult `json:"result"`
	Summary string              `json:"summary,omitempty"`
}

func (s *RentalService) cached(ctx context.Context, key string) (cacheEntry, bool) {
	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		return cacheEntry{}, false
	}
	var entry cacheEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		s.log.Warn("discarding unreadable cache entry", zap.String("key", key), zap.Error(err))
		return cacheEntry{}, false
	}
	return entry, true
}

// store is best effort; a failing cache never fails a calculation.
func (s *RentalService) store(ctx context.Context, key string, entry cacheEntry) {
	raw, err := json.Marshal(entry)
	if err != nil {
		s.log.Warn("failed to encode rental result", zap.Error(err))
		return
	}
	// Guardar en caché (no crítico si falla)
	if err := s.cache.Set(ctx, key, string(raw), s.cacheTTL); err != nil {
		s.log.Warn("failed to cache rental result", zap.String("key", key), zap.Error(err))
	}
}

// cacheKey hashes the canonical JSON encoding of the input. Go encodes
// float64 with the shortest representation that round-trips, so distinct
// inputs never share an encoding.
func cacheKey(input domain.RentalInput) (string, error) {
	raw, err := json.Marshal(input)
	if err != nil {
		return "", fmt.Errorf("encode cache key: %w", err)
	}
	return fmt.Sprintf("%s%016x", cacheKeyPrefix, xxhash.Sum64(raw)), nil
}
