package providers

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/dharmasatrya/flyback/internal/cache"
	"github.com/dharmasatrya/flyback/internal/models"
	"github.com/dharmasatrya/flyback/internal/ranking"
)

// FallbackPolicy turns a failed provider lookup into a result.
type FallbackPolicy interface {
	Recover(ctx context.Context, q models.LegQuery, cause *ProviderError) ([]models.Flight, error)
}

// MockFallback substitutes generated flights for the failed leg.
type MockFallback struct {
	source LegSource
	log    *zap.Logger
}

// FallbackToMock returns the policy that answers every provider failure
// with output from source, typically the mock generator.
func FallbackToMock(source LegSource, log *zap.Logger) *MockFallback {
	if log == nil {
		log = zap.NewNop()
	}
	return &MockFallback{source: source, log: log}
}

func (m *MockFallback) Recover(ctx context.Context, q models.LegQuery, cause *ProviderError) ([]models.Flight, error) {
	m.log.Warn("provider lookup failed, serving mock flights",
		zap.String("provider", cause.Provider),
		zap.String("origin", q.Origin),
		zap.String("destination", q.Destination),
		zap.String("date", q.Date.String()),
		zap.Error(cause.Err),
	)
	return m.source.SearchDirect(ctx, q)
}

// DirectFlightAdapter queries an offer source for direct flights and never
// surfaces provider failures to its callers.
type DirectFlightAdapter struct {
	source   OfferSource
	fallback FallbackPolicy
	airlines AirlineNamer
	cache    cache.Cache
	log      *zap.Logger
}

func NewDirectFlightAdapter(source OfferSource, fallback FallbackPolicy, airlines AirlineNamer, c cache.Cache, log *zap.Logger) *DirectFlightAdapter {
	if c == nil {
		c = cache.NewNoOpCache()
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &DirectFlightAdapter{
		source:   source,
		fallback: fallback,
		airlines: airlines,
		cache:    c,
		log:      log,
	}
}

// SearchDirect returns direct flights for the leg ordered by price. Only a
// malformed query is reported as an error.
func (a *DirectFlightAdapter) SearchDirect(ctx context.Context, q models.LegQuery) ([]models.Flight, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	cached, err := a.cache.Get(ctx, q)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		a.log.Warn("leg cache read failed", zap.Error(err))
	}

	flights, err := a.fetch(ctx, q)
	if err != nil {
		return a.fallback.Recover(ctx, q, NewProviderError(a.source.Name(), err))
	}

	if err := a.cache.Set(ctx, q, flights); err != nil {
		a.log.Warn("leg cache write failed", zap.Error(err))
	}

	a.log.Debug("provider lookup succeeded",
		zap.String("provider", a.source.Name()),
		zap.String("origin", q.Origin),
		zap.String("destination", q.Destination),
		zap.Int("direct_flights", len(flights)),
	)
	return flights, nil
}

func (a *DirectFlightAdapter) fetch(ctx context.Context, q models.LegQuery) ([]models.Flight, error) {
	resp, err := a.source.FetchOffers(ctx, q)
	if err != nil {
		return nil, err
	}

	flights, err := mapDirectFlights(resp, a.source.Name(), a.airlines)
	if err != nil {
		return nil, err
	}

	return ranking.SortByPrice(flights)
}
