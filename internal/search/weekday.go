package search

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/dharmasatrya/flyback/internal/daterange"
	"github.com/dharmasatrya/flyback/internal/models"
	"github.com/dharmasatrya/flyback/internal/ranking"
)

type WeekdayConfig struct {
	// Concurrency bounds parallel date-pair lookups. Values below 2 run
	// the pairs one after another.
	Concurrency int
}

// WeekdayEngine finds the cheapest round trip for every departure/return
// weekday pair inside a date range.
type WeekdayEngine struct {
	source FlightSource
	config WeekdayConfig
	log    *zap.Logger
}

func NewWeekdayEngine(source FlightSource, config WeekdayConfig, log *zap.Logger) *WeekdayEngine {
	if log == nil {
		log = zap.NewNop()
	}
	return &WeekdayEngine{
		source: source,
		config: config,
		log:    log,
	}
}

// Run returns one round trip per date pair where both legs have flights,
// ordered by ascending total price.
func (e *WeekdayEngine) Run(ctx context.Context, req models.WeekdaySearch) ([]models.RoundTrip, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	pairs := daterange.Enumerate(req.DepartureWeekday, req.ReturnWeekday, req.MinDate, req.MaxDate)
	e.log.Info("weekday search",
		zap.String("origin", req.Origin),
		zap.String("destination", req.Destination),
		zap.Stringer("departure_weekday", req.DepartureWeekday),
		zap.Stringer("return_weekday", req.ReturnWeekday),
		zap.Int("date_pairs", len(pairs)),
	)

	// Indexed by pair so the pre-sort order does not depend on scheduling.
	results := make([]*models.RoundTrip, len(pairs))

	var err error
	if e.config.Concurrency > 1 {
		err = e.runConcurrent(ctx, req, pairs, results)
	} else {
		err = e.runSequential(ctx, req, pairs, results)
	}
	if err != nil {
		return nil, err
	}

	trips := make([]models.RoundTrip, 0, len(pairs))
	for _, rt := range results {
		if rt != nil {
			trips = append(trips, *rt)
		}
	}

	return ranking.SortByPrice(trips)
}

func (e *WeekdayEngine) runSequential(ctx context.Context, req models.WeekdaySearch, pairs []models.DatePair, results []*models.RoundTrip) error {
	for i, p := range pairs {
		if err := ctx.Err(); err != nil {
			return err
		}
		rt, err := e.cheapestRoundTrip(ctx, req, p)
		if err != nil {
			return err
		}
		results[i] = rt
	}
	return nil
}

func (e *WeekdayEngine) runConcurrent(parent context.Context, req models.WeekdaySearch, pairs []models.DatePair, results []*models.RoundTrip) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	sem := make(chan struct{}, e.config.Concurrency)
	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)

	for i, p := range pairs {
		wg.Add(1)
		go func(i int, p models.DatePair) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				return
			}
			defer func() { <-sem }()

			if ctx.Err() != nil {
				return
			}

			rt, err := e.cheapestRoundTrip(ctx, req, p)
			if err != nil {
				once.Do(func() {
					firstErr = err
					cancel()
				})
				return
			}
			results[i] = rt
		}(i, p)
	}

	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return parent.Err()
}

// cheapestRoundTrip returns nil when either leg has no flights.
func (e *WeekdayEngine) cheapestRoundTrip(ctx context.Context, req models.WeekdaySearch, pair models.DatePair) (*models.RoundTrip, error) {
	outbound, inbound := req.Legs(pair)

	departing, err := e.source.SearchDirect(ctx, outbound)
	if err != nil {
		return nil, fmt.Errorf("departing flights on %s: %w", pair.Departure, err)
	}
	returning, err := e.source.SearchDirect(ctx, inbound)
	if err != nil {
		return nil, fmt.Errorf("returning flights on %s: %w", pair.Return, err)
	}

	if len(departing) == 0 || len(returning) == 0 {
		e.log.Debug("date pair has no complete round trip",
			zap.String("departure", pair.Departure.String()),
			zap.String("return", pair.Return.String()),
			zap.Int("departing", len(departing)),
			zap.Int("returning", len(returning)),
		)
		return nil, nil
	}

	rt := models.NewRoundTrip(pair, departing[0], returning[0])
	return &rt, nil
}
