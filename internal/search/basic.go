package search

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dharmasatrya/flyback/internal/filter"
	"github.com/dharmasatrya/flyback/internal/models"
	"github.com/dharmasatrya/flyback/internal/ranking"
)

// BasicEngine searches a fixed outbound date and an optional return date.
type BasicEngine struct {
	source FlightSource
	log    *zap.Logger
}

func NewBasicEngine(source FlightSource, log *zap.Logger) *BasicEngine {
	if log == nil {
		log = zap.NewNop()
	}
	return &BasicEngine{source: source, log: log}
}

func (e *BasicEngine) Run(ctx context.Context, req models.BasicSearch) (models.SearchResultSet, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return models.SearchResultSet{}, err
	}

	e.log.Info("basic search",
		zap.String("origin", req.Origin),
		zap.String("destination", req.Destination),
		zap.String("departure_date", req.DepartureDate.String()),
		zap.Bool("return", req.ReturnDate != nil),
	)

	departing, err := e.leg(ctx, req.Outbound(), filter.Window{DepartFrom: req.MinDepartureTime})
	if err != nil {
		return models.SearchResultSet{}, fmt.Errorf("departing flights: %w", err)
	}

	var returning []models.Flight
	if inbound, ok := req.Inbound(); ok {
		returning, err = e.leg(ctx, inbound, filter.Window{ArriveBy: req.MaxArrivalTime})
		if err != nil {
			return models.SearchResultSet{}, fmt.Errorf("returning flights: %w", err)
		}
	}

	return models.NewSearchResultSet(departing, returning), nil
}

// leg fetches one direction. When a time window is set the surviving
// flights are sorted again.
func (e *BasicEngine) leg(ctx context.Context, q models.LegQuery, w filter.Window) ([]models.Flight, error) {
	flights, err := e.source.SearchDirect(ctx, q)
	if err != nil {
		return nil, err
	}

	if w.IsZero() {
		return flights, nil
	}
	return ranking.SortByPrice(filter.Apply(flights, w))
}
