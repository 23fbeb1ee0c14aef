package search

import (
	"context"

	"github.com/dharmasatrya/flyback/internal/models"
)

// FlightSource answers one-way direct flight lookups. The provider adapter
// and the mock generator both satisfy it.
type FlightSource interface {
	SearchDirect(ctx context.Context, q models.LegQuery) ([]models.Flight, error)
}

// Engine runs one kind of search.
type Engine[Req, Res any] interface {
	Run(ctx context.Context, req Req) (Res, error)
}

var (
	_ Engine[models.BasicSearch, models.SearchResultSet] = (*BasicEngine)(nil)
	_ Engine[models.WeekdaySearch, []models.RoundTrip]   = (*WeekdayEngine)(nil)
)
