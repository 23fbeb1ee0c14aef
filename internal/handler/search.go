package handler

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/dharmasatrya/flyback/internal/models"
	"github.com/dharmasatrya/flyback/internal/search"
	"github.com/dharmasatrya/flyback/pkg/currency"
)

// Catalog is the subset of the lookup tables the handlers render with.
type Catalog interface {
	CityName(code string) string
	HasAirport(code string) bool
	Airports() []models.Airport
}

type Config struct {
	// Timeout bounds a single search request. Zero disables the deadline.
	Timeout           time.Duration
	KnownAirportsOnly bool
}

// The outer Passengers field shadows the embedded one so an omitted value
// can be told apart from an explicit zero.
type basicSearchBody struct {
	models.BasicSearch
	Passengers *int `json:"passengers"`
}

type weekdaySearchBody struct {
	models.WeekdaySearch
	Passengers *int `json:"passengers"`
}

func passengersOrDefault(p *int) int {
	if p == nil {
		return 1
	}
	return *p
}

type SearchHandler struct {
	basic    search.Engine[models.BasicSearch, models.SearchResultSet]
	weekdays search.Engine[models.WeekdaySearch, []models.RoundTrip]
	catalog  Catalog
	cfg      Config
	log      *zap.Logger
}

func NewSearchHandler(
	basic search.Engine[models.BasicSearch, models.SearchResultSet],
	weekdays search.Engine[models.WeekdaySearch, []models.RoundTrip],
	catalog Catalog,
	cfg Config,
	log *zap.Logger,
) *SearchHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &SearchHandler{
		basic:    basic,
		weekdays: weekdays,
		catalog:  catalog,
		cfg:      cfg,
		log:      log,
	}
}

func (h *SearchHandler) SearchBasic(c echo.Context) error {
	startTime := time.Now()

	var body basicSearchBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, err)
	}
	req := body.BasicSearch
	req.Passengers = passengersOrDefault(body.Passengers)
	req.Normalize()
	if err := h.checkAirports(req.Origin, req.Destination); err != nil {
		return h.searchError(c, err)
	}

	ctx, cancel := h.withTimeout(c.Request().Context())
	defer cancel()

	result, err := h.basic.Run(ctx, req)
	if err != nil {
		return h.searchError(c, err)
	}

	departing := h.flightViews(result.Departing)
	returning := h.flightViews(result.Returning)

	return c.JSON(http.StatusOK, models.BasicSearchResponse{
		SearchCriteria: req,
		Metadata: models.SearchMetadata{
			TotalResults: len(departing) + len(returning),
			Sources:      sources(result.Departing, result.Returning),
			SearchTimeMs: time.Since(startTime).Milliseconds(),
		},
		Departing: departing,
		Returning: returning,
	})
}

func (h *SearchHandler) SearchWeekdays(c echo.Context) error {
	startTime := time.Now()

	var body weekdaySearchBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, err)
	}
	req := body.WeekdaySearch
	req.Passengers = passengersOrDefault(body.Passengers)
	req.Normalize()
	if err := h.checkAirports(req.Origin, req.Destination); err != nil {
		return h.searchError(c, err)
	}

	ctx, cancel := h.withTimeout(c.Request().Context())
	defer cancel()

	trips, err := h.weekdays.Run(ctx, req)
	if err != nil {
		return h.searchError(c, err)
	}

	views := make([]models.RoundTripView, 0, len(trips))
	legs := make([]models.Flight, 0, 2*len(trips))
	for _, trip := range trips {
		views = append(views, models.RoundTripView{
			Dates:          trip.Dates,
			Departure:      h.flightView(trip.Departure),
			Return:         h.flightView(trip.Return),
			TotalPrice:     trip.TotalPrice,
			FormattedTotal: currency.Format(trip.TotalPrice, trip.Departure.Currency),
		})
		legs = append(legs, trip.Departure, trip.Return)
	}

	return c.JSON(http.StatusOK, models.WeekdaySearchResponse{
		SearchCriteria: req,
		Metadata: models.SearchMetadata{
			TotalResults: len(views),
			Sources:      sources(legs),
			SearchTimeMs: time.Since(startTime).Milliseconds(),
		},
		RoundTrips: views,
	})
}

func (h *SearchHandler) Airports(c echo.Context) error {
	return c.JSON(http.StatusOK, models.AirportsResponse{
		Airports: h.catalog.Airports(),
	})
}

func (h *SearchHandler) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.cfg.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, h.cfg.Timeout)
}

func (h *SearchHandler) checkAirports(origin, destination string) error {
	if !h.cfg.KnownAirportsOnly {
		return nil
	}
	if !h.catalog.HasAirport(origin) {
		return models.NewValidationError("origin", "is not a known airport")
	}
	if !h.catalog.HasAirport(destination) {
		return models.NewValidationError("destination", "is not a known airport")
	}
	return nil
}

func (h *SearchHandler) searchError(c echo.Context, err error) error {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: verr.Error(),
			Code:    http.StatusBadRequest,
		})
	case errors.Is(err, context.DeadlineExceeded):
		return c.JSON(http.StatusGatewayTimeout, models.ErrorResponse{
			Error:   "search_timeout",
			Message: "Search did not finish in time",
			Code:    http.StatusGatewayTimeout,
		})
	default:
		h.log.Error("search failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "search_error",
			Message: "Failed to search flights: " + err.Error(),
			Code:    http.StatusInternalServerError,
		})
	}
}

func badRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "invalid_request",
		Message: "Failed to parse request body: " + err.Error(),
		Code:    http.StatusBadRequest,
	})
}

func (h *SearchHandler) flightViews(flights []models.Flight) []models.FlightView {
	views := make([]models.FlightView, 0, len(flights))
	for _, f := range flights {
		views = append(views, h.flightView(f))
	}
	return views
}

func (h *SearchHandler) flightView(f models.Flight) models.FlightView {
	return models.FlightView{
		Flight:          f,
		OriginCity:      h.catalog.CityName(f.Origin),
		DestinationCity: h.catalog.CityName(f.Destination),
		FormattedPrice:  currency.Format(f.Price, f.Currency),
	}
}

// sources lists the distinct providers behind the given flights.
func sources(groups ...[]models.Flight) []string {
	seen := make(map[string]bool)
	result := make([]string, 0)
	for _, flights := range groups {
		for _, f := range flights {
			if f.Provider == "" || seen[f.Provider] {
				continue
			}
			seen[f.Provider] = true
			result = append(result, f.Provider)
		}
	}
	sort.Strings(result)
	return result
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
