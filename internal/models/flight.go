package models

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/dharmasatrya/flyback/internal/datetime"
)

const DurationPrefix = "PT"

// Flight is a single direct flight offer. Values are only produced by
// NewFlight and are treated as read-only afterwards.
type Flight struct {
	ID            string         `json:"id"`
	Provider      string         `json:"provider"`
	Origin        string         `json:"origin"`
	Destination   string         `json:"destination"`
	DepartureTime datetime.Local `json:"departure_time"`
	ArrivalTime   datetime.Local `json:"arrival_time"`
	Airline       string         `json:"airline"`
	Price         float64        `json:"price"`
	Currency      string         `json:"currency"`
	Duration      string         `json:"duration"`
}

// FlightInput carries unvalidated flight fields as received from a source.
type FlightInput struct {
	ID            string
	Provider      string
	Origin        string
	Destination   string
	DepartureTime string
	ArrivalTime   string
	Airline       string
	Price         float64
	Currency      string
	Duration      string
}

func NewFlight(in FlightInput) (Flight, error) {
	if utf8.RuneCountInString(in.Origin) != 3 {
		return Flight{}, NewValidationError("origin", "must be exactly 3 characters")
	}
	if utf8.RuneCountInString(in.Destination) != 3 {
		return Flight{}, NewValidationError("destination", "must be exactly 3 characters")
	}

	departure, err := datetime.ParseLocal(in.DepartureTime)
	if err != nil {
		return Flight{}, NewValidationError("departure_time", "must be an ISO-8601 local datetime")
	}
	arrival, err := datetime.ParseLocal(in.ArrivalTime)
	if err != nil {
		return Flight{}, NewValidationError("arrival_time", "must be an ISO-8601 local datetime")
	}

	if math.IsNaN(in.Price) || math.IsInf(in.Price, 0) || in.Price <= 0 {
		return Flight{}, NewValidationError("price", "must be positive")
	}
	if !strings.HasPrefix(in.Duration, DurationPrefix) {
		return Flight{}, NewValidationError("duration", "must start with "+DurationPrefix)
	}

	return Flight{
		ID:            in.ID,
		Provider:      in.Provider,
		Origin:        in.Origin,
		Destination:   in.Destination,
		DepartureTime: departure,
		ArrivalTime:   arrival,
		Airline:       in.Airline,
		Price:         in.Price,
		Currency:      in.Currency,
		Duration:      in.Duration,
	}, nil
}

func (f Flight) PriceKey() float64 { return f.Price }
