package models

import (
	"math"

	"github.com/dharmasatrya/flyback/internal/datetime"
)

// DatePair is a candidate outbound/return date combination. Return is
// never before Departure.
type DatePair struct {
	Departure datetime.Date `json:"departure"`
	Return    datetime.Date `json:"return"`
}

type RoundTrip struct {
	Dates      DatePair `json:"dates"`
	Departure  Flight   `json:"departure"`
	Return     Flight   `json:"return"`
	TotalPrice float64  `json:"total_price"`
}

func NewRoundTrip(dates DatePair, departure, ret Flight) RoundTrip {
	return RoundTrip{
		Dates:      dates,
		Departure:  departure,
		Return:     ret,
		TotalPrice: RoundPrice(departure.Price + ret.Price),
	}
}

func (r RoundTrip) PriceKey() float64 { return r.TotalPrice }

// SearchResultSet holds both legs of a basic search. Returning is empty
// when no return date was requested.
type SearchResultSet struct {
	Departing []Flight `json:"departing"`
	Returning []Flight `json:"returning"`
}

func NewSearchResultSet(departing, returning []Flight) SearchResultSet {
	if departing == nil {
		departing = []Flight{}
	}
	if returning == nil {
		returning = []Flight{}
	}
	return SearchResultSet{
		Departing: departing,
		Returning: returning,
	}
}

// RoundPrice rounds to cents.
func RoundPrice(v float64) float64 {
	return math.Round(v*100) / 100
}
