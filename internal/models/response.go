package models

type SearchMetadata struct {
	TotalResults int      `json:"total_results"`
	Sources      []string `json:"sources"`
	SearchTimeMs int64    `json:"search_time_ms"`
}

// FlightView decorates a flight with display fields.
type FlightView struct {
	Flight
	OriginCity      string `json:"origin_city"`
	DestinationCity string `json:"destination_city"`
	FormattedPrice  string `json:"formatted_price"`
}

type RoundTripView struct {
	Dates          DatePair   `json:"dates"`
	Departure      FlightView `json:"departure"`
	Return         FlightView `json:"return"`
	TotalPrice     float64    `json:"total_price"`
	FormattedTotal string     `json:"formatted_total"`
}

type BasicSearchResponse struct {
	SearchCriteria BasicSearch    `json:"search_criteria"`
	Metadata       SearchMetadata `json:"metadata"`
	Departing      []FlightView   `json:"departing_flights"`
	Returning      []FlightView   `json:"returning_flights"`
}

type WeekdaySearchResponse struct {
	SearchCriteria WeekdaySearch   `json:"search_criteria"`
	Metadata       SearchMetadata  `json:"metadata"`
	RoundTrips     []RoundTripView `json:"round_trips"`
}

type Airport struct {
	Code string `json:"code"`
	City string `json:"city"`
}

type AirportsResponse struct {
	Airports []Airport `json:"airports"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
