package providers

// OfferResponse mirrors the flight-offers search payload. Only the fields
// the mapper reads are declared.
type OfferResponse struct {
	Data []Offer `json:"data"`
}

type Offer struct {
	ID                     string      `json:"id"`
	ValidatingAirlineCodes []string    `json:"validatingAirlineCodes"`
	Price                  OfferPrice  `json:"price"`
	Itineraries            []Itinerary `json:"itineraries"`
}

type OfferPrice struct {
	Currency   string `json:"currency"`
	Total      string `json:"total"`
	GrandTotal string `json:"grandTotal,omitempty"`
}

type Itinerary struct {
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

type Segment struct {
	Departure   Endpoint `json:"departure"`
	Arrival     Endpoint `json:"arrival"`
	CarrierCode string   `json:"carrierCode"`
	Number      string   `json:"number"`
	Duration    string   `json:"duration"`
	// Nil when the provider omits the field; such segments are not direct.
	NumberOfStops *int `json:"numberOfStops"`
}

type Endpoint struct {
	IATACode string `json:"iataCode"`
	Terminal string `json:"terminal,omitempty"`
	At       string `json:"at"`
}
