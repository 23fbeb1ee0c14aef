package data

import _ "embed"

// FlightOffers is a recorded flight-offers search payload.
//
//go:embed flight_offers.json
var FlightOffers []byte
