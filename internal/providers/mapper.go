package providers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/dharmasatrya/flyback/internal/models"
)

var (
	ErrMissingData    = errors.New("offer response has no data array")
	ErrMissingAirline = errors.New("offer has no validating airline")
)

// mapDirectFlights converts non-stop single-segment itineraries into
// flights. Connecting itineraries are skipped; any malformed direct offer
// fails the whole response.
func mapDirectFlights(resp *OfferResponse, provider string, airlines AirlineNamer) ([]models.Flight, error) {
	if resp == nil || resp.Data == nil {
		return nil, ErrMissingData
	}

	flights := make([]models.Flight, 0, len(resp.Data))
	for _, offer := range resp.Data {
		for _, itinerary := range offer.Itineraries {
			if !isDirect(itinerary) {
				continue
			}

			f, err := mapSegment(offer, itinerary, provider, airlines)
			if err != nil {
				return nil, fmt.Errorf("offer %s: %w", offer.ID, err)
			}
			flights = append(flights, f)
		}
	}

	return flights, nil
}

func isDirect(it Itinerary) bool {
	if len(it.Segments) != 1 {
		return false
	}
	stops := it.Segments[0].NumberOfStops
	return stops != nil && *stops == 0
}

func mapSegment(offer Offer, it Itinerary, provider string, airlines AirlineNamer) (models.Flight, error) {
	if len(offer.ValidatingAirlineCodes) == 0 {
		return models.Flight{}, ErrMissingAirline
	}

	price, err := strconv.ParseFloat(offer.Price.Total, 64)
	if err != nil {
		return models.Flight{}, fmt.Errorf("parse price %q: %w", offer.Price.Total, err)
	}

	seg := it.Segments[0]
	return models.NewFlight(models.FlightInput{
		ID:            offer.ID,
		Provider:      provider,
		Origin:        seg.Departure.IATACode,
		Destination:   seg.Arrival.IATACode,
		DepartureTime: seg.Departure.At,
		ArrivalTime:   seg.Arrival.At,
		Airline:       airlines.AirlineName(offer.ValidatingAirlineCodes[0]),
		Price:         price,
		Currency:      offer.Price.Currency,
		Duration:      it.Duration,
	})
}
