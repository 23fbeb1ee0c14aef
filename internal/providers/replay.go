package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dharmasatrya/flyback/internal/datetime"
	"github.com/dharmasatrya/flyback/internal/models"
	"github.com/dharmasatrya/flyback/internal/providers/data"
)

const ReplayName = "replay"

// ReplaySource serves recorded flight-offer payloads instead of calling the
// live API. Offers are matched on the first segment's origin, the last
// segment's destination and the departure date.
type ReplaySource struct {
	offers []Offer
}

func NewReplaySource() (*ReplaySource, error) {
	return NewReplaySourceFromJSON(data.FlightOffers)
}

func NewReplaySourceFromJSON(raw []byte) (*ReplaySource, error) {
	var resp OfferResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode recorded offers: %w", err)
	}
	return &ReplaySource{offers: resp.Data}, nil
}

func (s *ReplaySource) Name() string {
	return ReplayName
}

func (s *ReplaySource) FetchOffers(ctx context.Context, q models.LegQuery) (*OfferResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	matched := make([]Offer, 0)
	for _, offer := range s.offers {
		if len(offer.Itineraries) == 0 || len(offer.Itineraries[0].Segments) == 0 {
			continue
		}
		segments := offer.Itineraries[0].Segments
		first, last := segments[0], segments[len(segments)-1]

		if !strings.EqualFold(first.Departure.IATACode, q.Origin) ||
			!strings.EqualFold(last.Arrival.IATACode, q.Destination) {
			continue
		}

		departure, err := datetime.ParseLocal(first.Departure.At)
		if err != nil || !departure.Date().Equal(q.Date) {
			continue
		}

		matched = append(matched, offer)
	}

	return &OfferResponse{Data: matched}, nil
}
