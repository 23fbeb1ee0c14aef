package search

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/dharmasatrya/flyback/internal/models"
)

// stubSource serves canned flights keyed by "ORG-DST-DATE".
type stubSource struct {
	mu      sync.Mutex
	flights map[string][]models.Flight
	err     error
	calls   []models.LegQuery
}

func newStubSource() *stubSource {
	return &stubSource{flights: make(map[string][]models.Flight)}
}

func legKey(origin, destination, date string) string {
	return origin + "-" + destination + "-" + date
}

func (s *stubSource) add(t *testing.T, id, origin, destination, dep, arr string, price float64) {
	t.Helper()
	f, err := models.NewFlight(models.FlightInput{
		ID:            id,
		Provider:      "stub",
		Origin:        origin,
		Destination:   destination,
		DepartureTime: dep,
		ArrivalTime:   arr,
		Airline:       "SAS",
		Price:         price,
		Currency:      "EUR",
		Duration:      "PT1H10M",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	key := legKey(origin, destination, f.DepartureTime.Date().String())
	s.flights[key] = append(s.flights[key], f)
}

func (s *stubSource) SearchDirect(ctx context.Context, q models.LegQuery) ([]models.Flight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, q)
	if s.err != nil {
		return nil, s.err
	}
	return s.flights[legKey(q.Origin, q.Destination, q.Date.String())], nil
}

func flightIDs(flights []models.Flight) string {
	out := ""
	for i, f := range flights {
		if i > 0 {
			out += ","
		}
		out += f.ID
	}
	return out
}

func tripSummary(trips []models.RoundTrip) []string {
	out := make([]string, len(trips))
	for i, rt := range trips {
		out[i] = fmt.Sprintf("%s/%s=%.2f", rt.Departure.ID, rt.Return.ID, rt.TotalPrice)
	}
	return out
}
