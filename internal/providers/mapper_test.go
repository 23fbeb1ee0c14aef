package providers

import (
	"encoding/json"
	"errors"
	"testing"
)

type namer map[string]string

func (n namer) AirlineName(code string) string {
	if name, ok := n[code]; ok {
		return name
	}
	return code
}

var testAirlines = namer{"SK": "SAS", "LH": "Lufthansa"}

func decodeOffers(t *testing.T, raw string) *OfferResponse {
	t.Helper()
	var resp OfferResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	return &resp
}

const mixedOffers = `{
	"data": [
		{
			"id": "1",
			"validatingAirlineCodes": ["SK"],
			"price": {"currency": "EUR", "total": "129.50"},
			"itineraries": [{"duration": "PT1H10M", "segments": [
				{"departure": {"iataCode": "CPH", "at": "2024-12-10T18:00:00"},
				 "arrival": {"iataCode": "BER", "at": "2024-12-10T19:10:00"},
				 "numberOfStops": 0}
			]}]
		},
		{
			"id": "2",
			"validatingAirlineCodes": ["LH"],
			"price": {"currency": "EUR", "total": "80.00"},
			"itineraries": [{"duration": "PT4H25M", "segments": [
				{"departure": {"iataCode": "CPH", "at": "2024-12-10T09:30:00"},
				 "arrival": {"iataCode": "FRA", "at": "2024-12-10T11:00:00"},
				 "numberOfStops": 0},
				{"departure": {"iataCode": "FRA", "at": "2024-12-10T12:45:00"},
				 "arrival": {"iataCode": "BER", "at": "2024-12-10T13:55:00"},
				 "numberOfStops": 0}
			]}]
		},
		{
			"id": "3",
			"validatingAirlineCodes": ["XQ"],
			"price": {"currency": "DKK", "total": "700.25"},
			"itineraries": [{"duration": "PT1H5M", "segments": [
				{"departure": {"iataCode": "CPH", "at": "2024-12-10T07:05:00"},
				 "arrival": {"iataCode": "BER", "at": "2024-12-10T08:10:00"},
				 "numberOfStops": 0}
			]}]
		},
		{
			"id": "4",
			"validatingAirlineCodes": ["SK"],
			"price": {"currency": "EUR", "total": "60.00"},
			"itineraries": [{"duration": "PT1H10M", "segments": [
				{"departure": {"iataCode": "CPH", "at": "2024-12-10T10:00:00"},
				 "arrival": {"iataCode": "BER", "at": "2024-12-10T11:10:00"}}
			]}]
		}
	]
}`

func TestMapDirectFlights_KeepsOnlyNonStopSingleSegment(t *testing.T) {
	flights, err := mapDirectFlights(decodeOffers(t, mixedOffers), "amadeus", testAirlines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(flights) != 2 {
		t.Fatalf("unexpected flight count: %d", len(flights))
	}

	sas := flights[0]
	if sas.ID != "1" || sas.Airline != "SAS" || sas.Price != 129.5 || sas.Currency != "EUR" {
		t.Fatalf("unexpected mapped flight: %+v", sas)
	}
	if sas.Duration != "PT1H10M" || sas.Provider != "amadeus" {
		t.Fatalf("unexpected mapped flight: %+v", sas)
	}
	if sas.DepartureTime.String() != "2024-12-10T18:00:00" || sas.ArrivalTime.String() != "2024-12-10T19:10:00" {
		t.Fatalf("unexpected times: %s %s", sas.DepartureTime, sas.ArrivalTime)
	}

	if flights[1].Airline != "XQ" || flights[1].Currency != "DKK" {
		t.Fatalf("unknown carrier should fall back to its code: %+v", flights[1])
	}
}

func TestMapDirectFlights_Failures(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{
			name:    "missing data",
			raw:     `{"errors": [{"status": 400}]}`,
			wantErr: ErrMissingData,
		},
		{
			name: "missing validating airline",
			raw: `{"data": [{"id": "1", "price": {"currency": "EUR", "total": "10.00"},
				"itineraries": [{"duration": "PT1H", "segments": [
				{"departure": {"iataCode": "CPH", "at": "2024-12-10T18:00:00"},
				 "arrival": {"iataCode": "BER", "at": "2024-12-10T19:00:00"}, "numberOfStops": 0}]}]}]}`,
			wantErr: ErrMissingAirline,
		},
		{
			name: "unparsable price",
			raw: `{"data": [{"id": "1", "validatingAirlineCodes": ["SK"], "price": {"currency": "EUR", "total": "n/a"},
				"itineraries": [{"duration": "PT1H", "segments": [
				{"departure": {"iataCode": "CPH", "at": "2024-12-10T18:00:00"},
				 "arrival": {"iataCode": "BER", "at": "2024-12-10T19:00:00"}, "numberOfStops": 0}]}]}]}`,
		},
		{
			name: "missing departure airport",
			raw: `{"data": [{"id": "1", "validatingAirlineCodes": ["SK"], "price": {"currency": "EUR", "total": "10.00"},
				"itineraries": [{"duration": "PT1H", "segments": [
				{"departure": {"at": "2024-12-10T18:00:00"},
				 "arrival": {"iataCode": "BER", "at": "2024-12-10T19:00:00"}, "numberOfStops": 0}]}]}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mapDirectFlights(decodeOffers(t, tt.raw), "amadeus", testAirlines)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}

	if _, err := mapDirectFlights(nil, "amadeus", testAirlines); !errors.Is(err, ErrMissingData) {
		t.Fatalf("expected ErrMissingData for nil response, got %v", err)
	}
}

func TestMapDirectFlights_EmptyDataIsNotAnError(t *testing.T) {
	flights, err := mapDirectFlights(decodeOffers(t, `{"data": []}`), "amadeus", testAirlines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if flights == nil || len(flights) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", flights)
	}
}
