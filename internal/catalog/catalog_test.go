package catalog

import (
	"sort"
	"testing"
)

func TestLoad_EmbeddedTables(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := c.AirlineName("SK"); got != "SAS" {
		t.Fatalf("unexpected airline name: %s", got)
	}
	if got := c.CityName("cph"); got != "Copenhagen" {
		t.Fatalf("unexpected city name: %s", got)
	}
	if !c.HasAirport("BER") {
		t.Fatal("expected BER to be a known airport")
	}
	if len(c.AirlineNames()) == 0 {
		t.Fatal("expected airline names")
	}
}

func TestCatalog_UnknownCodesPassThrough(t *testing.T) {
	c := New(map[string]string{"SK": "SAS"}, map[string]string{"CPH": "Copenhagen"})

	if got := c.AirlineName("ZZ"); got != "ZZ" {
		t.Fatalf("unexpected airline fallback: %s", got)
	}
	if got := c.CityName("XYZ"); got != "XYZ" {
		t.Fatalf("unexpected city fallback: %s", got)
	}
	if c.HasAirport("XYZ") {
		t.Fatal("XYZ should be unknown")
	}
}

func TestCatalog_AirlineNamesSortedAndDistinct(t *testing.T) {
	c := New(map[string]string{
		"U2": "easyJet",
		"EC": "easyJet",
		"FR": "Ryanair",
		"SK": "SAS",
	}, nil)

	names := c.AirlineNames()
	if len(names) != 3 {
		t.Fatalf("unexpected names: %v", names)
	}
	if !sort.StringsAreSorted(names) {
		t.Fatalf("names are not sorted: %v", names)
	}
}

func TestCatalog_AirportsOrderedByCity(t *testing.T) {
	c := New(nil, map[string]string{
		"OSL": "Oslo",
		"BER": "Berlin",
		"CPH": "Copenhagen",
	})

	got := c.Airports()
	want := []string{"BER", "CPH", "OSL"}
	for i, a := range got {
		if a.Code != want[i] {
			t.Fatalf("unexpected order: %+v", got)
		}
	}
}
