package catalog

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/dharmasatrya/flyback/internal/catalog/data"
	"github.com/dharmasatrya/flyback/internal/models"
)

// Catalog resolves airline and airport codes to display names. Unknown
// codes resolve to themselves.
type Catalog struct {
	airlines map[string]string
	airports map[string]string
}

// Load builds a catalog from the embedded lookup tables.
func Load() (*Catalog, error) {
	var airlines map[string]string
	if err := json.Unmarshal(data.AirlineCodes, &airlines); err != nil {
		return nil, fmt.Errorf("decode airline codes: %w", err)
	}

	var airports map[string]string
	if err := json.Unmarshal(data.IATACodes, &airports); err != nil {
		return nil, fmt.Errorf("decode iata codes: %w", err)
	}

	return New(airlines, airports), nil
}

func New(airlines, airports map[string]string) *Catalog {
	c := &Catalog{
		airlines: make(map[string]string, len(airlines)),
		airports: make(map[string]string, len(airports)),
	}
	for code, name := range airlines {
		c.airlines[normalize(code)] = name
	}
	for code, city := range airports {
		c.airports[normalize(code)] = city
	}
	return c
}

func (c *Catalog) AirlineName(code string) string {
	if name, ok := c.airlines[normalize(code)]; ok {
		return name
	}
	return code
}

// AirlineNames lists distinct airline names in sorted order so a seeded
// generator picks the same airlines on every run.
func (c *Catalog) AirlineNames() []string {
	seen := make(map[string]bool, len(c.airlines))
	names := make([]string, 0, len(c.airlines))
	for _, name := range c.airlines {
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Catalog) CityName(code string) string {
	if city, ok := c.airports[normalize(code)]; ok {
		return city
	}
	return code
}

func (c *Catalog) HasAirport(code string) bool {
	_, ok := c.airports[normalize(code)]
	return ok
}

// Airports lists known airports ordered by city name.
func (c *Catalog) Airports() []models.Airport {
	out := make([]models.Airport, 0, len(c.airports))
	for code, city := range c.airports {
		out = append(out, models.Airport{Code: code, City: city})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].City != out[j].City {
			return out[i].City < out[j].City
		}
		return out[i].Code < out[j].Code
	})
	return out
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
