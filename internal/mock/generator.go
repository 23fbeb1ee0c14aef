package mock

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dharmasatrya/flyback/internal/datetime"
	"github.com/dharmasatrya/flyback/internal/models"
	"github.com/dharmasatrya/flyback/internal/ranking"
)

const (
	ProviderName = "mock"
	Currency     = "EUR"

	maxFlights    = 5
	minutesPerDay = 24 * 60
	minHours      = 1
	maxHours      = 8
	minPrice      = 100.0
	maxPrice      = 600.0
)

var ErrNoAirlines = errors.New("mock generator needs at least one airline")

// RandSource is the subset of *rand.Rand the generator draws from.
type RandSource interface {
	Intn(n int) int
	Float64() float64
}

// NewSeededSource returns a reproducible source. A zero seed is replaced by
// the current time.
func NewSeededSource(seed int64) RandSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Generator produces plausible direct flights without calling a provider.
type Generator struct {
	mu       sync.Mutex
	rng      RandSource
	airlines []string
	log      *zap.Logger
}

func NewGenerator(rng RandSource, airlines []string, log *zap.Logger) (*Generator, error) {
	if len(airlines) == 0 {
		return nil, ErrNoAirlines
	}
	if rng == nil {
		rng = NewSeededSource(0)
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Generator{
		rng:      rng,
		airlines: append([]string(nil), airlines...),
		log:      log,
	}, nil
}

type draft struct {
	departOffset int
	hours        int
	minutes      int
	price        float64
	airline      string
}

// Generate returns between zero and five flights for the route on date,
// ordered by ascending price.
func (g *Generator) Generate(origin, destination string, date datetime.Date) ([]models.Flight, error) {
	leg := models.LegQuery{Origin: origin, Destination: destination, Date: date, Passengers: 1}
	if err := leg.Validate(); err != nil {
		return nil, err
	}

	drafts := g.draw()

	flights := make([]models.Flight, 0, len(drafts))
	for i, d := range drafts {
		departure := date.At(time.Duration(d.departOffset) * time.Minute)
		arrival := departure.Add(time.Duration(d.hours)*time.Hour + time.Duration(d.minutes)*time.Minute)

		f, err := models.NewFlight(models.FlightInput{
			ID:            flightID(origin, destination, departure, i),
			Provider:      ProviderName,
			Origin:        origin,
			Destination:   destination,
			DepartureTime: departure.String(),
			ArrivalTime:   arrival.String(),
			Airline:       d.airline,
			Price:         d.price,
			Currency:      Currency,
			Duration:      fmt.Sprintf("PT%dH%dM", d.hours, d.minutes),
		})
		if err != nil {
			return nil, fmt.Errorf("build mock flight: %w", err)
		}
		flights = append(flights, f)
	}

	g.log.Debug("generated mock flights",
		zap.String("origin", origin),
		zap.String("destination", destination),
		zap.String("date", date.String()),
		zap.Int("count", len(flights)),
	)

	return ranking.SortByPrice(flights)
}

// SearchDirect lets the generator stand in for a live flight source.
func (g *Generator) SearchDirect(ctx context.Context, q models.LegQuery) ([]models.Flight, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return g.Generate(q.Origin, q.Destination, q.Date)
}

func (g *Generator) draw() []draft {
	g.mu.Lock()
	defer g.mu.Unlock()

	count := g.rng.Intn(maxFlights + 1)
	drafts := make([]draft, count)
	for i := range drafts {
		drafts[i] = draft{
			departOffset: g.rng.Intn(minutesPerDay),
			hours:        minHours + g.rng.Intn(maxHours-minHours+1),
			minutes:      g.rng.Intn(60),
			price:        models.RoundPrice(minPrice + g.rng.Float64()*(maxPrice-minPrice)),
			airline:      g.airlines[g.rng.Intn(len(g.airlines))],
		}
	}
	return drafts
}

func flightID(origin, destination string, departure datetime.Local, seq int) string {
	name := fmt.Sprintf("%s-%s-%s-%d", origin, destination, departure, seq)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
}
