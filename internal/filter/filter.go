package filter

import (
	"github.com/dharmasatrya/flyback/internal/datetime"
	"github.com/dharmasatrya/flyback/internal/models"
)

// Window bounds flights by local time of day. Nil bounds are not applied.
type Window struct {
	DepartFrom *datetime.TimeOfDay
	ArriveBy   *datetime.TimeOfDay
}

func (w Window) IsZero() bool {
	return w.DepartFrom == nil && w.ArriveBy == nil
}

// Apply keeps flights inside w, preserving their order.
func Apply(flights []models.Flight, w Window) []models.Flight {
	if w.IsZero() {
		return flights
	}

	result := make([]models.Flight, 0, len(flights))
	for _, f := range flights {
		if matchesWindow(f, w) {
			result = append(result, f)
		}
	}

	return result
}

// DepartingFrom keeps flights leaving at or after from.
func DepartingFrom(flights []models.Flight, from datetime.TimeOfDay) []models.Flight {
	return Apply(flights, Window{DepartFrom: &from})
}

// ArrivingBy keeps flights landing at or before by.
func ArrivingBy(flights []models.Flight, by datetime.TimeOfDay) []models.Flight {
	return Apply(flights, Window{ArriveBy: &by})
}

func matchesWindow(f models.Flight, w Window) bool {
	if w.DepartFrom != nil && f.DepartureTime.Clock() < *w.DepartFrom {
		return false
	}
	// Only the clock is compared, so an overnight arrival at 01:00 passes an
	// 18:00 bound.
	if w.ArriveBy != nil && f.ArrivalTime.Clock() > *w.ArriveBy {
		return false
	}
	return true
}
