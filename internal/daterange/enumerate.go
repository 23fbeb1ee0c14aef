package daterange

import (
	"github.com/dharmasatrya/flyback/internal/datetime"
	"github.com/dharmasatrya/flyback/internal/models"
)

// Enumerate walks every date in [start, end] and pairs each departure
// weekday with the next return weekday on or after it. Pairs whose return
// falls after end are skipped. Equal weekdays give same-day pairs.
func Enumerate(departure, ret datetime.Weekday, start, end datetime.Date) []models.DatePair {
	pairs := make([]models.DatePair, 0)
	if !departure.Valid() || !ret.Valid() {
		return pairs
	}

	offset := departure.DaysUntil(ret)
	for d := start; !d.After(end); d = d.AddDays(1) {
		if d.Weekday() != departure {
			continue
		}
		back := d.AddDays(offset)
		if back.After(end) {
			continue
		}
		pairs = append(pairs, models.DatePair{Departure: d, Return: back})
	}

	return pairs
}
