package models

import (
	"strings"

	"github.com/dharmasatrya/flyback/internal/datetime"
)

// LegQuery identifies one one-way lookup against a flight source.
type LegQuery struct {
	Origin      string        `json:"origin" validate:"required,len=3"`
	Destination string        `json:"destination" validate:"required,len=3"`
	Date        datetime.Date `json:"date"`
	Passengers  int           `json:"passengers" validate:"gt=0"`
}

func (q LegQuery) Validate() error {
	if err := validateStruct(q); err != nil {
		return err
	}
	if q.Date.IsZero() {
		return NewValidationError("date", "is required")
	}
	return nil
}

type BasicSearch struct {
	Origin           string              `json:"origin" validate:"required,len=3"`
	Destination      string              `json:"destination" validate:"required,len=3"`
	DepartureDate    datetime.Date       `json:"departure_date"`
	ReturnDate       *datetime.Date      `json:"return_date,omitempty"`
	Passengers       int                 `json:"passengers" validate:"gt=0"`
	MinDepartureTime *datetime.TimeOfDay `json:"min_departure_time,omitempty"`
	MaxArrivalTime   *datetime.TimeOfDay `json:"max_arrival_time,omitempty"`
}

func (r *BasicSearch) Normalize() {
	r.Origin = normalizeCode(r.Origin)
	r.Destination = normalizeCode(r.Destination)
}

func (r BasicSearch) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	if r.DepartureDate.IsZero() {
		return NewValidationError("departure_date", "is required")
	}
	if r.ReturnDate != nil && r.ReturnDate.Before(r.DepartureDate) {
		return NewValidationError("return_date", "must not be before departure_date")
	}
	if r.MinDepartureTime != nil && !r.MinDepartureTime.Valid() {
		return NewValidationError("min_departure_time", "is out of range")
	}
	if r.MaxArrivalTime != nil && !r.MaxArrivalTime.Valid() {
		return NewValidationError("max_arrival_time", "is out of range")
	}
	return nil
}

func (r BasicSearch) Outbound() LegQuery {
	return LegQuery{
		Origin:      r.Origin,
		Destination: r.Destination,
		Date:        r.DepartureDate,
		Passengers:  r.Passengers,
	}
}

// Inbound reports false when no return date was requested.
func (r BasicSearch) Inbound() (LegQuery, bool) {
	if r.ReturnDate == nil {
		return LegQuery{}, false
	}
	return LegQuery{
		Origin:      r.Destination,
		Destination: r.Origin,
		Date:        *r.ReturnDate,
		Passengers:  r.Passengers,
	}, true
}

type WeekdaySearch struct {
	Origin           string           `json:"origin" validate:"required,len=3"`
	Destination      string           `json:"destination" validate:"required,len=3"`
	Passengers       int              `json:"passengers" validate:"gt=0"`
	DepartureWeekday datetime.Weekday `json:"departure_weekday" validate:"required,min=1,max=7"`
	ReturnWeekday    datetime.Weekday `json:"return_weekday" validate:"required,min=1,max=7"`
	MinDate          datetime.Date    `json:"min_date"`
	MaxDate          datetime.Date    `json:"max_date"`
}

func (r *WeekdaySearch) Normalize() {
	r.Origin = normalizeCode(r.Origin)
	r.Destination = normalizeCode(r.Destination)
}

func (r WeekdaySearch) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	if r.MinDate.IsZero() {
		return NewValidationError("min_date", "is required")
	}
	if r.MaxDate.IsZero() {
		return NewValidationError("max_date", "is required")
	}
	if r.MaxDate.Before(r.MinDate) {
		return NewValidationError("max_date", "must not be before min_date")
	}
	return nil
}

// Legs returns the outbound and return lookups for one date pair.
func (r WeekdaySearch) Legs(pair DatePair) (LegQuery, LegQuery) {
	outbound := LegQuery{
		Origin:      r.Origin,
		Destination: r.Destination,
		Date:        pair.Departure,
		Passengers:  r.Passengers,
	}
	inbound := LegQuery{
		Origin:      r.Destination,
		Destination: r.Origin,
		Date:        pair.Return,
		Passengers:  r.Passengers,
	}
	return outbound, inbound
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
