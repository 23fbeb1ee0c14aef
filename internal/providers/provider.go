package providers

import (
	"context"

	"github.com/dharmasatrya/flyback/internal/models"
)

// OfferSource fetches raw flight offers for one leg.
type OfferSource interface {
	Name() string
	FetchOffers(ctx context.Context, q models.LegQuery) (*OfferResponse, error)
}

// LegSource returns ready-made flights for one leg.
type LegSource interface {
	SearchDirect(ctx context.Context, q models.LegQuery) ([]models.Flight, error)
}

// AirlineNamer resolves carrier codes to display names.
type AirlineNamer interface {
	AirlineName(code string) string
}

type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return e.Provider + ": " + e.Err.Error()
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func NewProviderError(provider string, err error) *ProviderError {
	return &ProviderError{
		Provider: provider,
		Err:      err,
	}
}
