package ranking

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidPriceKey = errors.New("price key must be a non-negative number")

// Priced is implemented by anything ordered on price.
type Priced interface {
	PriceKey() float64
}

// SortByPrice returns a copy of items ordered by ascending PriceKey.
func SortByPrice[T Priced](items []T) ([]T, error) {
	return SortBy(items, func(item T) float64 { return item.PriceKey() })
}

// SortBy returns a copy of items in ascending key order. Equal keys keep
// their input order. The input slice is left untouched.
//
// Result sets are a handful of offers per leg, so a plain insertion sort is
// used.
func SortBy[T any](items []T, key func(T) float64) ([]T, error) {
	keys := make([]float64, len(items))
	for i, item := range items {
		k := key(item)
		if math.IsNaN(k) || k < 0 {
			return nil, fmt.Errorf("item %d: %w", i, ErrInvalidPriceKey)
		}
		keys[i] = k
	}

	sorted := make([]T, len(items))
	copy(sorted, items)

	for i := 1; i < len(sorted); i++ {
		item, k := sorted[i], keys[i]
		j := i - 1
		for j >= 0 && keys[j] > k {
			sorted[j+1], keys[j+1] = sorted[j], keys[j]
			j--
		}
		sorted[j+1], keys[j+1] = item, k
	}

	return sorted, nil
}
