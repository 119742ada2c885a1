package services

import (
	"context"

	"github.com/SscSPs/shefra_converter/internal/core/domain"
)

// ConversionSvc turns amounts into Shefras.
type ConversionSvc interface {
	// ConvertToShefra converts amount using a table based on the source currency.
	ConvertToShefra(ctx context.Context, amount float64, from domain.CurrencyCode, rates domain.RateTable) domain.Conversion

	// Quote acquires rates for the source currency and converts amount with them.
	Quote(ctx context.Context, amount float64, from domain.CurrencyCode) (domain.Conversion, domain.RateSnapshot)
}

// SuggestionSvc ranks catalog items by affordability.
type SuggestionSvc interface {
	// Suggest returns at most five affordable items, most expensive first.
	Suggest(ctx context.Context, shefras float64) ([]domain.CatalogItem, error)

	// Catalog returns the full catalog in declaration order.
	Catalog(ctx context.Context) ([]domain.CatalogItem, error)
}
