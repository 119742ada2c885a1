package services

import (
	"context"

	"github.com/SscSPs/shefra_converter/internal/core/domain"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific supported currency by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all supported currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
}

// RateProviderSvc acquires rate tables for a base currency.
type RateProviderSvc interface {
	// AcquireRates always returns a usable snapshot. Status reports whether
	// live data or the fallback table is in use.
	AcquireRates(ctx context.Context, base domain.CurrencyCode) domain.RateSnapshot
}
