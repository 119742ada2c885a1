package repositories

import (
	"context"

	"github.com/SscSPs/shefra_converter/internal/core/domain"
)

// QuoteSource fetches the latest exchange rates from a remote quote service.
type QuoteSource interface {
	// FetchLatestRates performs a single request for rates based on base.
	// Any transport, status or payload failure is returned as an error.
	FetchLatestRates(ctx context.Context, base domain.CurrencyCode) (*domain.LatestRates, error)
}
