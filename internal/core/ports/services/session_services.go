package services

import (
	"context"

	"github.com/SscSPs/shefra_converter/internal/core/domain"
)

// SessionListener receives the outcome of each session cycle.
// Calls for one session are made from a single goroutine at a time.
type SessionListener interface {
	OnRatesUpdated(snapshot domain.RateSnapshot)
	OnShefraComputed(conv domain.Conversion)
	OnSuggestionsReady(items []domain.CatalogItem)
}

// Session drives the acquire, convert, rank cycle for one presentation client.
type Session interface {
	// OnAmountOrCurrencyChange starts a new cycle for the given input.
	OnAmountOrCurrencyChange(ctx context.Context, amount float64, currency domain.CurrencyCode)

	// OnRefreshRequested starts a new cycle for the last input, forcing a new acquisition.
	OnRefreshRequested(ctx context.Context)

	// Close cancels any in-flight acquisition and waits for it to stop.
	Close()
}

// SessionFactory creates sessions bound to a listener.
type SessionFactory interface {
	NewSession(listener SessionListener) Session
}
