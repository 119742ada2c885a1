package repositories

import (
	"context"

	"github.com/SscSPs/shefra_converter/internal/core/domain"
)

// CatalogReader defines read operations for the suggestion catalog.
type CatalogReader interface {
	// ListItems returns every catalog item in declaration order.
	ListItems(ctx context.Context) ([]domain.CatalogItem, error)
}
