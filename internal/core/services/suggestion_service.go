package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/shefra_converter/internal/core/domain"
	portsrepo "github.com/SscSPs/shefra_converter/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/shefra_converter/internal/core/ports/services"
	"github.com/SscSPs/shefra_converter/internal/platform/metrics"
	"github.com/SscSPs/shefra_converter/internal/utils/ranking"
)

type suggestionService struct {
	BaseService
	catalog portsrepo.CatalogReader
}

// NewSuggestionService creates the affordability ranking service.
func NewSuggestionService(catalog portsrepo.CatalogReader, m *metrics.Metrics) portssvc.SuggestionSvc {
	return &suggestionService{
		BaseService: BaseService{Metrics: m},
		catalog:     catalog,
	}
}

var _ portssvc.SuggestionSvc = (*suggestionService)(nil)

func (s *suggestionService) Suggest(ctx context.Context, shefras float64) ([]domain.CatalogItem, error) {
	items, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	ranked := ranking.RankSuggestions(shefras, items)
	s.Metrics.ObserveSuggestions(len(ranked))
	return ranked, nil
}

func (s *suggestionService) Catalog(ctx context.Context) ([]domain.CatalogItem, error) {
	items, err := s.catalog.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog items: %w", err)
	}
	return items, nil
}
