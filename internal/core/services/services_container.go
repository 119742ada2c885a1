package services

import (
	portsrepo "github.com/SscSPs/shefra_converter/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/shefra_converter/internal/core/ports/services"
	"github.com/SscSPs/shefra_converter/internal/platform/config"
	"github.com/SscSPs/shefra_converter/internal/platform/metrics"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, m *metrics.Metrics) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService()

	// Rate provider first since conversion and sessions depend on it
	container.RateProvider = NewRateProviderService(
		repos.QuoteSource,
		WithFetchTimeout(cfg.RatesFetchTimeout),
		WithRateMetrics(m),
	)
	container.Conversion = NewConversionService(container.RateProvider, m)
	container.Suggestion = NewSuggestionService(repos.CatalogRepo, m)
	container.Session = NewSessionFactory(container.RateProvider, container.Conversion, container.Suggestion, m)

	return container
}
