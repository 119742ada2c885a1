package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/shefra_converter/internal/apperrors"
	"github.com/SscSPs/shefra_converter/internal/core/domain"
	portsrepo "github.com/SscSPs/shefra_converter/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/shefra_converter/internal/core/ports/services"
	"github.com/SscSPs/shefra_converter/internal/platform/metrics"
)

// DefaultFetchTimeout bounds a single live acquisition.
const DefaultFetchTimeout = 8 * time.Second

type rateProviderService struct {
	BaseService
	source  portsrepo.QuoteSource
	timeout time.Duration
	now     func() time.Time
}

// RateProviderOption is a functional option for configuring the rate provider
type RateProviderOption func(*rateProviderService)

// WithFetchTimeout sets the deadline of each live acquisition.
func WithFetchTimeout(d time.Duration) RateProviderOption {
	return func(s *rateProviderService) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithRateMetrics records acquisitions in m.
func WithRateMetrics(m *metrics.Metrics) RateProviderOption {
	return func(s *rateProviderService) {
		s.Metrics = m
	}
}

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) RateProviderOption {
	return func(s *rateProviderService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewRateProviderService creates a fetch-or-fallback rate provider over source.
func NewRateProviderService(source portsrepo.QuoteSource, options ...RateProviderOption) portssvc.RateProviderSvc {
	svc := &rateProviderService{
		source:  source,
		timeout: DefaultFetchTimeout,
		now:     time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.RateProviderSvc = (*rateProviderService)(nil)

// AcquireRates makes exactly one live attempt and otherwise serves the fallback table.
func (s *rateProviderService) AcquireRates(ctx context.Context, base domain.CurrencyCode) domain.RateSnapshot {
	start := s.now()
	logger := s.GetLogger(ctx).With(slog.String("base", string(base)))

	snapshot, err := s.fetchLive(ctx, base)
	if err != nil {
		if ctx.Err() != nil {
			logger.Debug("Rate acquisition abandoned", slog.String("reason", ctx.Err().Error()))
		} else {
			logger.Warn("Live rates unavailable, using fallback table", slog.String("error", err.Error()))
		}
		snapshot = FallbackSnapshot(base, s.now())
	} else {
		logger.Debug("Live rates acquired", slog.Time("updated_at", snapshot.UpdatedAt))
	}

	s.Metrics.ObserveRateAcquisition(string(snapshot.Base), string(snapshot.Status), s.now().Sub(start))
	return snapshot
}

func (s *rateProviderService) fetchLive(ctx context.Context, base domain.CurrencyCode) (domain.RateSnapshot, error) {
	if !base.IsSupported() {
		return domain.RateSnapshot{}, fmt.Errorf("%w: unsupported base currency '%s'", apperrors.ErrValidation, base)
	}
	if s.source == nil {
		return domain.RateSnapshot{}, fmt.Errorf("%w: no quote source configured", apperrors.ErrRatesUnavailable)
	}

	fetchCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	latest, err := s.source.FetchLatestRates(fetchCtx, base)
	if err != nil {
		return domain.RateSnapshot{}, err
	}
	if latest == nil {
		return domain.RateSnapshot{}, fmt.Errorf("%w: empty response", apperrors.ErrRatesUnavailable)
	}

	table, err := ValidateLatestRates(base, latest)
	if err != nil {
		return domain.RateSnapshot{}, err
	}
	return domain.RateSnapshot{
		Base:      base,
		Rates:     table,
		Status:    domain.RateStatusLive,
		UpdatedAt: latest.UpdatedAt,
		FetchedAt: s.now(),
	}, nil
}

// ValidateLatestRates checks a live payload against base and the supported
// currencies and returns the rate table restricted to those currencies.
func ValidateLatestRates(base domain.CurrencyCode, latest *domain.LatestRates) (domain.RateTable, error) {
	if latest.Base == "" {
		return nil, fmt.Errorf("%w: payload has no base field", apperrors.ErrRatesUnavailable)
	}
	if !strings.EqualFold(latest.Base, string(base)) {
		return nil, fmt.Errorf("%w: payload base '%s' does not match requested '%s'", apperrors.ErrRatesUnavailable, latest.Base, base)
	}

	table := make(domain.RateTable, len(domain.SupportedCurrencyCodes()))
	for code, rate := range latest.Rates {
		if c := domain.CurrencyCode(strings.ToUpper(code)); c.IsSupported() {
			table[c] = rate
		}
	}
	// The base currency may be left implicit by the source.
	if _, ok := table[base]; !ok {
		table[base] = 1
	}

	if missing := table.MissingCodes(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: payload lacks usable rates for %v", apperrors.ErrRatesUnavailable, missing)
	}
	return table, nil
}

// FallbackSnapshot builds the degraded-mode snapshot for base. The embedded
// table is USD based; other bases get it rebased so that the snapshot's base
// always matches the requested currency.
func FallbackSnapshot(base domain.CurrencyCode, now time.Time) domain.RateSnapshot {
	table := domain.FallbackRates()
	snapshotBase := domain.FallbackBase
	if base != domain.FallbackBase {
		if rebased, ok := table.Rebase(base); ok {
			table = rebased
			snapshotBase = base
		}
	}
	return domain.RateSnapshot{
		Base:      snapshotBase,
		Rates:     table,
		Status:    domain.RateStatusFallback,
		FetchedAt: now,
	}
}
