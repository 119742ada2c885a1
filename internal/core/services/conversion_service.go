package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/shefra_converter/internal/apperrors"
	"github.com/SscSPs/shefra_converter/internal/core/domain"
	portssvc "github.com/SscSPs/shefra_converter/internal/core/ports/services"
	"github.com/SscSPs/shefra_converter/internal/platform/metrics"
	"github.com/SscSPs/shefra_converter/internal/utils/conversion"
)

type conversionService struct {
	BaseService
	rates portssvc.RateProviderSvc
}

// NewConversionService creates the Shefra conversion service. rates is used by Quote.
func NewConversionService(rates portssvc.RateProviderSvc, m *metrics.Metrics) portssvc.ConversionSvc {
	return &conversionService{
		BaseService: BaseService{Metrics: m},
		rates:       rates,
	}
}

var _ portssvc.ConversionSvc = (*conversionService)(nil)

func (s *conversionService) ConvertToShefra(ctx context.Context, amount float64, from domain.CurrencyCode, rates domain.RateTable) domain.Conversion {
	conv := conversion.ConvertToShefra(conversion.SanitizeAmount(amount), from, rates)
	if conv.MissingRate {
		err := fmt.Errorf("%w: no %s rate for base %s", apperrors.ErrMissingRate, conversion.PivotCurrency, from)
		s.LogWarn(ctx, "Conversion degraded to zero",
			slog.String("error", err.Error()),
			slog.String("currency", string(from)),
			slog.Float64("amount", conv.Amount),
		)
	}
	if conv.OutOfRange {
		err := fmt.Errorf("%w: %g %s exceeds the convertible range", apperrors.ErrValidation, conv.Amount, from)
		s.LogWarn(ctx, "Conversion degraded to zero",
			slog.String("error", err.Error()),
			slog.String("currency", string(from)),
		)
	}
	s.Metrics.ObserveConversion(string(from), conv.MissingRate || conv.OutOfRange)
	return conv
}

func (s *conversionService) Quote(ctx context.Context, amount float64, from domain.CurrencyCode) (domain.Conversion, domain.RateSnapshot) {
	// Rates are always acquired with the source currency as base, which is
	// what makes amount * rates[INR] an INR amount.
	snapshot := s.rates.AcquireRates(ctx, from)
	if snapshot.Base != from {
		s.LogWarn(ctx, "Rate table base differs from source currency",
			slog.String("base", string(snapshot.Base)),
			slog.String("currency", string(from)),
		)
	}
	return s.ConvertToShefra(ctx, amount, from, snapshot.Rates), snapshot
}
