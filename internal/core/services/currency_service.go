package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/shefra_converter/internal/apperrors"
	"github.com/SscSPs/shefra_converter/internal/core/domain"
	portssvc "github.com/SscSPs/shefra_converter/internal/core/ports/services"
)

type currencyService struct {
	BaseService
}

// NewCurrencyService creates a service over the fixed set of supported currencies.
func NewCurrencyService() portssvc.CurrencySvcFacade {
	return &currencyService{}
}

func (s *currencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	code, ok := domain.ParseCurrencyCode(currencyCode)
	if !ok {
		return nil, fmt.Errorf("%w: currency '%s' is not supported", apperrors.ErrNotFound, currencyCode)
	}
	currency, _ := domain.LookupCurrency(code)
	return &currency, nil
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	return domain.SupportedCurrencies(), nil
}
