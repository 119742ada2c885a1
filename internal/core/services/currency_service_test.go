package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/shefra_converter/internal/apperrors"
	"github.com/SscSPs/shefra_converter/internal/core/domain"
	"github.com/SscSPs/shefra_converter/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencyService_GetCurrencyByCode(t *testing.T) {
	svc := services.NewCurrencyService()
	ctx := context.Background()

	currency, err := svc.GetCurrencyByCode(ctx, "nzd")
	require.NoError(t, err)
	assert.Equal(t, domain.NZD, currency.CurrencyCode)
	assert.Equal(t, "NZ$", currency.Symbol)

	currency, err = svc.GetCurrencyByCode(ctx, "XYZ")
	require.Error(t, err)
	assert.Nil(t, currency)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCurrencyService_ListCurrencies(t *testing.T) {
	list, err := services.NewCurrencyService().ListCurrencies(context.Background())

	require.NoError(t, err)
	assert.Len(t, list, 12)
	assert.Equal(t, domain.USD, list[0].CurrencyCode)
}
