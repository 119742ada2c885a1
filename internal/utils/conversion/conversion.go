package conversion

import (
	"math"

	"github.com/SscSPs/shefra_converter/internal/core/domain"
)

// ShefraRate is the number of Indian Rupees in one Shefra.
const ShefraRate = 140.0

// PivotCurrency is the currency every conversion into Shefras passes through.
const PivotCurrency = domain.INR

// ConvertCurrency converts amount from one currency to another using rates.
// The table must be based on the source currency, which is why the result is
// amount * rates[to]. A table without a usable rate for the target yields 0.
func ConvertCurrency(amount float64, from, to domain.CurrencyCode, rates domain.RateTable) float64 {
	rate, ok := rates.Rate(to)
	if !ok {
		return 0
	}
	if from == to {
		return amount
	}
	return amount * rate
}

// ConvertToShefra converts amount in the source currency into Shefras via INR.
// MissingRate is set when the result is zero only because the INR rate was absent.
// OutOfRange is set when amount times the INR rate does not fit in a float64;
// the result is then zero as well.
func ConvertToShefra(amount float64, from domain.CurrencyCode, rates domain.RateTable) domain.Conversion {
	_, hasPivot := rates.Rate(PivotCurrency)
	inr := ConvertCurrency(amount, from, PivotCurrency, rates)
	conv := domain.Conversion{
		Amount:      amount,
		Currency:    from,
		INRAmount:   inr,
		Shefras:     inr / ShefraRate,
		MissingRate: !hasPivot && amount != 0,
	}
	if !isFinite(conv.INRAmount) || !isFinite(conv.Shefras) {
		conv.INRAmount = 0
		conv.Shefras = 0
		conv.OutOfRange = true
	}
	return conv
}

// IsConvertible reports whether amount is a finite number that ConvertToShefra accepts as is.
func IsConvertible(amount float64) bool {
	return isFinite(amount) && amount >= 0
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// SanitizeAmount clamps user input to a non-negative finite number.
func SanitizeAmount(amount float64) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return 0
	}
	return amount
}
