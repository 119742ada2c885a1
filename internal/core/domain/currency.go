package domain

import "strings"

// CurrencyCode identifies one of the currencies the converter accepts.
type CurrencyCode string

const (
	USD CurrencyCode = "USD"
	EUR CurrencyCode = "EUR"
	GBP CurrencyCode = "GBP"
	JPY CurrencyCode = "JPY"
	AUD CurrencyCode = "AUD"
	CAD CurrencyCode = "CAD"
	CHF CurrencyCode = "CHF"
	CNY CurrencyCode = "CNY"
	HKD CurrencyCode = "HKD"
	NZD CurrencyCode = "NZD"
	INR CurrencyCode = "INR"
	SGD CurrencyCode = "SGD"
)

// Currency represents a supported currency in the domain.
type Currency struct {
	CurrencyCode CurrencyCode `json:"currencyCode"` // e.g., "USD"
	Symbol       string       `json:"symbol"`       // e.g., "$"
	Name         string       `json:"name"`         // e.g., "US Dollar"
}

// supportedCurrencies is kept in display order.
var supportedCurrencies = []Currency{
	{CurrencyCode: USD, Symbol: "$", Name: "US Dollar"},
	{CurrencyCode: EUR, Symbol: "€", Name: "Euro"},
	{CurrencyCode: GBP, Symbol: "£", Name: "British Pound"},
	{CurrencyCode: JPY, Symbol: "¥", Name: "Japanese Yen"},
	{CurrencyCode: AUD, Symbol: "A$", Name: "Australian Dollar"},
	{CurrencyCode: CAD, Symbol: "C$", Name: "Canadian Dollar"},
	{CurrencyCode: CHF, Symbol: "Fr", Name: "Swiss Franc"},
	{CurrencyCode: CNY, Symbol: "¥", Name: "Chinese Yuan"},
	{CurrencyCode: HKD, Symbol: "HK$", Name: "Hong Kong Dollar"},
	{CurrencyCode: NZD, Symbol: "NZ$", Name: "New Zealand Dollar"},
	{CurrencyCode: INR, Symbol: "₹", Name: "Indian Rupee"},
	{CurrencyCode: SGD, Symbol: "S$", Name: "Singapore Dollar"},
}

// SupportedCurrencies returns a copy of the supported currencies in display order.
func SupportedCurrencies() []Currency {
	out := make([]Currency, len(supportedCurrencies))
	copy(out, supportedCurrencies)
	return out
}

// SupportedCurrencyCodes returns the codes of all supported currencies in display order.
func SupportedCurrencyCodes() []CurrencyCode {
	codes := make([]CurrencyCode, len(supportedCurrencies))
	for i, c := range supportedCurrencies {
		codes[i] = c.CurrencyCode
	}
	return codes
}

// IsSupported reports whether the code belongs to the supported set.
func (c CurrencyCode) IsSupported() bool {
	_, ok := LookupCurrency(c)
	return ok
}

func (c CurrencyCode) String() string { return string(c) }

// LookupCurrency returns the currency metadata for a code.
func LookupCurrency(code CurrencyCode) (Currency, bool) {
	for _, c := range supportedCurrencies {
		if c.CurrencyCode == code {
			return c, true
		}
	}
	return Currency{}, false
}

// ParseCurrencyCode normalises s (trim, upper-case) and checks it against the supported set.
func ParseCurrencyCode(s string) (CurrencyCode, bool) {
	code := CurrencyCode(strings.ToUpper(strings.TrimSpace(s)))
	if !code.IsSupported() {
		return "", false
	}
	return code, true
}
