package domain

import (
	"math"
	"time"
)

// RateTable maps a currency to the number of its units per one unit of the table's base.
type RateTable map[CurrencyCode]float64

// RateStatus tells callers whether a rate table came from the live quote service.
type RateStatus string

const (
	RateStatusLive     RateStatus = "live"
	RateStatusFallback RateStatus = "fallback"
)

// Rate returns the usable rate for code. Missing, non-positive and non-finite
// entries are reported as not found rather than as zero.
func (t RateTable) Rate(code CurrencyCode) (float64, bool) {
	r, ok := t[code]
	if !ok || !isUsableRate(r) {
		return 0, false
	}
	return r, true
}

// Clone returns an independent copy of the table.
func (t RateTable) Clone() RateTable {
	out := make(RateTable, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// Rebase re-expresses the table against base. It returns false when base has
// no usable rate in the table.
func (t RateTable) Rebase(base CurrencyCode) (RateTable, bool) {
	pivot, ok := t.Rate(base)
	if !ok {
		return nil, false
	}
	out := make(RateTable, len(t))
	for code, r := range t {
		if !isUsableRate(r) {
			continue
		}
		out[code] = r / pivot
	}
	out[base] = 1
	return out, true
}

// MissingCodes lists the supported currencies without a usable rate, in display order.
func (t RateTable) MissingCodes() []CurrencyCode {
	var missing []CurrencyCode
	for _, code := range SupportedCurrencyCodes() {
		if _, ok := t.Rate(code); !ok {
			missing = append(missing, code)
		}
	}
	return missing
}

func isUsableRate(r float64) bool {
	return r > 0 && !math.IsInf(r, 0) && !math.IsNaN(r)
}

// FallbackBase is the base currency of the embedded fallback table.
const FallbackBase = USD

// fallbackRates is the degraded-mode table, expressed against USD.
var fallbackRates = RateTable{
	USD: 1,
	EUR: 0.91,
	GBP: 0.78,
	JPY: 149.75,
	AUD: 1.51,
	CAD: 1.35,
	CHF: 0.87,
	CNY: 7.21,
	HKD: 7.82,
	NZD: 1.64,
	INR: 83.42,
	SGD: 1.33,
}

// FallbackRates returns a copy of the embedded USD-based fallback table.
func FallbackRates() RateTable {
	return fallbackRates.Clone()
}

// RateSnapshot is the result of one rate acquisition.
type RateSnapshot struct {
	Base      CurrencyCode `json:"base"`
	Rates     RateTable    `json:"rates"`
	Status    RateStatus   `json:"status"`
	UpdatedAt time.Time    `json:"updatedAt"` // as reported by the source; zero for fallback data
	FetchedAt time.Time    `json:"fetchedAt"`
	Token     uint64       `json:"token,omitempty"`
}

// IsLive reports whether the snapshot holds live data.
func (s RateSnapshot) IsLive() bool { return s.Status == RateStatusLive }

// LatestRates is the decoded payload of the remote quote service.
type LatestRates struct {
	Base      string
	UpdatedAt time.Time
	Rates     map[string]float64
}
