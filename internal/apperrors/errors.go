package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrRatesUnavailable indicates that live exchange rates could not be acquired.
// Callers recover from it by switching to the fallback rate table.
var ErrRatesUnavailable = errors.New("exchange rates unavailable")

// ErrMissingRate indicates that a rate table has no usable entry for a currency.
var ErrMissingRate = errors.New("exchange rate missing from table")
