package handlers

import (
	"fmt"

	"github.com/SscSPs/shefra_converter/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// supportedCurrencyTag validates a string field against the supported currency codes.
const supportedCurrencyTag = "supported_currency"

// RegisterValidators installs the custom binding tags on gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return v.RegisterValidation(supportedCurrencyTag, validateSupportedCurrency)
}

func validateSupportedCurrency(fl validator.FieldLevel) bool {
	_, ok := domain.ParseCurrencyCode(fl.Field().String())
	return ok
}
