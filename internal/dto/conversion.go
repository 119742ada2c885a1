package dto

import (
	"github.com/SscSPs/shefra_converter/internal/core/domain"
	"github.com/SscSPs/shefra_converter/internal/utils"
	"github.com/shopspring/decimal"
)

// ConversionRequest defines the input of a Shefra conversion.
// Amount accepts a JSON number or a numeric string.
type ConversionRequest struct {
	Amount   decimal.Decimal `json:"amount" swaggertype:"number"`
	Currency string          `json:"currency" binding:"required,supported_currency"`
}

// ConversionResponse is the result of a conversion together with its suggestions.
type ConversionResponse struct {
	Amount        float64               `json:"amount"`
	Currency      string                `json:"currency"`
	INRAmount     float64               `json:"inrAmount"`
	ShefraAmount  float64               `json:"shefraAmount"`
	ShefraDisplay string                `json:"shefraDisplay"`
	RateStatus    string                `json:"rateStatus" enums:"live,fallback"`
	MissingRate   bool                  `json:"missingRate"`
	OutOfRange    bool                  `json:"outOfRange"`
	Suggestions   []CatalogItemResponse `json:"suggestions"`
}

// ToConversionResponse assembles the response of a conversion.
func ToConversionResponse(conv domain.Conversion, snapshot domain.RateSnapshot, suggestions []domain.CatalogItem) ConversionResponse {
	return ConversionResponse{
		Amount:        conv.Amount,
		Currency:      string(conv.Currency),
		INRAmount:     conv.INRAmount,
		ShefraAmount:  conv.Shefras,
		ShefraDisplay: utils.FormatShefras(conv.Shefras),
		RateStatus:    string(snapshot.Status),
		MissingRate:   conv.MissingRate,
		OutOfRange:    conv.OutOfRange,
		Suggestions:   ToListCatalogItemResponse(suggestions),
	}
}
