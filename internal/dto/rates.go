package dto

import (
	"time"

	"github.com/SscSPs/shefra_converter/internal/core/domain"
)

// RatesResponse describes one rate acquisition.
type RatesResponse struct {
	Base      string             `json:"base"`
	Status    string             `json:"status" enums:"live,fallback"`
	Rates     map[string]float64 `json:"rates"`
	UpdatedAt *time.Time         `json:"updatedAt,omitempty"` // only set for live data
	FetchedAt time.Time          `json:"fetchedAt"`
}

// ToRatesResponse converts a domain.RateSnapshot to RatesResponse DTO
func ToRatesResponse(snapshot domain.RateSnapshot) RatesResponse {
	rates := make(map[string]float64, len(snapshot.Rates))
	for code, r := range snapshot.Rates {
		rates[string(code)] = r
	}
	res := RatesResponse{
		Base:      string(snapshot.Base),
		Status:    string(snapshot.Status),
		Rates:     rates,
		FetchedAt: snapshot.FetchedAt,
	}
	if !snapshot.UpdatedAt.IsZero() {
		updated := snapshot.UpdatedAt
		res.UpdatedAt = &updated
	}
	return res
}
