package dto

import (
	"github.com/SscSPs/shefra_converter/internal/core/domain"
	"github.com/SscSPs/shefra_converter/internal/utils"
	"github.com/shopspring/decimal"
)

// Message types exchanged over a live session.
const (
	SessionMessageInput   = "input"
	SessionMessageRefresh = "refresh"

	SessionEventRatesUpdated     = "rates_updated"
	SessionEventShefraComputed   = "shefra_computed"
	SessionEventSuggestionsReady = "suggestions_ready"
	SessionEventError            = "error"
)

// SessionMessage is sent by the client.
type SessionMessage struct {
	Type     string          `json:"type"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency,omitempty"`
}

// SessionEvent is sent by the server. Payload is a RatesResponse, a
// ShefraComputed, a []CatalogItemResponse or an error string depending on Type.
type SessionEvent struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// ShefraComputed carries a conversion result to a live session.
type ShefraComputed struct {
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	ShefraAmount  float64 `json:"shefraAmount"`
	ShefraDisplay string  `json:"shefraDisplay"`
	MissingRate   bool    `json:"missingRate"`
	OutOfRange    bool    `json:"outOfRange"`
}

// NewRatesUpdatedEvent builds a rates_updated event.
func NewRatesUpdatedEvent(snapshot domain.RateSnapshot) SessionEvent {
	return SessionEvent{Type: SessionEventRatesUpdated, Payload: ToRatesResponse(snapshot)}
}

// NewShefraComputedEvent builds a shefra_computed event.
func NewShefraComputedEvent(conv domain.Conversion) SessionEvent {
	return SessionEvent{
		Type:    SessionEventShefraComputed,
		Payload: ShefraComputed{
			Amount:        conv.Amount,
			Currency:      string(conv.Currency),
			ShefraAmount:  conv.Shefras,
			ShefraDisplay: utils.FormatShefras(conv.Shefras),
			MissingRate:   conv.MissingRate,
			OutOfRange:    conv.OutOfRange,
		},
	}
}

// NewSuggestionsReadyEvent builds a suggestions_ready event. An empty list is
// still sent so the client can clear stale suggestions.
func NewSuggestionsReadyEvent(items []domain.CatalogItem) SessionEvent {
	return SessionEvent{Type: SessionEventSuggestionsReady, Payload: ToListCatalogItemResponse(items)}
}

// NewSessionErrorEvent reports a rejected client message.
func NewSessionErrorEvent(msg string) SessionEvent {
	return SessionEvent{Type: SessionEventError, Payload: msg}
}
