package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/shefra_converter/internal/core/domain"
	portssvc "github.com/SscSPs/shefra_converter/internal/core/ports/services"
	"github.com/SscSPs/shefra_converter/internal/dto"
	"github.com/SscSPs/shefra_converter/internal/middleware"
	"github.com/SscSPs/shefra_converter/internal/utils"
	"github.com/SscSPs/shefra_converter/internal/utils/conversion"
	"github.com/gin-gonic/gin"
)

// conversionHandler handles HTTP requests for Shefra conversions.
type conversionHandler struct {
	conversionService portssvc.ConversionSvc
	suggestionService portssvc.SuggestionSvc
	posthogClient     *utils.PosthogClientWrapper
}

func newConversionHandler(cs portssvc.ConversionSvc, ss portssvc.SuggestionSvc, posthogClient *utils.PosthogClientWrapper) *conversionHandler {
	return &conversionHandler{
		conversionService: cs,
		suggestionService: ss,
		posthogClient:     posthogClient,
	}
}

// registerConversionRoutes registers routes related to conversions.
func registerConversionRoutes(rg *gin.RouterGroup, cs portssvc.ConversionSvc, ss portssvc.SuggestionSvc, posthogClient *utils.PosthogClientWrapper) {
	h := newConversionHandler(cs, ss, posthogClient)

	conversions := rg.Group("/conversions")
	{
		conversions.POST("", h.createConversion)
	}
}

// createConversion godoc
// @Summary Convert an amount into Shefras
// @Description Acquires rates for the source currency, converts the amount into Shefras (1 Shefra = 140 INR) and ranks up to five affordable catalog items
// @Tags conversions
// @Accept  json
// @Produce  json
// @Param   conversion body dto.ConversionRequest true "Amount and source currency"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to rank suggestions"
// @Router /conversions [post]
func (h *conversionHandler) createConversion(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConversionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateConversion", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	if req.Amount.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must not be negative"})
		return
	}
	amount := req.Amount.InexactFloat64()
	if !conversion.IsConvertible(amount) {
		logger.Warn("Amount out of range", slog.String("amount", req.Amount.String()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount is out of range"})
		return
	}

	// binding already checked the code against the supported set
	currency, _ := domain.ParseCurrencyCode(req.Currency)
	logger = logger.With(slog.String("currency", string(currency)), slog.Float64("amount", amount))

	conv, snapshot := h.conversionService.Quote(c.Request.Context(), amount, currency)
	items, err := h.suggestionService.Suggest(c.Request.Context(), conv.Shefras)
	if err != nil {
		logger.Error("Failed to rank suggestions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rank suggestions"})
		return
	}

	middleware.PosthogEvent(c, h.posthogClient, "shefra_conversion", map[string]any{
		"currency":     string(currency),
		"rate_status":  string(snapshot.Status),
		"missing_rate": conv.MissingRate,
		"suggestions":  len(items),
	})

	logger.Info("Conversion computed",
		slog.Float64("shefras", conv.Shefras),
		slog.String("rate_status", string(snapshot.Status)),
	)
	c.JSON(http.StatusOK, dto.ToConversionResponse(conv, snapshot, items))
}
