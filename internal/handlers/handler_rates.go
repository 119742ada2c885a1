package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/shefra_converter/internal/core/domain"
	portssvc "github.com/SscSPs/shefra_converter/internal/core/ports/services"
	"github.com/SscSPs/shefra_converter/internal/dto"
	"github.com/SscSPs/shefra_converter/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ratesHandler exposes rate acquisition.
type ratesHandler struct {
	rateProvider portssvc.RateProviderSvc
}

func newRatesHandler(rp portssvc.RateProviderSvc) *ratesHandler {
	return &ratesHandler{rateProvider: rp}
}

// registerRatesRoutes registers routes related to exchange rates.
func registerRatesRoutes(rg *gin.RouterGroup, rateProvider portssvc.RateProviderSvc) {
	h := newRatesHandler(rateProvider)

	rates := rg.Group("/rates")
	{
		rates.GET("/:base", h.getRates)
	}
}

// getRates godoc
// @Summary Get current exchange rates
// @Description Fetches live rates for a base currency. When the quote service is unavailable the built-in fallback table is returned with status "fallback".
// @Tags rates
// @Produce  json
// @Param   base path string true "Base currency code"
// @Success 200 {object} dto.RatesResponse
// @Failure 400 {object} map[string]string "Unsupported base currency"
// @Router /rates/{base} [get]
func (h *ratesHandler) getRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	base, ok := domain.ParseCurrencyCode(c.Param("base"))
	if !ok {
		logger.Warn("Unsupported base currency", slog.String("base", c.Param("base")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported base currency"})
		return
	}

	snapshot := h.rateProvider.AcquireRates(c.Request.Context(), base)
	c.JSON(http.StatusOK, dto.ToRatesResponse(snapshot))
}
