package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/shefra_converter/internal/core/ports/services"
	"github.com/SscSPs/shefra_converter/internal/dto"
	"github.com/SscSPs/shefra_converter/internal/middleware"
	"github.com/gin-gonic/gin"
)

// suggestionHandler serves the catalog and the affordability ranking.
type suggestionHandler struct {
	suggestionService portssvc.SuggestionSvc
}

func newSuggestionHandler(ss portssvc.SuggestionSvc) *suggestionHandler {
	return &suggestionHandler{suggestionService: ss}
}

// registerSuggestionRoutes registers the catalog and suggestion routes.
func registerSuggestionRoutes(rg *gin.RouterGroup, ss portssvc.SuggestionSvc) {
	h := newSuggestionHandler(ss)

	rg.GET("/catalog", h.listCatalog)
	rg.GET("/suggestions", h.listSuggestions)
}

// listCatalog godoc
// @Summary List the catalog
// @Description Returns every catalog item in declaration order
// @Tags suggestions
// @Produce  json
// @Success 200 {array} dto.CatalogItemResponse
// @Failure 500 {object} map[string]string "Failed to list catalog"
// @Router /catalog [get]
func (h *suggestionHandler) listCatalog(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	items, err := h.suggestionService.Catalog(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list catalog", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list catalog"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCatalogItemResponse(items))
}

// listSuggestions godoc
// @Summary Rank affordable items
// @Description Returns at most five catalog items whose cost does not exceed the given Shefra amount, most expensive first
// @Tags suggestions
// @Produce  json
// @Param   shefras query number true "Shefra amount" minimum(0)
// @Success 200 {object} dto.SuggestionsResponse
// @Failure 400 {object} map[string]string "Invalid Shefra amount"
// @Failure 500 {object} map[string]string "Failed to rank suggestions"
// @Router /suggestions [get]
func (h *suggestionHandler) listSuggestions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListSuggestionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListSuggestions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	items, err := h.suggestionService.Suggest(c.Request.Context(), params.Shefras)
	if err != nil {
		logger.Error("Failed to rank suggestions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rank suggestions"})
		return
	}

	c.JSON(http.StatusOK, dto.SuggestionsResponse{
		Shefras:     params.Shefras,
		Suggestions: dto.ToListCatalogItemResponse(items),
	})
}
