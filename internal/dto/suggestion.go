package dto

import (
	"github.com/SscSPs/shefra_converter/internal/core/domain"
)

// ListSuggestionsParams defines the query parameters for ranking suggestions.
type ListSuggestionsParams struct {
	Shefras float64 `form:"shefras" binding:"gte=0"`
}

// CatalogItemResponse defines the data returned for a catalog item.
type CatalogItemResponse struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ShefraCost  float64 `json:"shefraCost"`
	ImageRef    string  `json:"imageRef"`
}

// SuggestionsResponse wraps a ranked list of affordable items.
type SuggestionsResponse struct {
	Shefras     float64               `json:"shefras"`
	Suggestions []CatalogItemResponse `json:"suggestions"`
}

// ToCatalogItemResponse converts a domain.CatalogItem to CatalogItemResponse DTO
func ToCatalogItemResponse(item domain.CatalogItem) CatalogItemResponse {
	return CatalogItemResponse{
		Name:        item.Name,
		Description: item.Description,
		ShefraCost:  item.ShefraCost,
		ImageRef:    item.ImageRef,
	}
}

// ToListCatalogItemResponse keeps the order of items. The result is never nil.
func ToListCatalogItemResponse(items []domain.CatalogItem) []CatalogItemResponse {
	res := make([]CatalogItemResponse, len(items))
	for i, item := range items {
		res[i] = ToCatalogItemResponse(item)
	}
	return res
}
