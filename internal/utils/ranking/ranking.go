package ranking

import (
	"sort"

	"github.com/SscSPs/shefra_converter/internal/core/domain"
)

// MaxSuggestions caps the number of ranked items.
const MaxSuggestions = 5

// RankSuggestions returns the catalog items affordable with shefras, most
// expensive first. Ties keep catalog order. The catalog is not modified.
func RankSuggestions(shefras float64, catalog []domain.CatalogItem) []domain.CatalogItem {
	if !(shefras > 0) {
		return []domain.CatalogItem{}
	}

	affordable := make([]domain.CatalogItem, 0, len(catalog))
	for _, item := range catalog {
		if item.ShefraCost <= shefras {
			affordable = append(affordable, item)
		}
	}

	sort.SliceStable(affordable, func(i, j int) bool {
		return affordable[i].ShefraCost > affordable[j].ShefraCost
	})

	if len(affordable) > MaxSuggestions {
		affordable = affordable[:MaxSuggestions]
	}
	return affordable
}
