package static

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"math"
	"os"

	"github.com/SscSPs/shefra_converter/internal/apperrors"
	"github.com/SscSPs/shefra_converter/internal/core/domain"
	"github.com/SscSPs/shefra_converter/internal/core/ports/repositories"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type catalogFile struct {
	Items []domain.CatalogItem `yaml:"items"`
}

// CatalogRepository serves a catalog that is loaded once and never mutated.
type CatalogRepository struct {
	items []domain.CatalogItem
}

// NewDefaultCatalogRepository loads the catalog embedded in the binary.
func NewDefaultCatalogRepository() (*CatalogRepository, error) {
	return NewCatalogRepositoryFromYAML(defaultCatalog)
}

// NewCatalogRepositoryFromFile loads the catalog from a YAML file on disk.
func NewCatalogRepositoryFromFile(path string) (*CatalogRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file %s: %w", path, err)
	}
	return NewCatalogRepositoryFromYAML(data)
}

// NewCatalogRepositoryFromYAML parses and validates a YAML catalog document.
func NewCatalogRepositoryFromYAML(data []byte) (*CatalogRepository, error) {
	var doc catalogFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: parse catalog: %v", apperrors.ErrValidation, err)
	}
	for i, item := range doc.Items {
		if item.Name == "" {
			return nil, fmt.Errorf("%w: catalog item %d has no name", apperrors.ErrValidation, i)
		}
		if !(item.ShefraCost > 0) || math.IsInf(item.ShefraCost, 0) {
			return nil, fmt.Errorf("%w: catalog item %q must have a positive cost", apperrors.ErrValidation, item.Name)
		}
	}
	return &CatalogRepository{items: doc.Items}, nil
}

// ListItems returns a copy of the catalog in declaration order.
func (r *CatalogRepository) ListItems(ctx context.Context) ([]domain.CatalogItem, error) {
	out := make([]domain.CatalogItem, len(r.items))
	copy(out, r.items)
	return out, nil
}

var _ repositories.CatalogReader = (*CatalogRepository)(nil)
