package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/shefra_converter/internal/core/domain"
	portsrepo "github.com/SscSPs/shefra_converter/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/shefra_converter/internal/core/ports/services"
	"github.com/SscSPs/shefra_converter/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var testTime = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

// --- Mock CatalogReader ---
type MockCatalogReader struct {
	mock.Mock
}

func (m *MockCatalogReader) ListItems(ctx context.Context) ([]domain.CatalogItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CatalogItem), args.Error(1)
}

var _ portsrepo.CatalogReader = (*MockCatalogReader)(nil)

func testCatalog() []domain.CatalogItem {
	costs := []float64{2, 3, 5, 7, 10, 15, 20, 30, 40, 70, 85, 100}
	items := make([]domain.CatalogItem, len(costs))
	for i, c := range costs {
		items[i] = domain.CatalogItem{Name: "item", ShefraCost: c}
	}
	return items
}

// --- Test Suite ---
type SuggestionServiceTestSuite struct {
	suite.Suite
	mockCatalog *MockCatalogReader
	service     portssvc.SuggestionSvc
}

func (suite *SuggestionServiceTestSuite) SetupTest() {
	suite.mockCatalog = new(MockCatalogReader)
	suite.service = services.NewSuggestionService(suite.mockCatalog, nil)
}

func (suite *SuggestionServiceTestSuite) TestSuggest_RanksAffordableItems() {
	ctx := context.Background()
	suite.mockCatalog.On("ListItems", ctx).Return(testCatalog(), nil).Once()

	items, err := suite.service.Suggest(ctx, 59.59)

	suite.Require().NoError(err)
	suite.Require().Len(items, 5)
	costs := make([]float64, len(items))
	for i, item := range items {
		costs[i] = item.ShefraCost
	}
	suite.Equal([]float64{40, 30, 20, 15, 10}, costs)
	suite.mockCatalog.AssertExpectations(suite.T())
}

func (suite *SuggestionServiceTestSuite) TestSuggest_NothingAffordable() {
	ctx := context.Background()
	suite.mockCatalog.On("ListItems", ctx).Return(testCatalog(), nil).Once()

	items, err := suite.service.Suggest(ctx, 1)

	suite.Require().NoError(err)
	suite.NotNil(items)
	suite.Empty(items)
}

func (suite *SuggestionServiceTestSuite) TestSuggest_CatalogError() {
	ctx := context.Background()
	suite.mockCatalog.On("ListItems", ctx).Return(nil, errors.New("disk gone")).Once()

	items, err := suite.service.Suggest(ctx, 50)

	suite.Require().Error(err)
	suite.Nil(items)
	suite.Contains(err.Error(), "failed to list catalog items")
}

func TestSuggestionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SuggestionServiceTestSuite))
}
