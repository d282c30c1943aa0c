package services_test

import (
	"context"
	"testing"

	"github.com/lavaresto/menu_backend/internal/apperrors"
	"github.com/lavaresto/menu_backend/internal/core/domain"
	portssvc "github.com/lavaresto/menu_backend/internal/core/ports/services"
	"github.com/lavaresto/menu_backend/internal/core/services"
	"github.com/lavaresto/menu_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MenuItemServiceTestSuite struct {
	suite.Suite
	mockItems      *MockMenuItemRepository
	mockCategories *MockCategoryRepository
	service        portssvc.MenuItemSvcFacade
}

func (suite *MenuItemServiceTestSuite) SetupTest() {
	suite.mockItems = new(MockMenuItemRepository)
	suite.mockCategories = new(MockCategoryRepository)
	suite.service = services.NewMenuItemService(suite.mockItems, suite.mockCategories, services.WithClock(fixedClock))
}

func (suite *MenuItemServiceTestSuite) TestCreateMenuItem_Defaults() {
	ctx := context.Background()
	price := decimal.RequireFromString("5.50")
	req := dto.CreateMenuItemRequest{CategoryID: "c-1", Name: "Classic Burger", NameAr: "برغر كلاسيك", Price: &price}

	suite.mockCategories.On("FindCategoryByID", ctx, "c-1").Return(&domain.Category{CategoryID: "c-1"}, nil).Once()
	suite.mockItems.On("SaveMenuItem", ctx, mock.MatchedBy(func(i domain.MenuItem) bool {
		return i.ItemID != "" && i.PriceCurrency == domain.USD && i.IsAvailable && i.Price.Equal(price)
	})).Return(nil).Once()

	item, err := suite.service.CreateMenuItem(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.USD, item.PriceCurrency)
	suite.True(item.IsAvailable)
	suite.mockItems.AssertExpectations(suite.T())
}

func (suite *MenuItemServiceTestSuite) TestCreateMenuItem_LBPPriceUnavailable() {
	ctx := context.Background()
	price := decimal.NewFromInt(450000)
	unavailable := false
	req := dto.CreateMenuItemRequest{CategoryID: "c-1", Name: "Mezze", NameAr: "مازة", Price: &price, PriceCurrency: "lbp", IsAvailable: &unavailable}

	suite.mockCategories.On("FindCategoryByID", ctx, "c-1").Return(&domain.Category{CategoryID: "c-1"}, nil).Once()
	suite.mockItems.On("SaveMenuItem", ctx, mock.MatchedBy(func(i domain.MenuItem) bool {
		return i.PriceCurrency == domain.LBP && !i.IsAvailable
	})).Return(nil).Once()

	_, err := suite.service.CreateMenuItem(ctx, req)

	suite.Require().NoError(err)
	suite.mockItems.AssertExpectations(suite.T())
}

func (suite *MenuItemServiceTestSuite) TestCreateMenuItem_UnknownCategory() {
	ctx := context.Background()
	price := decimal.NewFromInt(3)
	suite.mockCategories.On("FindCategoryByID", ctx, "nope").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateMenuItem(ctx, dto.CreateMenuItemRequest{CategoryID: "nope", Name: "A", NameAr: "B", Price: &price})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockItems.AssertNotCalled(suite.T(), "SaveMenuItem", mock.Anything, mock.Anything)
}

func (suite *MenuItemServiceTestSuite) TestCreateMenuItem_NegativePrice() {
	price := decimal.NewFromInt(-1)

	_, err := suite.service.CreateMenuItem(context.Background(), dto.CreateMenuItemRequest{CategoryID: "c-1", Name: "A", NameAr: "B", Price: &price})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *MenuItemServiceTestSuite) TestCreateMenuItem_PriceAboveCeiling() {
	price := domain.MaxPrice.Add(decimal.NewFromInt(1))

	_, err := suite.service.CreateMenuItem(context.Background(), dto.CreateMenuItemRequest{CategoryID: "c-1", Name: "A", NameAr: "B", Price: &price})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockItems.AssertNotCalled(suite.T(), "SaveMenuItem", mock.Anything, mock.Anything)
}

func (suite *MenuItemServiceTestSuite) TestListMenuItems_ByCategory() {
	ctx := context.Background()
	expected := []domain.MenuItem{{ItemID: "i-1", CategoryID: "c-1"}}
	suite.mockItems.On("ListMenuItems", ctx, "c-1").Return(expected, nil).Once()

	items, err := suite.service.ListMenuItems(ctx, "c-1")

	suite.Require().NoError(err)
	suite.Equal(expected, items)
}

func (suite *MenuItemServiceTestSuite) TestUpdateMenuItem_MoveCategoryAndReprice() {
	ctx := context.Background()
	existing := &domain.MenuItem{ItemID: "i-1", CategoryID: "c-1", Name: "Fries", NameAr: "بطاطا", Price: decimal.NewFromInt(3), PriceCurrency: domain.USD}
	newCategory := "c-2"
	newPrice := decimal.NewFromInt(270000)
	newCurrency := "LBP"

	suite.mockItems.On("FindMenuItemByID", ctx, "i-1").Return(existing, nil).Once()
	suite.mockCategories.On("FindCategoryByID", ctx, "c-2").Return(&domain.Category{CategoryID: "c-2"}, nil).Once()
	suite.mockItems.On("UpdateMenuItem", ctx, mock.MatchedBy(func(i domain.MenuItem) bool {
		return i.CategoryID == "c-2" && i.PriceCurrency == domain.LBP && i.Price.Equal(newPrice) && i.Name == "Fries"
	})).Return(nil).Once()

	item, err := suite.service.UpdateMenuItem(ctx, "i-1", dto.UpdateMenuItemRequest{CategoryID: &newCategory, Price: &newPrice, PriceCurrency: &newCurrency})

	suite.Require().NoError(err)
	suite.Equal("c-2", item.CategoryID)
	suite.mockItems.AssertExpectations(suite.T())
	suite.mockCategories.AssertExpectations(suite.T())
}

func (suite *MenuItemServiceTestSuite) TestUpdateMenuItem_RepoError() {
	ctx := context.Background()
	suite.mockItems.On("FindMenuItemByID", ctx, "i-1").Return(&domain.MenuItem{ItemID: "i-1"}, nil).Once()
	suite.mockItems.On("UpdateMenuItem", ctx, mock.AnythingOfType("domain.MenuItem")).Return(assert.AnError).Once()

	_, err := suite.service.UpdateMenuItem(ctx, "i-1", dto.UpdateMenuItemRequest{})

	suite.ErrorIs(err, assert.AnError)
}

func (suite *MenuItemServiceTestSuite) TestDeleteMenuItem() {
	ctx := context.Background()
	suite.mockItems.On("DeleteMenuItem", ctx, "i-1").Return(nil).Once()

	suite.NoError(suite.service.DeleteMenuItem(ctx, "i-1"))
	suite.mockItems.AssertExpectations(suite.T())
}

func TestMenuItemServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MenuItemServiceTestSuite))
}
