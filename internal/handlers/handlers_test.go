package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lavaresto/menu_backend/internal/apperrors"
	"github.com/lavaresto/menu_backend/internal/core/domain"
	portssvc "github.com/lavaresto/menu_backend/internal/core/ports/services"
	"github.com/lavaresto/menu_backend/internal/dto"
	"github.com/lavaresto/menu_backend/internal/handlers"
	"github.com/lavaresto/menu_backend/internal/middleware"
	"github.com/lavaresto/menu_backend/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	adminUser = "admin"
	adminPass = "admin123"
)

type HandlersTestSuite struct {
	suite.Suite
	router     *gin.Engine
	categories *MockCategoryService
	items      *MockMenuItemService
	offers     *MockOfferService
	settings   *MockSettingsService
	menu       *MockMenuService
	auth       *MockAuthService
}

func (suite *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.categories = new(MockCategoryService)
	suite.items = new(MockMenuItemService)
	suite.offers = new(MockOfferService)
	suite.settings = new(MockSettingsService)
	suite.menu = new(MockMenuService)
	suite.auth = new(MockAuthService)

	suite.auth.On("Verify", mock.Anything, adminUser, adminPass).
		Return(&domain.AdminPrincipal{Username: adminUser, Source: "store"}, nil).Maybe()

	container := &portssvc.ServiceContainer{
		Category: suite.categories,
		MenuItem: suite.items,
		Offer:    suite.offers,
		Settings: suite.settings,
		Menu:     suite.menu,
		Auth:     suite.auth,
	}
	cfg := &config.Config{IsProduction: true, CORSAllowedOrigins: []string{"*"}}
	suite.Require().NoError(handlers.RegisterRoutes(suite.router, cfg, container, handlers.RouteDeps{}))
}

func (suite *HandlersTestSuite) do(method, path string, body any, asAdmin bool) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if asAdmin {
		req.Header.Set(middleware.AdminUsernameHeader, adminUser)
		req.Header.Set(middleware.AdminPasswordHeader, adminPass)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func errorBody(w *httptest.ResponseRecorder) string {
	var body dto.ErrorResponse
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return body.Error
}

// --- Public routes ---

func (suite *HandlersTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", nil, false)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlersTestSuite) TestListCategories_Public() {
	suite.categories.On("ListCategories", mock.Anything).Return([]domain.Category{{CategoryID: "c-1", Name: "Burgers"}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/categories", nil, false)

	suite.Equal(http.StatusOK, w.Code)
	var res []dto.CategoryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Require().Len(res, 1)
	suite.Equal("Burgers", res[0].Name)
	suite.auth.AssertNotCalled(suite.T(), "Verify", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestListItems_WithDisplayCurrency() {
	items := []domain.MenuItem{{ItemID: "i-1", CategoryID: "c-1", Price: decimal.RequireFromString("5.5"), PriceCurrency: domain.USD}}
	suite.items.On("ListMenuItems", mock.Anything, "c-1").Return(items, nil).Once()
	suite.settings.On("GetExchangeRate", mock.Anything).Return(decimal.NewFromInt(89500), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/items?categoryId=c-1&currency=lbp", nil, false)

	suite.Equal(http.StatusOK, w.Code)
	var res []dto.MenuItemResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("492,000 LBP", res[0].DisplayPrice)
}

func (suite *HandlersTestSuite) TestListItems_WithoutCurrencySkipsRate() {
	suite.items.On("ListMenuItems", mock.Anything, "").Return([]domain.MenuItem{{ItemID: "i-1"}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/items", nil, false)

	suite.Equal(http.StatusOK, w.Code)
	suite.NotContains(w.Body.String(), "displayPrice")
	suite.settings.AssertNotCalled(suite.T(), "GetExchangeRate", mock.Anything)
}

func (suite *HandlersTestSuite) TestListItems_UnsupportedCurrency() {
	w := suite.do(http.MethodGet, "/api/v1/items?currency=EUR", nil, false)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.items.AssertNotCalled(suite.T(), "ListMenuItems", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestListLiveOffers_USD() {
	price := decimal.NewFromInt(10)
	suite.offers.On("ListLiveOffers", mock.Anything).Return([]domain.Offer{{OfferID: "o-1", Price: &price, IsActive: true}}, nil).Once()
	suite.settings.On("GetExchangeRate", mock.Anything).Return(decimal.NewFromInt(89500), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/offers?currency=USD", nil, false)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"displayPrice":"$10.00"`)
}

func (suite *HandlersTestSuite) TestGetMenu_DefaultsToUSD() {
	suite.menu.On("GetMenu", mock.Anything, domain.USD).Return(&dto.MenuResponse{RestaurantName: "Lava Resto", Currency: "USD"}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/menu", nil, false)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"restaurantName":"Lava Resto"`)
}

func (suite *HandlersTestSuite) TestGetSettings_ServerErrorHidesDetail() {
	suite.settings.On("GetSettings", mock.Anything).Return(nil, assert.AnError).Once()

	w := suite.do(http.MethodGet, "/api/v1/settings", nil, false)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Failed to fetch settings", errorBody(w))
}

// --- Admin gate ---

func (suite *HandlersTestSuite) TestAdminRoute_MissingCredentials() {
	suite.auth.On("Verify", mock.Anything, "", "").Return(nil, apperrors.ErrMissingCredentials).Once()

	w := suite.do(http.MethodPost, "/api/v1/categories", dto.CreateCategoryRequest{Name: "A", NameAr: "B"}, false)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("Unauthorized: Missing credentials", errorBody(w))
	suite.categories.AssertNotCalled(suite.T(), "CreateCategory", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestAdminRoute_InvalidCredentials() {
	suite.auth.On("Verify", mock.Anything, adminUser, "nope").Return(nil, apperrors.ErrInvalidCredentials).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/offers/all", nil)
	req.Header.Set(middleware.AdminUsernameHeader, adminUser)
	req.Header.Set(middleware.AdminPasswordHeader, "nope")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("Unauthorized: Invalid credentials", errorBody(w))
}

func (suite *HandlersTestSuite) TestAdminRoute_AuthServerError() {
	suite.auth.On("Verify", mock.Anything, "", "").Return(nil, apperrors.ErrAuthServer).Once()

	w := suite.do(http.MethodGet, "/api/v1/auth/verify", nil, false)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Server error during authentication", errorBody(w))
}

func (suite *HandlersTestSuite) TestVerify_Authenticated() {
	w := suite.do(http.MethodGet, "/api/v1/auth/verify", nil, true)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "Authenticated")
}

// --- Admin mutations ---

func (suite *HandlersTestSuite) TestCreateCategory_Created() {
	req := dto.CreateCategoryRequest{Name: "Burgers", NameAr: "برغر", Order: 1}
	suite.categories.On("CreateCategory", mock.Anything, req).Return(&domain.Category{CategoryID: "c-1", Name: "Burgers"}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/categories", req, true)

	suite.Equal(http.StatusCreated, w.Code)
	suite.categories.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestCreateCategory_BindError() {
	w := suite.do(http.MethodPost, "/api/v1/categories", map[string]any{"name": "only english"}, true)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestUpdateCategory_NotFound() {
	suite.categories.On("UpdateCategory", mock.Anything, "missing", mock.AnythingOfType("dto.UpdateCategoryRequest")).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodPut, "/api/v1/categories/missing", map[string]any{"order": 3}, true)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Category not found", errorBody(w))
}

func (suite *HandlersTestSuite) TestDeleteCategory() {
	suite.categories.On("DeleteCategory", mock.Anything, "c-1").Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/categories/c-1", nil, true)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlersTestSuite) TestCreateItem_RejectsUnknownCurrency() {
	body := map[string]any{
		"categoryId":    uuid.NewString(),
		"name":          "Burger",
		"nameAr":        "برغر",
		"price":         5.5,
		"priceCurrency": "EUR",
	}

	w := suite.do(http.MethodPost, "/api/v1/items", body, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.items.AssertNotCalled(suite.T(), "CreateMenuItem", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestCreateItem_Created() {
	categoryID := uuid.NewString()
	body := map[string]any{"categoryId": categoryID, "name": "Burger", "nameAr": "برغر", "price": 5.5, "priceCurrency": "LBP"}
	suite.items.On("CreateMenuItem", mock.Anything, mock.MatchedBy(func(r dto.CreateMenuItemRequest) bool {
		return r.CategoryID == categoryID && r.Price != nil && r.Price.Equal(decimal.RequireFromString("5.5")) && r.PriceCurrency == "LBP"
	})).Return(&domain.MenuItem{ItemID: "i-1", CategoryID: categoryID}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/items", body, true)

	suite.Equal(http.StatusCreated, w.Code)
	suite.items.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestCreateItem_AcceptsRelativeImagePath() {
	body := map[string]any{"categoryId": uuid.NewString(), "name": "Pizza", "nameAr": "بيتزا", "price": 9, "imageUrl": "/images/pizza.jpg"}
	suite.items.On("CreateMenuItem", mock.Anything, mock.MatchedBy(func(r dto.CreateMenuItemRequest) bool {
		return r.ImageURL == "/images/pizza.jpg"
	})).Return(&domain.MenuItem{ItemID: "i-2", ImageURL: "/images/pizza.jpg"}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/items", body, true)

	suite.Equal(http.StatusCreated, w.Code)
	suite.items.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestCreateOffer_AcceptsRelativeImagePath() {
	body := map[string]any{"title": "Combo", "titleAr": "كومبو", "imageUrl": "images/combo.png"}
	suite.offers.On("CreateOffer", mock.Anything, mock.MatchedBy(func(r dto.CreateOfferRequest) bool {
		return r.ImageURL == "images/combo.png"
	})).Return(&domain.Offer{OfferID: "o-2", ImageURL: "images/combo.png"}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/offers", body, true)

	suite.Equal(http.StatusCreated, w.Code)
	suite.offers.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestUpdateSettings_InvalidRate() {
	suite.settings.On("UpdateSettings", mock.Anything, mock.AnythingOfType("dto.UpdateSettingsRequest")).
		Return(nil, apperrors.ErrValidation).Once()

	w := suite.do(http.MethodPut, "/api/v1/settings", map[string]any{"lbpRate": 0}, true)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestUpdateCredentials_UsesHeaderUsername() {
	req := dto.UpdateCredentialsRequest{NewPassword: "rotated"}
	suite.auth.On("UpdateCredentials", mock.Anything, adminUser, req).Return(nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/auth/update", req, true)

	suite.Equal(http.StatusOK, w.Code)
	suite.auth.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestUpdateCredentials_NoStoredAdmin() {
	req := dto.UpdateCredentialsRequest{NewPassword: "rotated"}
	suite.auth.On("UpdateCredentials", mock.Anything, adminUser, req).Return(apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodPut, "/api/v1/auth/update", req, true)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Admin not found", errorBody(w))
}

func (suite *HandlersTestSuite) TestUpdateCredentials_DuplicateUsername() {
	req := dto.UpdateCredentialsRequest{NewUsername: "chef"}
	suite.auth.On("UpdateCredentials", mock.Anything, adminUser, req).Return(apperrors.ErrDuplicate).Once()

	w := suite.do(http.MethodPut, "/api/v1/auth/update", req, true)

	suite.Equal(http.StatusConflict, w.Code)
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
