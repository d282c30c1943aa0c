package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lavaresto/menu_backend/internal/core/domain"
	portssvc "github.com/lavaresto/menu_backend/internal/core/ports/services"
	"github.com/lavaresto/menu_backend/internal/dto"
	"github.com/lavaresto/menu_backend/internal/middleware"
	"github.com/lavaresto/menu_backend/internal/utils"
)

// itemHandler handles HTTP requests related to menu items.
type itemHandler struct {
	itemService portssvc.MenuItemSvcFacade
	rates       portssvc.ExchangeRateProvider
}

func newItemHandler(itemSvc portssvc.MenuItemSvcFacade, rates portssvc.ExchangeRateProvider) *itemHandler {
	return &itemHandler{itemService: itemSvc, rates: rates}
}

// registerItemRoutes registers public reads on public and mutations on admin.
func registerItemRoutes(public, admin *gin.RouterGroup, itemService portssvc.MenuItemSvcFacade, rates portssvc.ExchangeRateProvider) {
	h := newItemHandler(itemService, rates)

	public.GET("/items", h.listItems)

	items := admin.Group("/items")
	{
		items.POST("", h.createItem)
		items.PUT("/:id", h.updateItem)
		items.DELETE("/:id", h.deleteItem)
	}
}

// displayCurrency reads the optional ?currency query parameter.
// It writes a 400 and returns ok=false when the value is not supported.
func displayCurrency(c *gin.Context) (currency domain.Currency, present, ok bool) {
	raw := c.Query("currency")
	if raw == "" {
		return "", false, true
	}
	currency, valid := domain.ParseCurrency(raw)
	if !valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported currency, use USD or LBP"})
		return "", true, false
	}
	return currency, true, true
}

func (h *itemHandler) renderPrices(ctx context.Context, res []dto.MenuItemResponse, items []domain.MenuItem, display domain.Currency) error {
	rate, err := h.rates.GetExchangeRate(ctx)
	if err != nil {
		return err
	}
	for i := range items {
		res[i].DisplayPrice, err = utils.FormatPrice(items[i].Price, items[i].PriceCurrency, display, rate)
		if err != nil {
			return err
		}
	}
	return nil
}

// listItems godoc
// @Summary List menu items
// @Description Lists items sorted by display order then creation time. With currency, each item carries a displayPrice.
// @Tags items
// @Produce json
// @Param categoryId query string false "Only items of this category"
// @Param currency query string false "Display currency" Enums(USD, LBP)
// @Success 200 {array} dto.MenuItemResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /items [get]
func (h *itemHandler) listItems(c *gin.Context) {
	display, withPrices, ok := displayCurrency(c)
	if !ok {
		return
	}

	items, err := h.itemService.ListMenuItems(c.Request.Context(), c.Query("categoryId"))
	if err != nil {
		respondServiceError(c, err, "Items not found", "Failed to fetch items")
		return
	}

	res := dto.ToListMenuItemResponse(items)
	if withPrices {
		if err := h.renderPrices(c.Request.Context(), res, items, display); err != nil {
			respondServiceError(c, err, "Settings not found", "Failed to render prices")
			return
		}
	}
	c.JSON(http.StatusOK, res)
}

// createItem godoc
// @Summary Create a menu item
// @Tags items
// @Accept json
// @Produce json
// @Param item body dto.CreateMenuItemRequest true "Item details"
// @Success 201 {object} dto.MenuItemResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security AdminUsername
// @Security AdminPassword
// @Router /items [post]
func (h *itemHandler) createItem(c *gin.Context) {
	var req dto.CreateMenuItemRequest
	if !bindJSON(c, &req, "CreateMenuItem") {
		return
	}

	item, err := h.itemService.CreateMenuItem(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Item not found", "Failed to create item")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Menu item created", slog.String("item_id", item.ItemID))
	c.JSON(http.StatusCreated, dto.ToMenuItemResponse(item))
}

// updateItem godoc
// @Summary Update a menu item
// @Description Updates only the fields present in the body
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param item body dto.UpdateMenuItemRequest true "Fields to update"
// @Success 200 {object} dto.MenuItemResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security AdminUsername
// @Security AdminPassword
// @Router /items/{id} [put]
func (h *itemHandler) updateItem(c *gin.Context) {
	var req dto.UpdateMenuItemRequest
	if !bindJSON(c, &req, "UpdateMenuItem") {
		return
	}

	item, err := h.itemService.UpdateMenuItem(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Item not found", "Failed to update item")
		return
	}
	c.JSON(http.StatusOK, dto.ToMenuItemResponse(item))
}

// deleteItem godoc
// @Summary Delete a menu item
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security AdminUsername
// @Security AdminPassword
// @Router /items/{id} [delete]
func (h *itemHandler) deleteItem(c *gin.Context) {
	if err := h.itemService.DeleteMenuItem(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Item not found", "Failed to delete item")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted"})
}
