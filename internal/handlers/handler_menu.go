package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lavaresto/menu_backend/internal/core/domain"
	portssvc "github.com/lavaresto/menu_backend/internal/core/ports/services"
)

type menuHandler struct {
	menuService portssvc.MenuReaderSvc
}

func registerMenuRoutes(public *gin.RouterGroup, menuService portssvc.MenuReaderSvc) {
	h := &menuHandler{menuService: menuService}
	public.GET("/menu", h.getMenu)
}

// getMenu godoc
// @Summary Get the public menu
// @Description Categories in display order with their available items, and the live offers, priced in one currency
// @Tags menu
// @Produce json
// @Param currency query string false "Display currency, default USD" Enums(USD, LBP)
// @Success 200 {object} dto.MenuResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /menu [get]
func (h *menuHandler) getMenu(c *gin.Context) {
	display, present, ok := displayCurrency(c)
	if !ok {
		return
	}
	if !present {
		display = domain.USD
	}

	menu, err := h.menuService.GetMenu(c.Request.Context(), display)
	if err != nil {
		respondServiceError(c, err, "Menu not found", "Failed to build menu")
		return
	}
	c.JSON(http.StatusOK, menu)
}
