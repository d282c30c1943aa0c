package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lavaresto/menu_backend/internal/core/domain"
	portssvc "github.com/lavaresto/menu_backend/internal/core/ports/services"
	"github.com/lavaresto/menu_backend/internal/dto"
	"github.com/lavaresto/menu_backend/internal/middleware"
	"github.com/lavaresto/menu_backend/internal/utils"
)

// offerHandler handles HTTP requests related to offers.
type offerHandler struct {
	offerService portssvc.OfferSvcFacade
	rates        portssvc.ExchangeRateProvider
}

func newOfferHandler(offerSvc portssvc.OfferSvcFacade, rates portssvc.ExchangeRateProvider) *offerHandler {
	return &offerHandler{offerService: offerSvc, rates: rates}
}

// registerOfferRoutes registers the live offer list on public and everything else on admin.
func registerOfferRoutes(public, admin *gin.RouterGroup, offerService portssvc.OfferSvcFacade, rates portssvc.ExchangeRateProvider) {
	h := newOfferHandler(offerService, rates)

	public.GET("/offers", h.listLiveOffers)

	offers := admin.Group("/offers")
	{
		offers.GET("/all", h.listAllOffers)
		offers.POST("", h.createOffer)
		offers.PUT("/:id", h.updateOffer)
		offers.DELETE("/:id", h.deleteOffer)
	}
}

// listLiveOffers godoc
// @Summary List live offers
// @Description Lists active offers that have no expiry or have not expired yet
// @Tags offers
// @Produce json
// @Param currency query string false "Display currency" Enums(USD, LBP)
// @Success 200 {array} dto.OfferResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /offers [get]
func (h *offerHandler) listLiveOffers(c *gin.Context) {
	display, withPrices, ok := displayCurrency(c)
	if !ok {
		return
	}

	offers, err := h.offerService.ListLiveOffers(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Offers not found", "Failed to fetch offers")
		return
	}

	res := dto.ToListOfferResponse(offers)
	if withPrices {
		rate, err := h.rates.GetExchangeRate(c.Request.Context())
		if err != nil {
			respondServiceError(c, err, "Settings not found", "Failed to render prices")
			return
		}
		for i := range offers {
			if offers[i].Price == nil {
				continue
			}
			res[i].DisplayPrice, err = utils.FormatPrice(*offers[i].Price, domain.OfferPriceCurrency, display, rate)
			if err != nil {
				respondServiceError(c, err, "Settings not found", "Failed to render prices")
				return
			}
		}
	}
	c.JSON(http.StatusOK, res)
}

// listAllOffers godoc
// @Summary List all offers
// @Description Lists every offer, including inactive and expired ones
// @Tags offers
// @Produce json
// @Success 200 {array} dto.OfferResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security AdminUsername
// @Security AdminPassword
// @Router /offers/all [get]
func (h *offerHandler) listAllOffers(c *gin.Context) {
	offers, err := h.offerService.ListAllOffers(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Offers not found", "Failed to fetch offers")
		return
	}
	c.JSON(http.StatusOK, dto.ToListOfferResponse(offers))
}

// createOffer godoc
// @Summary Create an offer
// @Description Offer prices are in USD
// @Tags offers
// @Accept json
// @Produce json
// @Param offer body dto.CreateOfferRequest true "Offer details"
// @Success 201 {object} dto.OfferResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security AdminUsername
// @Security AdminPassword
// @Router /offers [post]
func (h *offerHandler) createOffer(c *gin.Context) {
	var req dto.CreateOfferRequest
	if !bindJSON(c, &req, "CreateOffer") {
		return
	}

	offer, err := h.offerService.CreateOffer(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Offer not found", "Failed to create offer")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Offer created", slog.String("offer_id", offer.OfferID))
	c.JSON(http.StatusCreated, dto.ToOfferResponse(offer))
}

// updateOffer godoc
// @Summary Update an offer
// @Description Updates only the fields present in the body; clearPrice and clearExpiresAt remove the optional values
// @Tags offers
// @Accept json
// @Produce json
// @Param id path string true "Offer ID"
// @Param offer body dto.UpdateOfferRequest true "Fields to update"
// @Success 200 {object} dto.OfferResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security AdminUsername
// @Security AdminPassword
// @Router /offers/{id} [put]
func (h *offerHandler) updateOffer(c *gin.Context) {
	var req dto.UpdateOfferRequest
	if !bindJSON(c, &req, "UpdateOffer") {
		return
	}

	offer, err := h.offerService.UpdateOffer(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Offer not found", "Failed to update offer")
		return
	}
	c.JSON(http.StatusOK, dto.ToOfferResponse(offer))
}

// deleteOffer godoc
// @Summary Delete an offer
// @Tags offers
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security AdminUsername
// @Security AdminPassword
// @Router /offers/{id} [delete]
func (h *offerHandler) deleteOffer(c *gin.Context) {
	if err := h.offerService.DeleteOffer(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Offer not found", "Failed to delete offer")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Offer deleted"})
}
