package controllers

import (
	"errors"
	"log"
	"net/http"

	"buyfish/middleware"
	"buyfish/models"
	"buyfish/services"
	"buyfish/shopapi"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct {
	Shop     *shopapi.Client
	Sessions *services.SessionService
}

// View godoc
// @Summary Checkout view
// @Description Cart items, derived total and saved addresses
// @Tags Checkout
// @Produce json
// @Success 200 {object} models.Response
// @Router /checkout [get]
func (ctrl *CheckoutController) View(c *gin.Context) {
	session := middleware.CurrentSession(c)
	ctx := c.Request.Context()

	mirror := services.NewCartMirror(ctrl.Shop, session.UserID)
	if err := mirror.Load(ctx); err != nil {
		log.Println("Failed to fetch cart items:", err)
	}

	addresses, err := services.NewAddressBook(ctrl.Shop, session.UserID).List(ctx)
	if err != nil {
		log.Println("Failed to fetch addresses:", err)
		addresses = []models.Address{}
	}

	c.JSON(200, gin.H{
		"success": true,
		"data": models.CheckoutView{
			Items:           mirror.Items(),
			Total:           mirror.Total(),
			Addresses:       addresses,
			SelectedAddress: session.SelectedAddress,
		},
	})
}

// SaveAddress godoc
// @Summary Add or update an address
// @Description Creates an address, or updates the one named by the editing id
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body models.SaveAddressRequest true "Address"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /checkout/addresses [post]
func (ctrl *CheckoutController) SaveAddress(c *gin.Context) {
	var req models.SaveAddressRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	session := middleware.CurrentSession(c)
	book := services.NewAddressBook(ctrl.Shop, session.UserID)

	saved, err := book.Save(c.Request.Context(), req.Editing, req.AddressFields)
	if err != nil {
		var apiErr *shopapi.APIError
		if errors.As(err, &apiErr) {
			c.JSON(400, gin.H{"success": false, "message": apiErr.Message})
			return
		}
		log.Println("Error adding/updating address:", err)
		c.JSON(502, gin.H{"success": false, "message": "Could not save address"})
		return
	}

	message := "Address added"
	if req.Editing != "" {
		message = "Address updated"
	}
	c.JSON(200, gin.H{"success": true, "message": message, "data": saved})
}

// DeleteAddress godoc
// @Summary Delete an address
// @Tags Checkout
// @Produce json
// @Param addressId path string true "Address ID"
// @Success 200 {object} models.Response
// @Router /checkout/addresses/{addressId} [delete]
func (ctrl *CheckoutController) DeleteAddress(c *gin.Context) {
	session := middleware.CurrentSession(c)
	book := services.NewAddressBook(ctrl.Shop, session.UserID)

	if err := book.Delete(c.Request.Context(), c.Param("addressId")); err != nil {
		var apiErr *shopapi.APIError
		if errors.As(err, &apiErr) {
			c.JSON(400, gin.H{"success": false, "message": apiErr.Message})
			return
		}
		log.Println("Error removing address:", err)
		c.JSON(502, gin.H{"success": false, "message": "Could not delete address"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Address deleted"})
}

// SelectAddress godoc
// @Summary Select the delivery address for checkout
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body models.SelectAddressRequest true "Selection"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /checkout/select-address [post]
func (ctrl *CheckoutController) SelectAddress(c *gin.Context) {
	var req models.SelectAddressRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	session := middleware.CurrentSession(c)
	book := services.NewAddressBook(ctrl.Shop, session.UserID)

	address, err := book.Find(c.Request.Context(), req.AddressID)
	if err != nil {
		log.Println("Failed to fetch addresses:", err)
		c.JSON(502, gin.H{"success": false, "message": "Could not load addresses"})
		return
	}
	if address == nil {
		c.JSON(404, gin.H{"success": false, "message": "Address not found"})
		return
	}

	sessionID := c.GetString(middleware.SessionIDKey)
	if err := ctrl.Sessions.SelectAddress(c.Request.Context(), sessionID, session, address.ID); err != nil {
		log.Println("Failed to persist address selection:", err)
	}

	c.JSON(200, gin.H{"success": true, "message": "Address selected", "data": address})
}

// PlaceOrder godoc
// @Summary Place the order
// @Description Submits a snapshot of the cart and selected address. Success
// redirects to the payment gateway's approval location; failure keeps the
// user on checkout with the backend's message.
// @Tags Checkout
// @Produce json
// @Success 302 {string} string "Redirect to approval URL"
// @Success 200 {object} models.ErrorResponse "Backend-reported failure"
// @Failure 400 {object} models.ErrorResponse "No address selected"
// @Router /checkout/place-order [post]
func (ctrl *CheckoutController) PlaceOrder(c *gin.Context) {
	session := middleware.CurrentSession(c)
	ctx := c.Request.Context()

	checkout := services.NewCheckout(ctrl.Shop, session.UserID)
	if session.SelectedAddress != "" {
		address, err := services.NewAddressBook(ctrl.Shop, session.UserID).Find(ctx, session.SelectedAddress)
		if err != nil {
			log.Println("Failed to fetch addresses:", err)
		}
		if address != nil {
			checkout.SelectAddress(*address)
		}
	}

	mirror := services.NewCartMirror(ctrl.Shop, session.UserID)
	if err := mirror.Load(ctx); err != nil {
		log.Println("Failed to fetch cart items:", err)
		c.JSON(502, gin.H{"success": false, "message": "Could not load cart"})
		return
	}

	approvalURL, err := checkout.Submit(ctx, mirror.Items(), mirror.Total())
	if err != nil {
		if errors.Is(err, services.ErrNoAddressSelected) {
			c.JSON(400, gin.H{"success": false, "message": "Please select an address to proceed."})
			return
		}
		var apiErr *shopapi.APIError
		if errors.As(err, &apiErr) {
			c.JSON(200, gin.H{"success": false, "message": "Failed to create order: " + apiErr.Message})
			return
		}
		log.Println("Error during order creation:", err)
		c.JSON(200, gin.H{"success": false, "message": "Something went wrong. Please try again."})
		return
	}

	c.Redirect(http.StatusFound, approvalURL)
}
