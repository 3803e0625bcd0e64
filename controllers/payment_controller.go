package controllers

import (
	"log"

	"buyfish/middleware"
	"buyfish/services"
	"buyfish/shopapi"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	Shop     *shopapi.Client
	Sessions *services.SessionService
}

// Success godoc
// @Summary Payment success page
// @Description Confirms the payment; captures it when the gateway passed
// paymentId/payerId back, refreshing stored credentials if the backend
// returns new ones.
// @Tags Payment
// @Produce json
// @Param id query string false "Order ID"
// @Param paymentId query string false "Gateway payment ID"
// @Param payerId query string false "Gateway payer ID"
// @Success 200 {object} models.Response
// @Router /payment-success [get]
func (ctrl *PaymentController) Success(c *gin.Context) {
	session := middleware.CurrentSession(c)
	orderID := c.Query("id")
	paymentID := c.Query("paymentId")
	payerID := c.Query("payerId")

	if paymentID != "" && payerID != "" {
		result, err := ctrl.Shop.CapturePayment(c.Request.Context(), session.Token, paymentID, payerID, orderID)
		if err != nil {
			log.Println("Payment capture failed:", err)
		} else if result.Token != "" || result.User != nil {
			sessionID := c.GetString(middleware.SessionIDKey)
			if err := ctrl.Sessions.RefreshCredentials(c.Request.Context(), sessionID, session, result.Token, result.User); err != nil {
				log.Println("Failed to refresh session credentials:", err)
			}
		}
	}

	data := gin.H{
		"orderId": orderID,
		"next":    "/orders/" + session.UserID,
	}
	if orderID != "" {
		order, err := ctrl.Shop.GetOrderDetails(c.Request.Context(), session.Token, orderID)
		if err != nil {
			log.Println("Failed to fetch order details:", err)
		} else {
			data["order"] = order
		}
	}

	log.Println("Payment successful for order:", orderID)
	c.JSON(200, gin.H{
		"success": true,
		"message": "Payment Successful! Thank you for your purchase.",
		"data":    data,
	})
}

// Failure godoc
// @Summary Payment failure page
// @Tags Payment
// @Produce json
// @Param id query string false "Order ID"
// @Success 200 {object} models.Response
// @Router /payment-failure [get]
func (ctrl *PaymentController) Failure(c *gin.Context) {
	orderID := c.Query("id")
	log.Println("Payment failed for order:", orderID)

	c.JSON(200, gin.H{
		"success": false,
		"message": "Payment Failed! Please try again.",
		"data":    gin.H{"orderId": orderID},
	})
}
