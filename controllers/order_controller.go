package controllers

import (
	"log"

	"buyfish/middleware"
	"buyfish/models"
	"buyfish/services"
	"buyfish/shopapi"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Shop *shopapi.Client
}

const noOrdersMessage = "You have no orders yet. Start shopping to place your first order!"

// List godoc
// @Summary Order history
// @Description Paid orders for the signed-in user, newest first. Fetch
// failures and empty histories both degrade to the no-orders message.
// @Tags Orders
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} models.Response
// @Router /orders/{userId} [get]
func (ctrl *OrderController) List(c *gin.Context) {
	session := middleware.CurrentSession(c)

	// Orders are always the session user's, whatever the path says.
	orders, err := services.NewOrderService(ctrl.Shop).PaidOrders(c.Request.Context(), session.UserID)
	if err != nil {
		log.Println("Error fetching orders:", err)
		c.JSON(200, gin.H{"success": true, "message": noOrdersMessage, "data": []models.Order{}})
		return
	}
	if len(orders) == 0 {
		c.JSON(200, gin.H{"success": true, "message": noOrdersMessage, "data": []models.Order{}})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Orders retrieved", "data": orders})
}
