package controllers

import (
	"errors"
	"log"

	"buyfish/middleware"
	"buyfish/models"
	"buyfish/services"
	"buyfish/shopapi"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	Shop *shopapi.Client
}

func (ctrl *CartController) mirror(c *gin.Context) *services.CartMirror {
	session := middleware.CurrentSession(c)
	return services.NewCartMirror(ctrl.Shop, session.UserID)
}

// View godoc
// @Summary Cart view
// @Description Current cart items with the derived total. A failed fetch
// degrades to an empty cart rather than an error banner.
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) View(c *gin.Context) {
	mirror := ctrl.mirror(c)
	if err := mirror.Load(c.Request.Context()); err != nil {
		log.Println("Failed to fetch cart items:", err)
	}

	c.JSON(200, gin.H{
		"success": true,
		"data": models.CartView{
			Items: mirror.Items(),
			Total: mirror.Total(),
		},
	})
}

// AddItem godoc
// @Summary Add product to cart
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.AddToCartRequest true "Add Request"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	mirror := ctrl.mirror(c)
	if err := mirror.AddItem(c.Request.Context(), req.ProductID, req.Quantity); err != nil {
		var apiErr *shopapi.APIError
		if errors.As(err, &apiErr) {
			c.JSON(400, gin.H{"success": false, "message": apiErr.Message})
			return
		}
		log.Println("Error adding item to cart:", err)
		c.JSON(502, gin.H{"success": false, "message": "Could not add item to cart"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Item added to cart!",
		"data":    gin.H{"tracked": mirror.Tracked()},
	})
}

// ChangeQuantity godoc
// @Summary Change a cart line's quantity
// @Description Optimistic update: the mirrored quantity changes even when the
// backend persist fails; the response reports whether it was persisted.
// @Tags Cart
// @Accept json
// @Produce json
// @Param productId path string true "Product ID"
// @Param request body models.ChangeQuantityRequest true "Direction"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items/{productId} [put]
func (ctrl *CartController) ChangeQuantity(c *gin.Context) {
	var req models.ChangeQuantityRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	mirror := ctrl.mirror(c)
	if err := mirror.Load(c.Request.Context()); err != nil {
		log.Println("Failed to fetch cart items:", err)
		c.JSON(502, gin.H{"success": false, "message": "Could not load cart"})
		return
	}

	persisted := true
	_, err := mirror.ChangeQuantity(c.Request.Context(), c.Param("productId"), services.Direction(req.Direction))
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Item not in cart"})
			return
		}
		log.Println("Failed to update cart:", err)
		persisted = false
	}

	c.JSON(200, gin.H{
		"success":   true,
		"persisted": persisted,
		"data": models.CartView{
			Items: mirror.Items(),
			Total: mirror.Total(),
		},
	})
}

// RemoveItem godoc
// @Summary Remove a product from the cart
// @Tags Cart
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} models.Response
// @Router /cart/items/{productId} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	mirror := ctrl.mirror(c)
	if err := mirror.Load(c.Request.Context()); err != nil {
		log.Println("Failed to fetch cart items:", err)
		c.JSON(502, gin.H{"success": false, "message": "Could not load cart"})
		return
	}

	persisted := true
	if err := mirror.Remove(c.Request.Context(), c.Param("productId")); err != nil {
		log.Println("Failed to remove product:", err)
		persisted = false
	}

	c.JSON(200, gin.H{
		"success":   true,
		"persisted": persisted,
		"data": models.CartView{
			Items: mirror.Items(),
			Total: mirror.Total(),
		},
	})
}
