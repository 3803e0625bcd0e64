package controllers

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"buyfish/config"
	"buyfish/models"
	"buyfish/services"
	"buyfish/shopapi"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	Shop *shopapi.Client
}

const productCacheKey = "products_list"

func (ctrl *ProductController) cachedProducts(ctx context.Context) ([]models.Product, error) {
	if models.RedisClient != nil {
		cached, err := models.RedisClient.Get(ctx, productCacheKey).Result()
		if err == nil {
			products := []models.Product{}
			if err := json.Unmarshal([]byte(cached), &products); err == nil {
				return products, nil
			}
		}
	}

	products, err := services.NewProductService(ctrl.Shop).GetAllProducts(ctx)
	if err != nil {
		return nil, err
	}

	if models.RedisClient != nil {
		if raw, err := json.Marshal(products); err == nil {
			models.RedisClient.Set(ctx, productCacheKey, raw, config.AppConfig.ProductCacheTTL)
		}
	}
	return products, nil
}

// Home godoc
// @Summary Storefront home
// @Description Product catalogue with the derived category list; optional category filter
// @Tags Storefront
// @Produce json
// @Param categories query string false "Comma-separated category filter"
// @Success 200 {object} models.Response
// @Router / [get]
func (ctrl *ProductController) Home(c *gin.Context) {
	products, err := ctrl.cachedProducts(c.Request.Context())
	if err != nil {
		log.Println("Failed to fetch products:", err)
		products = []models.Product{}
	}

	var selected []string
	if raw := c.Query("categories"); raw != "" {
		selected = strings.Split(raw, ",")
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Products retrieved",
		"data": models.HomeView{
			Products:   services.FilterByCategories(products, selected),
			Categories: services.Categories(products),
		},
	})
}

// Search godoc
// @Summary Search products
// @Tags Storefront
// @Produce json
// @Param keyword path string true "Search keyword"
// @Success 200 {object} models.Response
// @Router /search/{keyword} [get]
func (ctrl *ProductController) Search(c *gin.Context) {
	keyword := strings.TrimSpace(c.Param("keyword"))
	if keyword == "" {
		c.JSON(400, gin.H{"success": false, "message": "Search keyword required"})
		return
	}

	results, err := services.NewProductService(ctrl.Shop).Search(c.Request.Context(), keyword)
	if err != nil {
		log.Println("Search failed:", err)
		c.JSON(200, gin.H{"success": true, "message": "No products found", "data": []models.Product{}})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Search results", "data": results})
}
