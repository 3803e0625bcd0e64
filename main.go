package main

import (
	"log"

	"buyfish/config"
	_ "buyfish/docs"
	"buyfish/middleware"
	"buyfish/models"
	"buyfish/routes"
	"buyfish/services"
	"buyfish/shopapi"

	"github.com/gin-gonic/gin"
)

// @title BuyFish Storefront
// @description Storefront gateway for the BuyFish seafood shop
// @version 1.0
func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	models.InitRedis()
	defer models.CloseRedis()

	shop := shopapi.NewClient(config.AppConfig.ShopAPIURL, config.AppConfig.ShopAPITimeout)
	sessions := services.NewSessionService(shop, models.RedisClient, config.AppConfig.SessionTTL)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, shop, sessions)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
