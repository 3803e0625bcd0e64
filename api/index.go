package api

import (
	"net/http"
	"sync"

	"buyfish/config"
	"buyfish/middleware"
	"buyfish/models"
	"buyfish/routes"
	"buyfish/services"
	"buyfish/shopapi"

	"github.com/gin-gonic/gin"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()
		models.InitRedis()

		shop := shopapi.NewClient(config.AppConfig.ShopAPIURL, config.AppConfig.ShopAPITimeout)
		sessions := services.NewSessionService(shop, models.RedisClient, config.AppConfig.SessionTTL)

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware())

		routes.SetupRoutes(router, shop, sessions)
	})
}

func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
