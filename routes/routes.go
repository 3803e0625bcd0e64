package routes

import (
	"buyfish/config"
	"buyfish/controllers"
	"buyfish/middleware"
	"buyfish/services"
	"buyfish/shopapi"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine, shop *shopapi.Client, sessions *services.SessionService) {
	authCtrl := &controllers.AuthController{Shop: shop, Sessions: sessions}
	productCtrl := &controllers.ProductController{Shop: shop}
	cartCtrl := &controllers.CartController{Shop: shop}
	checkoutCtrl := &controllers.CheckoutController{Shop: shop, Sessions: sessions}
	orderCtrl := &controllers.OrderController{Shop: shop}
	paymentCtrl := &controllers.PaymentController{Shop: shop, Sessions: sessions}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.Use(middleware.LoadSession(sessions, config.AppConfig.SessionCookie))

	router.GET("/", productCtrl.Home)
	router.GET("/search/:keyword", productCtrl.Search)
	router.GET("/login", authCtrl.LoginView)
	router.GET("/register", authCtrl.RegisterView)
	router.POST("/auth/login", authCtrl.Login)
	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/logout", authCtrl.Logout)

	gated := router.Group("/")
	gated.Use(middleware.SessionGate())
	{
		gated.GET("/cart", cartCtrl.View)
		gated.POST("/cart/items", cartCtrl.AddItem)
		gated.PUT("/cart/items/:productId", cartCtrl.ChangeQuantity)
		gated.DELETE("/cart/items/:productId", cartCtrl.RemoveItem)

		gated.GET("/checkout", checkoutCtrl.View)
		gated.POST("/checkout/addresses", checkoutCtrl.SaveAddress)
		gated.DELETE("/checkout/addresses/:addressId", checkoutCtrl.DeleteAddress)
		gated.POST("/checkout/select-address", checkoutCtrl.SelectAddress)
		gated.POST("/checkout/place-order", checkoutCtrl.PlaceOrder)

		gated.GET("/orders/:userId", orderCtrl.List)
		gated.GET("/payment-success", paymentCtrl.Success)
		gated.GET("/payment-failure", paymentCtrl.Failure)
	}
}
