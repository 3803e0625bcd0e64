package controllers

import (
	"errors"
	"log"
	"net/http"

	"buyfish/config"
	"buyfish/middleware"
	"buyfish/models"
	"buyfish/services"
	"buyfish/shopapi"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Shop     *shopapi.Client
	Sessions *services.SessionService
}

func (ctrl *AuthController) setSessionCookie(c *gin.Context, sessionID string) {
	maxAge := int(config.AppConfig.SessionTTL.Seconds())
	secure := config.AppConfig.AppEnv == "production"
	c.SetCookie(config.AppConfig.SessionCookie, sessionID, maxAge, "/", "", secure, true)
}

// LoginView godoc
// @Summary Sign-in view
// @Description Sign-in page view model; authenticated visitors are sent home
// @Tags Authentication
// @Produce json
// @Success 200 {object} models.Response
// @Router /login [get]
func (ctrl *AuthController) LoginView(c *gin.Context) {
	if session := middleware.CurrentSession(c); session != nil && session.IsAuthenticated {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.JSON(200, gin.H{"success": true, "data": gin.H{"view": "login"}})
}

// RegisterView godoc
// @Summary Registration view
// @Tags Authentication
// @Produce json
// @Success 200 {object} models.Response
// @Router /register [get]
func (ctrl *AuthController) RegisterView(c *gin.Context) {
	if session := middleware.CurrentSession(c); session != nil && session.IsAuthenticated {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.JSON(200, gin.H{"success": true, "data": gin.H{"view": "register"}})
}

// Login godoc
// @Summary Sign in
// @Description Forward credentials to the shop's auth service and establish a session
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	creds, err := ctrl.Shop.Login(c.Request.Context(), req)
	if err != nil {
		var apiErr *shopapi.APIError
		if errors.As(err, &apiErr) {
			c.JSON(401, gin.H{"success": false, "message": apiErr.Message})
			return
		}
		log.Println("Login call failed:", err)
		c.JSON(502, gin.H{"success": false, "message": "Sign-in is unavailable right now"})
		return
	}

	sessionID := services.NewSessionID()
	if err := ctrl.Sessions.Establish(c.Request.Context(), sessionID, creds.Token, creds.User); err != nil {
		log.Println("Failed to persist session:", err)
	}
	ctrl.setSessionCookie(c, sessionID)

	c.JSON(200, gin.H{
		"success": true,
		"message": "Signed in",
		"data":    gin.H{"user": creds.User},
	})
}

// Register godoc
// @Summary Register
// @Description Forward a new account to the shop's auth service and establish a session
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Register Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	creds, err := ctrl.Shop.Register(c.Request.Context(), req)
	if err != nil {
		var apiErr *shopapi.APIError
		if errors.As(err, &apiErr) {
			c.JSON(400, gin.H{"success": false, "message": apiErr.Message})
			return
		}
		log.Println("Register call failed:", err)
		c.JSON(502, gin.H{"success": false, "message": "Registration is unavailable right now"})
		return
	}

	sessionID := services.NewSessionID()
	if err := ctrl.Sessions.Establish(c.Request.Context(), sessionID, creds.Token, creds.User); err != nil {
		log.Println("Failed to persist session:", err)
	}
	ctrl.setSessionCookie(c, sessionID)

	c.JSON(201, gin.H{
		"success": true,
		"message": "Registration successful",
		"data":    gin.H{"user": creds.User},
	})
}

// Logout godoc
// @Summary Sign out
// @Tags Authentication
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	if sessionID, err := c.Cookie(config.AppConfig.SessionCookie); err == nil && sessionID != "" {
		if err := ctrl.Sessions.Destroy(c.Request.Context(), sessionID); err != nil {
			log.Println("Failed to destroy session:", err)
		}
	}
	c.SetCookie(config.AppConfig.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(200, gin.H{"success": true, "message": "Signed out"})
}
