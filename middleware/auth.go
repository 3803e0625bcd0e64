package middleware

import (
	"log"
	"net/http"

	"buyfish/models"
	"buyfish/services"

	"github.com/gin-gonic/gin"
)

const (
	SessionIDKey = "session_id"
	SessionKey   = "session"
	UserIDKey    = "user_id"
)

// LoadSession restores the session behind the browser's cookie, if any, and
// hangs it on the context. It never redirects; public views use it to know
// who is browsing.
func LoadSession(sessions *services.SessionService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cookieName)
		if err != nil || sessionID == "" {
			c.Next()
			return
		}

		session, err := sessions.Restore(c.Request.Context(), sessionID)
		if err != nil {
			log.Println("Session restore failed:", err)
			c.Next()
			return
		}
		if session != nil {
			c.Set(SessionIDKey, sessionID)
			c.Set(SessionKey, session)
			c.Set(UserIDKey, session.UserID)
		}
		c.Next()
	}
}

// SessionGate protects a route: unauthenticated visitors are redirected to
// /login. Runs after LoadSession. There is no return-path memory; after
// signing in the user lands on the home page.
func SessionGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := CurrentSession(c)
		if session == nil || !session.IsAuthenticated {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentSession returns the restored session, or nil for anonymous visitors.
func CurrentSession(c *gin.Context) *models.Session {
	value, exists := c.Get(SessionKey)
	if !exists {
		return nil
	}
	session, ok := value.(*models.Session)
	if !ok {
		return nil
	}
	return session
}
