package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionCookie names the cookie carrying the dashboard session id.
	SessionCookie = "finboard_session"
	// SessionIDKey is the context key holding the session id.
	SessionIDKey = "sessionID"
)

// Session returns a Gin middleware that makes sure every request carries a
// dashboard session id, issuing a new cookie when the client has none.
func Session(maxAge int) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(SessionCookie)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.New().String()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookie, id, maxAge, "/", "", false, true)
		}
		c.Set(SessionIDKey, id)
		c.Next()
	}
}
