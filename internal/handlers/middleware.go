package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	sessionPhoneKey = "user_phone"
	ctxPhoneKey     = "phone"
)

// RequireSession rejects callers without an authenticated session and
// stashes the session's phone identifier on the request context.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		phone, _ := sess.Get(sessionPhoneKey).(string)
		if phone == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set(ctxPhoneKey, phone)
		c.Next()
	}
}

func sessionPhone(c *gin.Context) string {
	v, _ := c.Get(ctxPhoneKey)
	phone, _ := v.(string)
	return phone
}
