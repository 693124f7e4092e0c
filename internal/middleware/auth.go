package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"dailydo/internal/config"
)

// SessionCookie holds a bcrypt hash of the login key, never the key itself.
const SessionCookie = "_s_key"

// AuthMiddleware gates every protected route on the session cookie. The hash
// check is constant-time via bcrypt. Failures redirect to the login page; for
// htmx requests the redirect is also announced with the HX-Redirect header so
// partial swaps navigate the whole page.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		redirectToLogin := func() {
			if c.GetHeader("HX-Request") == "true" {
				c.Header("HX-Redirect", "/login")
			}
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
		}

		hash, err := c.Cookie(SessionCookie)
		if err != nil || hash == "" {
			redirectToLogin()
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(cfg.Auth.LoginKey)); err != nil {
			redirectToLogin()
			return
		}
		c.Next()
	}
}
