package handlers

import (
	"crypto/subtle"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"dailydo/internal/config"
	"dailydo/internal/middleware"
)

type AuthHandler struct {
	cfg *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// GET /login
func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", nil)
}

// POST /login
//
// Wrong keys answer 200 with a message so the htmx form can swap it inline.
// A match sets the session cookie to a bcrypt hash of the key and tells htmx
// to navigate home.
func (h *AuthHandler) Login(c *gin.Context) {
	key := c.PostForm("login-key")
	if key == "" {
		c.String(http.StatusOK, "Missing login key")
		return
	}
	if subtle.ConstantTimeCompare([]byte(key), []byte(h.cfg.Auth.LoginKey)) != 1 {
		log.Printf("[auth][login] invalid login key attempt")
		c.String(http.StatusOK, "Invalid login key")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[auth][login][err] bcrypt generate: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, string(hash), h.cfg.Auth.CookieMaxAge, "/", "", false, true)
	c.Header("HX-Redirect", "/")
	log.Printf("[auth][login] ok")
	c.String(http.StatusOK, "ok")
}
