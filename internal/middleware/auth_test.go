package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"dailydo/internal/config"
)

func newTestRouter(t *testing.T) (*gin.Engine, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Auth.LoginKey = "test-login-key"

	r := gin.New()
	r.Use(AuthMiddleware(cfg))
	r.GET("/protected", func(c *gin.Context) {
		c.String(http.StatusOK, "secret")
	})
	return r, cfg
}

func request(r *gin.Engine, cookie string, htmx bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: cookie})
	}
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("redirects without cookie", func(t *testing.T) {
		r, _ := newTestRouter(t)
		w := request(r, "", false)

		if w.Code != http.StatusFound {
			t.Errorf("status = %d, want 302", w.Code)
		}
		if loc := w.Header().Get("Location"); loc != "/login" {
			t.Errorf("Location = %q, want /login", loc)
		}
	})

	t.Run("htmx gets HX-Redirect header", func(t *testing.T) {
		r, _ := newTestRouter(t)
		w := request(r, "", true)

		if w.Code != http.StatusFound {
			t.Errorf("status = %d, want 302", w.Code)
		}
		if hx := w.Header().Get("HX-Redirect"); hx != "/login" {
			t.Errorf("HX-Redirect = %q, want /login", hx)
		}
	})

	t.Run("redirects on bad cookie", func(t *testing.T) {
		r, _ := newTestRouter(t)
		w := request(r, "wrong_value", false)

		if w.Code != http.StatusFound {
			t.Errorf("status = %d, want 302", w.Code)
		}
	})

	t.Run("redirects htmx on bad cookie", func(t *testing.T) {
		r, _ := newTestRouter(t)
		w := request(r, "wrong_value", true)

		if w.Code != http.StatusFound {
			t.Errorf("status = %d, want 302", w.Code)
		}
		if hx := w.Header().Get("HX-Redirect"); hx != "/login" {
			t.Errorf("HX-Redirect = %q, want /login", hx)
		}
	})

	t.Run("passes with valid cookie", func(t *testing.T) {
		r, cfg := newTestRouter(t)
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Auth.LoginKey), bcrypt.MinCost)
		if err != nil {
			t.Fatal(err)
		}
		w := request(r, string(hash), false)

		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", w.Code)
		}
		if w.Body.String() != "secret" {
			t.Errorf("body = %q, want %q", w.Body.String(), "secret")
		}
	})
}
