package handler

import (
	"net/http"
	"time"

	"github.com/go-pet-adoption-api/internal/transport/http/middleware"
)

// CookieConfig controls how credential cookies are written.
type CookieConfig struct {
	Secure     bool
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func (c CookieConfig) setAccess(w http.ResponseWriter, token string) {
	c.set(w, middleware.AccessTokenCookie, token, c.AccessTTL)
}

func (c CookieConfig) setRefresh(w http.ResponseWriter, token string) {
	c.set(w, middleware.RefreshTokenCookie, token, c.RefreshTTL)
}

func (c CookieConfig) clearAll(w http.ResponseWriter) {
	for _, name := range []string{middleware.AccessTokenCookie, middleware.RefreshTokenCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   c.Secure,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

func (c CookieConfig) set(w http.ResponseWriter, name, value string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func cookieValue(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}
