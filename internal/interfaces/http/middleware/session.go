package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/retrorevival/storefront/internal/infrastructure/config"
)

// SessionIDKey is the gin context key holding the visitor session ID
const SessionIDKey = "session_id"

// Session assigns every visitor a session ID cookie. The ID keys the
// persisted cart, so it must be stable across requests; an existing
// valid cookie is reused, anything else is replaced.
func Session(cfg *config.HTTPConfig) gin.HandlerFunc {
	sameSite := parseSameSite(cfg.CookieSameSite)

	return func(c *gin.Context) {
		sessionID := ""
		if cookie, err := c.Cookie(cfg.CookieName); err == nil {
			if _, err := uuid.Parse(cookie); err == nil {
				sessionID = cookie
			}
		}

		if sessionID == "" {
			sessionID = uuid.NewString()
			http.SetCookie(c.Writer, &http.Cookie{
				Name:     cfg.CookieName,
				Value:    sessionID,
				Path:     "/",
				MaxAge:   int(cfg.CookieMaxAge.Seconds()),
				Secure:   cfg.CookieSecure,
				HttpOnly: true,
				SameSite: sameSite,
			})
		}

		c.Set(SessionIDKey, sessionID)
		c.Next()
	}
}

// GetSessionID returns the visitor session ID set by Session
func GetSessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}

func parseSameSite(mode string) http.SameSite {
	switch mode {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
