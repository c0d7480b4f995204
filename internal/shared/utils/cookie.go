package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"complaintbox/internal/shared/config"
	"complaintbox/internal/shared/constants"
)

// SetSessionCookie sets the admin session token as an HttpOnly cookie.
func SetSessionCookie(c *gin.Context, cookieConfig config.CookieConfig, token string, maxAge int) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))

	c.SetCookie(
		constants.SessionCookieName,
		token,
		maxAge,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true, // HttpOnly
	)
}

// ClearSessionCookie expires the admin session cookie immediately.
// Logout is client-side cookie expiry only; tokens already issued keep
// verifying until their own expiry.
func ClearSessionCookie(c *gin.Context, cookieConfig config.CookieConfig) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))

	c.SetCookie(
		constants.SessionCookieName,
		"",
		-1,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true, // HttpOnly
	)
}

// GetSessionToken extracts the session token from the request cookie.
// Returns an empty string when the cookie is absent.
func GetSessionToken(c *gin.Context) string {
	token, err := c.Cookie(constants.SessionCookieName)
	if err != nil {
		return ""
	}
	return token
}

func parseSameSite(value string) http.SameSite {
	switch value {
	case "Strict", "strict":
		return http.SameSiteStrictMode
	case "None", "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
