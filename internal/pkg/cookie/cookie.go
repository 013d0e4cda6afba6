package cookie

import (
	"net/http"
	"time"

	"grandehotel-core/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const accessTokenName = "access_token"

// SetAccessToken writes the HttpOnly access-token cookie.
func SetAccessToken(c *gin.Context, cfg config.CookieConfig, token string, expiry time.Duration) {
	c.SetSameSite(sameSiteMode(cfg.SameSite))
	c.SetCookie(accessTokenName, token, int(expiry.Seconds()), "/", cfg.Domain, cfg.Secure, true)
}

// ClearAccessToken expires the access-token cookie immediately.
func ClearAccessToken(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(sameSiteMode(cfg.SameSite))
	c.SetCookie(accessTokenName, "", -1, "/", cfg.Domain, cfg.Secure, true)
}

// AccessToken returns the cookie value, or "" when absent.
func AccessToken(c *gin.Context) string {
	token, _ := c.Cookie(accessTokenName)
	return token
}

func sameSiteMode(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
