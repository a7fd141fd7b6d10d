package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gallery/internal/config"
)

const identityKey = "admin_identity"

// RequireAdminMiddleware gates mutating admin routes behind a valid session
// cookie. Public reads never pass through it.
func RequireAdminMiddleware(cfg config.AuthConfig) gin.HandlerFunc {
	secret := []byte(cfg.JWTSecret)
	return func(c *gin.Context) {
		if cfg.Disabled {
			c.Next()
			return
		}
		cookie, err := c.Cookie(cfg.CookieName)
		if err != nil || cookie == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
			return
		}
		identity, err := VerifyToken(secret, cookie)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired or invalid"})
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

// IdentityFromGin returns the verified admin identity, or nil outside an
// authenticated request.
func IdentityFromGin(c *gin.Context) *AdminIdentity {
	if c == nil {
		return nil
	}
	val, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	identity, _ := val.(*AdminIdentity)
	return identity
}
