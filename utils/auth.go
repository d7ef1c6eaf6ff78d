package utils

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"anita-beauty-backend/config"
)

// CheckAdminPassword compares the supplied password against the configured
// shared secret in constant time. An unset secret never matches.
func CheckAdminPassword(supplied, configured string) bool {
	if configured == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(supplied), []byte(configured)) == 1
}

// AdminGate guards administrative routes with HTTP Basic auth. The
// username is ignored; only the shared password counts.
func AdminGate(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, password, ok := c.Request.BasicAuth()
		if !ok || !CheckAdminPassword(password, cfg.AdminPassword) {
			c.Header("WWW-Authenticate", `Basic realm="admin"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Next()
	}
}
