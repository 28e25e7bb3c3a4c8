package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"shop-catalog-api/internal/auth"
)

// BasicAuth guards a route group with the shared credential set. The same
// credential check backs the API Gateway authorizer, so the gin server and
// the lambda deployment accept identical Authorization headers.
func BasicAuth(authorizer *auth.Authorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")

		principal, allowed := authorizer.Authorize(header)
		if !allowed {
			logrus.WithFields(logrus.Fields{
				"path":      c.Request.URL.Path,
				"client_ip": c.ClientIP(),
			}).Warn("Request rejected by basic auth")

			c.Header("WWW-Authenticate", `Basic realm="import"`)
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Unauthorized",
				"message": "Valid credentials are required",
			})
			c.Abort()
			return
		}

		c.Set("principal", principal)
		c.Next()
	}
}
