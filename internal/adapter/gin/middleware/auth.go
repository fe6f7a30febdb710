package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgerrors "user-management-api/pkg/errors"
	"user-management-api/pkg/security"
)

// SwaggerPathPrefix is always exempt from authentication.
const SwaggerPathPrefix = "/swagger"

// BearerAuth rejects requests whose Authorization header is not exactly
// "Bearer <token>". Paths under exemptPrefixes (and /swagger) pass through.
// Rejected requests are aborted with 401 before any later stage runs.
func BearerAuth(token string, exemptPrefixes ...string) gin.HandlerFunc {
	exempt := append([]string{SwaggerPathPrefix}, exemptPrefixes...)

	return func(c *gin.Context) {
		if security.HasAnyPrefix(c.Request.URL.Path, exempt) {
			c.Next()
			return
		}

		if !security.MatchBearer(c.GetHeader("Authorization"), token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, pkgerrors.ErrorResponse{
				Error: pkgerrors.MsgUnauthorized,
			})
			return
		}

		c.Next()
	}
}
