package middleware

import (
	"errors"
	"net/http"
	"strings"

	"oficina_pro/internal/infrastructure/auth"
	"oficina_pro/pkg"
	"oficina_pro/pkg/logger"

	"github.com/gin-gonic/gin"
)

const ContextUserID = "user_id"

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing bearer token", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized)
)

// TokenValidator is implemented by auth.TokenService.
type TokenValidator interface {
	Validate(token string) (auth.Claims, error)
}

// Auth requires a valid "Authorization: Bearer <jwt>" header and stores the
// authenticated user id in the gin context.
func Auth(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		claims, err := tokens.Validate(header)
		if err != nil {
			if !errors.Is(err, auth.ErrExpiredToken) {
				logger.Warnf(c.Request.Context(), "[http][auth] rejected token path=%s err=%v", c.FullPath(), err)
			}
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Next()
	}
}

// UserID returns the authenticated user id, empty outside Auth.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}
