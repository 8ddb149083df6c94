package authorization

import (
	"net/http"
	"strings"

	"ClinicBook/config/jwt"
	"ClinicBook/config/logger"
	"ClinicBook/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Context keys set by JWTAuth.
const (
	ContextID   = "id"
	ContextRole = "role"
)

type TokenVerifier interface {
	ValidateJWT(token string) (*jwt.Claims, error)
}

/*
* Read the bearer token from the Authorization header
* Validate it, abort with 401 when missing or invalid
* Put id and role in the context for the handlers
 */
func JWTAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, util.FailedResponse(
				util.NewError(util.ErrUnauthorized, util.NO_TOKEN_PROVIDED)))
			return
		}

		claims, err := verifier.ValidateJWT(strings.TrimSpace(parts[1]))
		if err != nil {
			logger.Log.Debug("rejected session token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, util.FailedResponse(
				util.NewError(util.ErrUnauthorized, util.TOKEN_EXPIRED_OR_INVALID)))
			return
		}

		c.Set(ContextID, claims.ID)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// RequireRoles must run after JWTAuth.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := c.GetString(ContextRole)
		for _, r := range roles {
			if r == current {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, util.FailedResponse(
			util.NewError(util.ErrForbidden, util.ACCESS_DENIED)))
	}
}

// RequireOwner lets a request through when the path param equals the token
// id. The bypass roles may act on any id. Must run after JWTAuth.
func RequireOwner(param string, bypass ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := c.GetString(ContextRole)
		for _, r := range bypass {
			if r == current {
				c.Next()
				return
			}
		}
		if id := c.GetString(ContextID); id != "" && id == c.Param(param) {
			c.Next()
			return
		}
		c.AbortWithStatusJSON(http.StatusForbidden, util.FailedResponse(
			util.NewError(util.ErrForbidden, util.ACCESS_DENIED)))
	}
}
