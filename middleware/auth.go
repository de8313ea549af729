package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"elegant-hotel/auth"
	"elegant-hotel/models"
	"elegant-hotel/utils"
)

const (
	// TokenCookie is the httponly cookie carrying the JWT.
	TokenCookie = "token"

	ContextUserID = "userID"
	ContextEmail  = "userEmail"
	ContextRole   = "userRole"
	ContextClaims = "authClaims"
)

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(TokenCookie); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}

// RequireAuth verifies the token from the cookie or Authorization header and
// puts the identity on the request context. The role claim is never trusted
// from the client side; it is re-verified from the signed token per request.
//
// A token-store failure fails open: the signature check already passed, and
// rejecting every request while Redis is down would lock out all users. The
// error is logged so the condition is visible.
func RequireAuth(jwtService *auth.JWTService, tokens auth.TokenStore, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			utils.JSONError(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		claims, err := jwtService.VerifyToken(tokenString)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		if tokens != nil && claims.ID != "" {
			revoked, err := tokens.IsRevoked(c.Request.Context(), claims.ID)
			if err != nil {
				logger.Warn("token revocation check failed, allowing request",
					zap.String("token_id", claims.ID),
					zap.Error(err),
				)
			} else if revoked {
				utils.JSONError(c, http.StatusUnauthorized, "Invalid or expired token")
				c.Abort()
				return
			}
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)
		c.Set(ContextClaims, claims)
		c.Next()
	}
}

// RequireAdmin gates admin-only endpoints. Must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextRole) != models.RoleAdmin {
			utils.JSONError(c, http.StatusForbidden, "Forbidden")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUserID returns the authenticated user id from the context.
func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get(ContextUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// IsAdmin reports whether the authenticated identity has the admin role.
func IsAdmin(c *gin.Context) bool {
	return c.GetString(ContextRole) == models.RoleAdmin
}
