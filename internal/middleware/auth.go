package middleware

import (
	"context"
	"net/http"
	"strings"

	jwtsvc "rentmarket/internal/pkg/jwt"
	"rentmarket/internal/session"

	"github.com/gin-gonic/gin"
)

// SessionChecker resolves a session ID to a live session. A nil checker
// disables revocation checks.
type SessionChecker interface {
	Get(ctx context.Context, id string) (*session.Session, error)
}

// JWTAuth requires a valid Bearer token and, when a session store is wired,
// a session that has not been revoked or expired.
func JWTAuth(jwt *jwtsvc.Service, sessions SessionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, code, ok := extractClaims(c, jwt)
		if !ok {
			abortUnauthorized(c, code)
			return
		}

		if sessions != nil && claims.SessionID != "" {
			if _, err := sessions.Get(c.Request.Context(), claims.SessionID); err != nil {
				abortUnauthorized(c, "SESSION_EXPIRED")
				return
			}
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("session_id", claims.SessionID)

		c.Next()
	}
}

// OptionalJWTAuth populates the viewer from a Bearer token when one is
// present and valid, and lets the request through anonymously otherwise.
// Public pages use it so equipment data is never gated on the auth check.
func OptionalJWTAuth(jwt *jwtsvc.Service, sessions SessionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, _, ok := extractClaims(c, jwt)
		if ok {
			live := true
			if sessions != nil && claims.SessionID != "" {
				if _, err := sessions.Get(c.Request.Context(), claims.SessionID); err != nil {
					live = false
				}
			}
			if live {
				c.Set("user_id", claims.UserID)
				c.Set("role", claims.Role)
				c.Set("session_id", claims.SessionID)
			}
		}

		c.Next()
	}
}

func extractClaims(c *gin.Context, jwt *jwtsvc.Service) (*jwtsvc.Claims, string, bool) {
	h := c.GetHeader("Authorization")
	if h == "" {
		return nil, "AUTH_HEADER_MISSING", false
	}

	if !strings.HasPrefix(h, "Bearer ") {
		return nil, "INVALID_AUTH_FORMAT", false
	}

	tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	if tokenStr == "" {
		return nil, "INVALID_AUTH_FORMAT", false
	}

	claims, err := jwt.ValidateToken(tokenStr)
	if err != nil {
		return nil, "INVALID_TOKEN", false
	}

	return claims, "", true
}

func abortUnauthorized(c *gin.Context, code string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": "Authentication required",
		},
	})
}
