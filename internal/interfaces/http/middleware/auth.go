package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shopadmin/backend/internal/infrastructure/auth"
	"github.com/shopadmin/backend/internal/interfaces/http/dto"
)

const (
	claimsKey    = "auth_claims"
	bearerPrefix = "Bearer "
)

// RequireAuth validates the bearer token on every request and stores the
// claims in the gin context. Revoked tokens are rejected; a blacklist
// lookup failure fails open so a Redis outage cannot take down reads.
func RequireAuth(jwtService *auth.JWTService, blacklist auth.TokenBlacklist, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "Missing authorization header")
			return
		}
		if !strings.HasPrefix(header, bearerPrefix) {
			abortUnauthorized(c, "Authorization header must use the Bearer scheme")
			return
		}

		tokenString := strings.TrimPrefix(header, bearerPrefix)
		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized,
					dto.NewErrorResponse("TOKEN_EXPIRED", "Token has expired"))
				return
			}
			abortUnauthorized(c, "Invalid token")
			return
		}

		if blacklist != nil {
			revoked, err := blacklist.IsRevoked(c.Request.Context(), claims.ID)
			if err != nil {
				logger.Error("Failed to check token revocation",
					zap.String("jti", claims.ID), zap.Error(err))
			} else if revoked {
				c.AbortWithStatusJSON(http.StatusUnauthorized,
					dto.NewErrorResponse("TOKEN_REVOKED", "Token has been revoked"))
				return
			}
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireRole allows only the named roles past. Must run after RequireAuth.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			abortUnauthorized(c, "Authentication required")
			return
		}
		if !allowed[claims.Role] {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrCodeForbidden, "Insufficient permissions"))
			return
		}
		c.Next()
	}
}

// GetClaims returns the validated claims for the current request, nil when
// the request did not pass RequireAuth
func GetClaims(c *gin.Context) *auth.Claims {
	if v, exists := c.Get(claimsKey); exists {
		if claims, ok := v.(*auth.Claims); ok {
			return claims
		}
	}
	return nil
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponse(dto.ErrCodeUnauthorized, message))
}
