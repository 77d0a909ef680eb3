package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"go-medlink-backend/config"
	"go-medlink-backend/internal/delivery/http/response"
	"go-medlink-backend/internal/domain"
	"go-medlink-backend/pkg/auth"
	"go-medlink-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware verifies the Supabase-issued JWT (HS256 via shared secret or
// RS256 via JWKS) and makes sure a profile row exists for the authenticated
// user before the request reaches a handler.
func AuthMiddleware(jwksProvider *auth.Provider, cfg *config.Config, profileUC domain.ProfileUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		var tokenString string

		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else {
			cookie, err := c.Cookie("auth_token")
			if err == nil && cookie != "" {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); ok {
				if cfg.SupabaseJWTSecret == "" {
					return nil, fmt.Errorf("HS256 token received but SUPABASE_JWT_SECRET is not configured")
				}
				return []byte(cfg.SupabaseJWTSecret), nil
			}
			if _, ok := token.Method.(*jwt.SigningMethodRSA); ok {
				return jwksProvider.KeyFunc(token)
			}
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		})

		if err != nil || !token.Valid {
			logger.Log.Debug("token validation failed", "error", err)
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Invalid claims", nil)
			c.Abort()
			return
		}

		// Supabase standard claims
		sub, _ := claims["sub"].(string)
		email, _ := claims["email"].(string)
		if sub == "" {
			response.Error(c, http.StatusUnauthorized, "Token missing subject", nil)
			c.Abort()
			return
		}

		// Supabase stores the signup display name in user_metadata
		var fullName string
		if meta, ok := claims["user_metadata"].(map[string]interface{}); ok {
			fullName, _ = meta["full_name"].(string)
		}

		if _, err := profileUC.EnsureProfileExists(c.Request.Context(), sub, email, fullName); err != nil {
			logger.Log.Warn("failed to ensure profile exists", "user_id", sub, "error", err)
		}

		c.Set(string(domain.KeyUserID), sub)
		c.Set(string(domain.KeyUserEmail), email)
		c.Next()
	}
}
