package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"kotibus/models"
	"kotibus/utils"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Authorization header required",
			})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid authorization header format",
			})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenParts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid or expired token",
				Error:   err.Error(),
			})
			c.Abort()
			return
		}

		c.Set("session_id", claims.SessionID)
		c.Set("session_name", claims.Name)
		c.Set("session_email", claims.Email)
		c.Set("is_guest", claims.IsGuest)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches the session identity when a valid
// bearer token is present but lets the request through either way.
// Checkout uses it: anonymous submissions are treated as guest orders.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) == 2 && tokenParts[0] == "Bearer" {
			if claims, err := utils.ValidateToken(tokenParts[1]); err == nil {
				c.Set("session_id", claims.SessionID)
				c.Set("session_name", claims.Name)
				c.Set("session_email", claims.Email)
				c.Set("is_guest", claims.IsGuest)
			}
		}
		c.Next()
	}
}

// SessionFromContext rebuilds the request identity set by AuthMiddleware.
func SessionFromContext(c *gin.Context) models.Session {
	return models.Session{
		ID:      c.GetString("session_id"),
		Name:    c.GetString("session_name"),
		Email:   c.GetString("session_email"),
		IsGuest: c.GetBool("is_guest"),
	}
}
