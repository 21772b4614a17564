package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"shopping-cart-api/internal/pkg/apperror"
	"shopping-cart-api/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates the Bearer token and puts the authenticated
// username on the context; downstream handlers never see an unauthenticated
// request.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "missing bearer token")
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %q", token.Method.Alg())
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !token.Valid {
			message := "invalid authentication token"
			if err != nil && strings.Contains(err.Error(), "expired") {
				message = "authentication token expired"
			}
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, message)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "invalid token claims")
			return
		}

		username, ok := claims["username"].(string)
		if !ok || username == "" {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "username not found in token")
			return
		}

		c.Set("username", username)
		c.Next()
	}
}
