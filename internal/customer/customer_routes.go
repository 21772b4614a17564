package customer

import (
	"time"

	"shopping-cart-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, limiter *middleware.RateLimiter) {
	customers := r.Group("/customers")
	{
		// signup/login are brute-force targets, keep them behind the IP limiter
		customers.POST("/signup", limiter.ByIP(5, time.Minute), handler.Signup)
		customers.POST("/login", limiter.ByIP(10, time.Minute), handler.Login)

		authenticated := customers.Group("")
		authenticated.Use(middleware.AuthMiddleware())
		{
			authenticated.GET("", handler.Me)
		}
	}
}
