package cart

import (
	"shopping-cart-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	cartItems := r.Group("/cartItems")
	cartItems.Use(middleware.AuthMiddleware())
	{
		cartItems.GET("", handler.List)
		cartItems.POST("", handler.Add)
		cartItems.DELETE("/:cartId", handler.Delete)
		cartItems.PATCH("/:cartItemId", handler.UpdateQuantity)
	}
}
