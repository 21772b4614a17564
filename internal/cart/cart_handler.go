package cart

import (
	"net/http"
	"strconv"

	"shopping-cart-api/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) List(c *gin.Context) {
	username := c.GetString("username")

	items, err := h.service.FindCartItemsByCustomerName(c.Request.Context(), username)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *Handler) Add(c *gin.Context) {
	username := c.GetString("username")

	var req AddCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "invalid cart item payload")
		return
	}

	item, err := h.service.AddCart(c.Request.Context(), username, req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *Handler) Delete(c *gin.Context) {
	username := c.GetString("username")

	cartItemID, err := strconv.ParseInt(c.Param("cartId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "invalid cart item id")
		return
	}

	if err := h.service.DeleteCart(c.Request.Context(), username, cartItemID); err != nil {
		response.FromError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) UpdateQuantity(c *gin.Context) {
	username := c.GetString("username")

	cartItemID, err := strconv.ParseInt(c.Param("cartItemId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "invalid cart item id")
		return
	}

	quantity, err := strconv.Atoi(c.Query("quantity"))
	if err != nil || quantity <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "quantity must be a positive integer")
		return
	}

	if err := h.service.UpdateQuantity(c.Request.Context(), username, cartItemID, quantity); err != nil {
		response.FromError(c, err)
		return
	}

	c.Status(http.StatusOK)
}
