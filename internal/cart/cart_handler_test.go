package cart_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shopping-cart-api/internal/cart"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCartService struct {
	items     []cart.CartItemResponse
	added     cart.CartItemResponse
	err       error
	lastUser  string
	lastID    int64
	lastQty   int
	deleteLog []int64
}

func (f *fakeCartService) FindCartItemsByCustomerName(ctx context.Context, customerName string) ([]cart.CartItemResponse, error) {
	f.lastUser = customerName
	return f.items, f.err
}

func (f *fakeCartService) AddCart(ctx context.Context, customerName string, req cart.AddCartRequest) (cart.CartItemResponse, error) {
	f.lastUser = customerName
	return f.added, f.err
}

func (f *fakeCartService) DeleteCart(ctx context.Context, customerName string, cartItemID int64) error {
	f.lastUser = customerName
	f.deleteLog = append(f.deleteLog, cartItemID)
	return f.err
}

func (f *fakeCartService) UpdateQuantity(ctx context.Context, customerName string, cartItemID int64, quantity int) error {
	f.lastUser = customerName
	f.lastID = cartItemID
	f.lastQty = quantity
	return f.err
}

func newCartRouter(svc cart.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("username", "alice") })

	h := cart.NewHandler(svc)
	api := r.Group("/api")
	cartItems := api.Group("/cartItems")
	{
		cartItems.GET("", h.List)
		cartItems.POST("", h.Add)
		cartItems.DELETE("/:cartId", h.Delete)
		cartItems.PATCH("/:cartItemId", h.UpdateQuantity)
	}
	return r
}

func TestCartHandler_List(t *testing.T) {
	svc := &fakeCartService{items: []cart.CartItemResponse{
		{CartItemID: 1, ProductID: 10, Name: "banana", Price: 1_000, Stock: 7, Quantity: 3},
	}}
	router := newCartRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cartItems", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", svc.lastUser)

	var body []cart.CartItemResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "banana", body[0].Name)
}

func TestCartHandler_Add(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeCartService{added: cart.CartItemResponse{
			CartItemID: 5, ProductID: 10, Name: "banana", Price: 1_000, Stock: 7, Quantity: 3,
		}}
		router := newCartRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/cartItems",
			strings.NewReader(`{"productId": 10, "quantity": 3}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var body cart.CartItemResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, int64(5), body.CartItemID)
		assert.Equal(t, 7, body.Stock)
	})

	t.Run("malformed_body", func(t *testing.T) {
		router := newCartRouter(&fakeCartService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/cartItems",
			strings.NewReader(`{"productId": "banana"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("service_error_maps_to_envelope", func(t *testing.T) {
		svc := &fakeCartService{err: cart.ErrNotOwnedByCustomer}
		router := newCartRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/cartItems",
			strings.NewReader(`{"productId": 10, "quantity": 1}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusForbidden, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "FORBIDDEN", body["code"])
	})
}

func TestCartHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeCartService{}
		router := newCartRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/cartItems/5", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, []int64{5}, svc.deleteLog)
	})

	t.Run("non_numeric_id", func(t *testing.T) {
		router := newCartRouter(&fakeCartService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/cartItems/abc", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not_found", func(t *testing.T) {
		svc := &fakeCartService{err: cart.ErrCartItemNotFound}
		router := newCartRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/cartItems/404", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCartHandler_UpdateQuantity(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeCartService{}
		router := newCartRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/api/cartItems/5?quantity=2", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(5), svc.lastID)
		assert.Equal(t, 2, svc.lastQty)
	})

	t.Run("missing_quantity", func(t *testing.T) {
		router := newCartRouter(&fakeCartService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/api/cartItems/5", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("non_positive_quantity", func(t *testing.T) {
		router := newCartRouter(&fakeCartService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/api/cartItems/5?quantity=0", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
