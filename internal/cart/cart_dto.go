package cart

type AddCartRequest struct {
	ProductID int64 `json:"productId" binding:"required" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" binding:"required" validate:"required,gt=0"`
}

// CartItemResponse merges the cart item with a read-time snapshot of its
// product; the products table stays the source of truth for stock.
type CartItemResponse struct {
	CartItemID int64  `json:"cartItemId"`
	ProductID  int64  `json:"productId"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	Stock      int    `json:"stock"`
	ImageURL   string `json:"imageUrl"`
	Quantity   int    `json:"quantity"`
}
