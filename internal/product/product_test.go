package product_test

import (
	"testing"

	"shopping-cart-api/internal/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct_RemoveStock(t *testing.T) {
	t.Run("decrements", func(t *testing.T) {
		p := product.Product{Stock: 10}
		require.NoError(t, p.RemoveStock(3))
		assert.Equal(t, 7, p.Stock)
	})

	t.Run("can_drain_to_zero", func(t *testing.T) {
		p := product.Product{Stock: 10}
		require.NoError(t, p.RemoveStock(10))
		assert.Equal(t, 0, p.Stock)
	})

	t.Run("never_goes_negative", func(t *testing.T) {
		p := product.Product{Stock: 10}
		err := p.RemoveStock(11)
		assert.ErrorIs(t, err, product.ErrInsufficientStock)
		assert.Equal(t, 10, p.Stock)
	})
}

func TestProduct_AddStock(t *testing.T) {
	p := product.Product{Stock: 7}
	p.AddStock(3)
	assert.Equal(t, 10, p.Stock)
}
