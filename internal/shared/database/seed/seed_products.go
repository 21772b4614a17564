package seed

import (
	"context"
	"database/sql"

	"shopping-cart-api/internal/product"

	"go.uber.org/zap"
)

// SeedProducts loads the demo catalog. Idempotent: an already-seeded catalog
// is left alone.
func SeedProducts(ctx context.Context, db *sql.DB, logger *zap.Logger) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT count(*) FROM products`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		logger.Info("products already seeded, skipping", zap.Int("count", count))
		return nil
	}

	repo := product.NewRepository(db)
	catalog := []product.Product{
		{Name: "banana", Price: 1_000, Stock: 10, ImageURL: "https://img.example.com/banana.png"},
		{Name: "apple", Price: 2_000, Stock: 20, ImageURL: "https://img.example.com/apple.png"},
		{Name: "chocolate", Price: 4_500, Stock: 15, ImageURL: "https://img.example.com/chocolate.png"},
	}

	for _, p := range catalog {
		id, err := repo.Create(ctx, p)
		if err != nil {
			return err
		}
		logger.Info("seeded product", zap.Int64("id", id), zap.String("name", p.Name))
	}
	return nil
}
