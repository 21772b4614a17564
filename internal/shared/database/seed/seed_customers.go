package seed

import (
	"context"
	"database/sql"

	"shopping-cart-api/internal/customer"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SeedCustomers creates a demo account (alice / password1234) for local use.
func SeedCustomers(ctx context.Context, db *sql.DB, logger *zap.Logger) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT count(*) FROM customers`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		logger.Info("customers already seeded, skipping", zap.Int("count", count))
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("password1234"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	repo := customer.NewRepository(db)
	created, err := repo.Create(ctx, customer.CreateCustomerParams{
		Username:    "alice",
		Password:    string(hashed),
		PhoneNumber: "01022728572",
		Address:     "221B Baker Street",
	})
	if err != nil {
		return err
	}

	logger.Info("seeded customer", zap.Int64("id", created.ID), zap.String("username", created.Username))
	return nil
}
