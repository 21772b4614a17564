package main

import (
	"context"
	"os"

	"shopping-cart-api/internal/app"
	"shopping-cart-api/internal/shared/database"
	"shopping-cart-api/internal/shared/database/seed"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	db, err := app.ConnectDBWithRetry(os.Getenv("DB_URL"), 5, logger)
	if err != nil {
		logger.Fatal("could not connect to database", zap.Error(err))
	}
	defer db.Close()

	ctx := context.Background()

	if _, err := db.ExecContext(ctx, database.Schema); err != nil {
		logger.Fatal("could not apply schema", zap.Error(err))
	}

	if err := seed.SeedProducts(ctx, db, logger); err != nil {
		logger.Fatal("could not seed products", zap.Error(err))
	}
	if err := seed.SeedCustomers(ctx, db, logger); err != nil {
		logger.Fatal("could not seed customers", zap.Error(err))
	}

	logger.Info("seed complete")
}
