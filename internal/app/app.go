package app

import (
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const cartEventsTopic = "cart.events"

// BuildApp connects infrastructure and registers every module's routes on
// the router. DB is mandatory; redis and kafka are optional extras.
func BuildApp(router *gin.Engine, logger *zap.Logger) error {
	db, err := ConnectDBWithRetry(os.Getenv("DB_URL"), 5, logger)
	if err != nil {
		return err
	}

	redisClient, err := ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5, logger)
	if err != nil {
		return err
	}

	kafkaWriter, err := ConnectKafkaWithRetry(os.Getenv("KAFKA_BROKER"), cartEventsTopic, 5, logger)
	if err != nil {
		return err
	}

	registerModules(router, db, redisClient, kafkaWriter, logger)
	return nil
}
