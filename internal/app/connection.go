package app

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const retryDelay = 5 * time.Second

func ConnectDBWithRetry(dsn string, maxRetries int, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	for i := 1; i <= maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err == nil {
			if err = db.Ping(); err == nil {
				logger.Info("connected to database")
				return db, nil
			}
		}

		logger.Warn("database connection retry failed",
			zap.Int("attempt", i), zap.Int("max", maxRetries), zap.Error(err))
		time.Sleep(retryDelay)
	}

	return nil, err
}

// ConnectRedisWithRetry returns nil without error when addr is empty: redis
// only backs rate limiting, which degrades to a pass-through.
func ConnectRedisWithRetry(addr string, maxRetries int, logger *zap.Logger) (*redis.Client, error) {
	if addr == "" {
		logger.Info("redis disabled, no address configured")
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})

	var err error
	for i := 1; i <= maxRetries; i++ {
		if err = rdb.Ping(context.Background()).Err(); err == nil {
			logger.Info("connected to redis")
			return rdb, nil
		}

		logger.Warn("redis connection retry failed",
			zap.Int("attempt", i), zap.Int("max", maxRetries), zap.Error(err))
		time.Sleep(retryDelay)
	}

	return nil, err
}

// ConnectKafkaWithRetry returns nil without error when broker is empty;
// cart events are best effort and simply not published then.
func ConnectKafkaWithRetry(broker, topic string, maxRetries int, logger *zap.Logger) (*kafka.Writer, error) {
	if broker == "" {
		logger.Info("kafka disabled, no broker configured")
		return nil, nil
	}

	var err error
	for i := 1; i <= maxRetries; i++ {
		var conn *kafka.Conn
		conn, err = kafka.Dial("tcp", broker)
		if err == nil {
			conn.Close()
			logger.Info("connected to kafka")
			return &kafka.Writer{
				Addr:     kafka.TCP(broker),
				Topic:    topic,
				Balancer: &kafka.LeastBytes{},
			}, nil
		}

		logger.Warn("kafka connection retry failed",
			zap.Int("attempt", i), zap.Int("max", maxRetries), zap.Error(err))
		time.Sleep(retryDelay)
	}

	return nil, err
}
