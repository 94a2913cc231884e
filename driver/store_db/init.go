package store_db

import (
	"context"
	"fmt"
	"os"

	"scholarly/utils/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func InitDBConnectionPool(ctx context.Context, maxConns int) (*pgxpool.Pool, error) {
	// .env is optional; container environments inject variables directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.SafeWarn("could not load .env file", "error", err)
	}

	cfg, err := pgxpool.ParseConfig(getDBConnectionString())
	if err != nil {
		logger.SafeError("failed to parse database config", "error", err)
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	if maxConns > 0 {
		cfg.MaxConns = int32(maxConns)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		logger.SafeError("failed to connect to database", "error", err)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		logger.SafeError("failed to ping database", "error", err)
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.SafeInfo("connected to database", "database", os.Getenv("DB_NAME"))

	return pool, nil
}

func getDBConnectionString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnvOrDefault("DB_HOST", "localhost"),
		getEnvOrDefault("DB_PORT", "5432"),
		getEnvOrDefault("DB_USER", "devuser"),
		getEnvOrDefault("DB_PASSWORD", "devpassword"),
		getEnvOrDefault("DB_NAME", "scholarly"),
	)
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
