package main

import (
	"context"
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"scholarly/config"
	"scholarly/driver/store_db"
	"scholarly/utils/logger"
	"scholarly/utils/migration"
)

//go:embed migrations
var migrationsFS embed.FS

func main() {
	var (
		command = flag.String("command", "up", "Migration command (up, down, status)")
		steps   = flag.Int("steps", 1, "Number of steps for down migration")
		verbose = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logLevel := cfg.Logging.Level
	if *verbose {
		logLevel = "debug"
	}
	log := logger.InitLoggerWithConfig(logLevel, cfg.Logging.Format)

	ctx := context.Background()

	pool, err := store_db.InitDBConnectionPool(ctx, cfg.Database.MaxConnections)
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	sqlFS, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		log.Error("Failed to open embedded migrations", "error", err)
		os.Exit(1)
	}

	migrator := migration.NewMigrator(pool, log, sqlFS)

	switch *command {
	case "up":
		if err := migrator.Up(ctx); err != nil {
			log.Error("Migration up failed", "error", err)
			os.Exit(1)
		}
		log.Info("All migrations applied successfully")

	case "down":
		stepCount := *steps
		if stepCount <= 0 {
			stepCount = 1
		}
		for i := 0; i < stepCount; i++ {
			if err := migrator.Down(ctx); err != nil {
				log.Error("Migration down failed", "error", err, "step", i+1)
				os.Exit(1)
			}
		}
		log.Info("Migrations rolled back successfully", "steps", stepCount)

	case "status":
		if err := migrator.Status(ctx); err != nil {
			log.Error("Migration status failed", "error", err)
			os.Exit(1)
		}

	default:
		log.Error("Unknown command", "command", *command)
		fmt.Println("Available commands: up, down, status")
		os.Exit(1)
	}
}
