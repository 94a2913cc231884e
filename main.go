package main

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"

	"scholarly/config"
	"scholarly/di"
	"scholarly/driver/kratos"
	"scholarly/driver/store_db"
	"scholarly/rest"
	"scholarly/utils/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	log := logger.InitLoggerWithConfig(cfg.Logging.Level, cfg.Logging.Format)
	log.Info("Starting server", "port", cfg.Server.Port)

	ctx := context.Background()

	pool, err := store_db.InitDBConnectionPool(ctx, cfg.Database.MaxConnections)
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		panic(err)
	}
	defer pool.Close()

	kratosClient, err := kratos.NewClient(cfg)
	if err != nil {
		log.Error("Failed to initialize identity provider client", "error", err)
		panic(err)
	}

	container := di.NewApplicationComponents(pool, kratosClient, cfg)

	// Session lifecycle events are handled on one goroutine for the
	// whole process lifetime.
	go container.SessionMonitorUsecase.Run(ctx)

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout

	rest.RegisterRoutes(e, container, cfg)

	if err := e.Start(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		log.Error("Error starting server", "error", err)
		panic(err)
	}
}
