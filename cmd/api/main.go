package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ElyRami/Loterias/internal/app"
	"github.com/ElyRami/Loterias/internal/config"
	"github.com/ElyRami/Loterias/internal/logger"
	"github.com/ElyRami/Loterias/internal/router"
	"github.com/ElyRami/Loterias/internal/validator"
)

// @title           Loterias API
// @version         1.0
// @description     Lottery catalog and sales ledger for a Colombian lottery retailer.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	validator.Register()

	a, err := app.Open(context.Background(), appConfig)
	if err != nil {
		return err
	}
	defer a.Close()

	r := router.New(a.Lotteries, a.Sales)

	log.Infof("Starting Loterias server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return r.Run(":" + appConfig.Port)
}
